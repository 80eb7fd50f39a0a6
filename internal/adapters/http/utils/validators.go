package utils

import (
	"mime"
	"strings"

	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"github.com/go-playground/validator/v10"
)

func ImageMimeValidator(fl validator.FieldLevel) bool {
	return domain.IsAllowedMimeType(fl.Field().String())
}

func ImageExtensionValidator(fl validator.FieldLevel) bool {
	return domain.IsAllowedExtension(fl.Field().String())
}

// NewUploadValidator returns a validator with the image_mime and image_ext
// rules registered.
func NewUploadValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("image_mime", ImageMimeValidator); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("image_ext", ImageExtensionValidator); err != nil {
		return nil, err
	}
	return validate, nil
}

// DeclaredMimeType uses the part's Content-Type header and falls back to the
// file extension when the header is missing or generic.
func DeclaredMimeType(contentType, fileName string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		mediaType = strings.ToLower(mediaType)
		if mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	return domain.MimeTypeFromFileName(fileName)
}
