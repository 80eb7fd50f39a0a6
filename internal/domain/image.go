package domain

import (
	"path/filepath"
	"strings"
)

const (
	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"
)

// AllowedExtensions are the file extensions the upload control accepts.
var AllowedExtensions = []string{".png", ".jpg", ".jpeg"}

var extensionMimeTypes = map[string]string{
	".png":  MimeTypePNG,
	".jpg":  MimeTypeJPEG,
	".jpeg": MimeTypeJPEG,
}

// Image is the payload of a single interaction. It is never stored.
type Image struct {
	Data     []byte
	MimeType string
	FileName string
}

func (i Image) Size() int {
	return len(i.Data)
}

func IsAllowedMimeType(mimeType string) bool {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case MimeTypePNG, MimeTypeJPEG:
		return true
	default:
		return false
	}
}

// MimeTypeFromFileName returns the image MIME type implied by the file
// extension, or "" when the extension is not accepted.
func MimeTypeFromFileName(name string) string {
	return extensionMimeTypes[strings.ToLower(filepath.Ext(name))]
}

func IsAllowedExtension(name string) bool {
	return MimeTypeFromFileName(name) != ""
}
