package utils

import (
	"testing"

	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaredMimeType(t *testing.T) {
	assert.Equal(t, "image/png", DeclaredMimeType("image/png", "scan.png"))
	assert.Equal(t, "image/jpeg", DeclaredMimeType("IMAGE/JPEG; charset=binary", "scan.jpg"))
	assert.Equal(t, "image/jpeg", DeclaredMimeType("", "scan.JPEG"))
	assert.Equal(t, "image/png", DeclaredMimeType("application/octet-stream", "scan.png"))
	assert.Equal(t, "image/gif", DeclaredMimeType("image/gif", "scan.png"))
	assert.Equal(t, "", DeclaredMimeType("", "scan.bmp"))
}

func TestUploadValidator(t *testing.T) {
	validate, err := NewUploadValidator()
	require.NoError(t, err)

	require.NoError(t, validate.Struct(dto.UploadedImage{FileName: "ct.jpeg", MimeType: "image/jpeg", Size: 10}))

	err = validate.Struct(dto.UploadedImage{FileName: "ct.gif", MimeType: "image/gif", Size: 10})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	tags := []string{}
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{"image_ext", "image_mime"}, tags)

	err = validate.Struct(dto.UploadedImage{FileName: "ct.png", MimeType: "image/png", Size: 0})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Size", verrs[0].Field())
}
