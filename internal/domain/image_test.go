package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMimeTypeFromFileName(t *testing.T) {
	cases := map[string]string{
		"scan.png":       MimeTypePNG,
		"XRAY.JPG":       MimeTypeJPEG,
		"mri.jpeg":       MimeTypeJPEG,
		"notes.txt":      "",
		"archive.tar.gz": "",
		"noext":          "",
	}
	for name, want := range cases {
		assert.Equal(t, want, MimeTypeFromFileName(name), name)
		assert.Equal(t, want != "", IsAllowedExtension(name), name)
	}
}

func TestIsAllowedMimeType(t *testing.T) {
	assert.True(t, IsAllowedMimeType("image/png"))
	assert.True(t, IsAllowedMimeType(" IMAGE/JPEG "))
	assert.False(t, IsAllowedMimeType("image/gif"))
	assert.False(t, IsAllowedMimeType("application/octet-stream"))
	assert.False(t, IsAllowedMimeType(""))
}

func TestParseSessionStyle(t *testing.T) {
	style, err := ParseSessionStyle("")
	require.NoError(t, err)
	assert.Equal(t, SessionStylePrompt, style)

	style, err = ParseSessionStyle("Chat")
	require.NoError(t, err)
	assert.Equal(t, SessionStyleChat, style)

	_, err = ParseSessionStyle("batch")
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrCodeValidation, de.Code)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewDomainError(ErrCodeExternal, "model call failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Message:model call failed, Cause:boom", err.Error())
	assert.Equal(t, "Message:image must not be empty", ErrEmptyImage.Error())
}
