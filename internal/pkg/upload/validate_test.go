package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestValidateFile_PNG(t *testing.T) {
	mime, err := ValidateFile("photo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestValidateFile_JPEG(t *testing.T) {
	mime, err := ValidateFile("photo.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
}

func TestValidateFile_PDF(t *testing.T) {
	mime, err := ValidateFile("issue.pdf", []byte("%PDF-1.7\n"))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)
}

func TestValidateFile_RejectsHTML(t *testing.T) {
	_, err := ValidateFile("page.png", []byte("<html><body>hi</body></html>"))
	assert.Error(t, err)
}

func TestValidateFile_RejectsSVG(t *testing.T) {
	_, err := ValidateFile("logo.svg", []byte(`<?xml version="1.0"?><svg></svg>`))
	assert.Error(t, err)
}

func TestValidateFile_RejectsUnknownExtension(t *testing.T) {
	_, err := ValidateFile("script.exe", pngHeader)
	assert.Error(t, err)
}

func TestValidateFile_ExtensionContentMismatch(t *testing.T) {
	// A PDF body behind an image extension must not pass.
	_, err := ValidateFile("photo.png", []byte("%PDF-1.7\n"))
	assert.Error(t, err)
}

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(100, 1000))
	assert.NoError(t, ValidateSize(1000, 1000))
	assert.Error(t, ValidateSize(1001, 1000))
	// Zero ceiling disables the check.
	assert.NoError(t, ValidateSize(1<<40, 0))
}

func TestIsImageMime(t *testing.T) {
	assert.True(t, IsImageMime("image/png"))
	assert.False(t, IsImageMime("application/pdf"))
}
