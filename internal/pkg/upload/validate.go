package upload

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	// SVG is excluded: scriptable without sanitization
}

var allowedImageMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsImageMime reports whether the detected mime-type gets size variants.
func IsImageMime(mime string) bool {
	return allowedImageMime[mime]
}

// ValidateFile checks the filename extension and the sniffed content
// type of the first bytes against the allow-list. PDFs are accepted for
// e-paper and document uploads, images for everything else.
func ValidateFile(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	detected := http.DetectContentType(head)

	// Block scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", apperr.Validation("HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", apperr.Validation("SVG/XML uploads are not supported")
	}

	if ext == ".pdf" {
		if detected == "application/pdf" || detected == "application/octet-stream" {
			return "application/pdf", nil
		}
		return "", apperr.Validation("File does not look like a PDF")
	}

	if !allowedImageExt[ext] {
		return "", apperr.Validation("Only JPG, JPEG, PNG, GIF, WEBP and PDF files are supported")
	}

	// WEBP may sniff as octet-stream depending on the Go version
	if detected == "application/octet-stream" && allowedImageExt[ext] {
		return detected, nil
	}

	if allowedImageMime[detected] {
		return detected, nil
	}

	return "", apperr.Validation("The file type is not supported")
}

// ValidateSize checks the upload against the configured ceiling.
func ValidateSize(size, maxBytes int64) error {
	if maxBytes > 0 && size > maxBytes {
		return apperr.Validation("File exceeds the maximum allowed size")
	}
	return nil
}
