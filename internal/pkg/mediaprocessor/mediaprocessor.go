package mediaprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
)

// Fixed variant widths derived for every ingested image, written as
// siblings of the original (photo.jpg -> photo-w400.jpg).
var VariantWidths = []int{150, 400, 800, 1200}

// VariantPath returns the sibling path for a given width.
func VariantPath(originalPath string, width int) string {
	ext := filepath.Ext(originalPath)
	base := strings.TrimSuffix(originalPath, ext)
	return fmt.Sprintf("%s-w%d%s", base, width, ext)
}

// DeriveVariants resizes the original into every fixed width preserving
// aspect ratio and returns the written paths. Widths larger than the
// original are skipped rather than upscaled. On any failure the variants
// written so far are removed and the error returned; the caller decides
// what to do with the original.
func DeriveVariants(originalPath string) ([]string, error) {
	img, err := imaging.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	written := make([]string, 0, len(VariantWidths))
	for _, width := range VariantWidths {
		if img.Bounds().Dx() <= width {
			continue
		}

		resized := imaging.Resize(img, width, 0, imaging.Lanczos)
		target := VariantPath(originalPath, width)
		if err := imaging.Save(resized, target); err != nil {
			Cleanup(written)
			return nil, fmt.Errorf("save variant %dpx: %w", width, err)
		}
		written = append(written, target)
	}

	return written, nil
}

// Cleanup removes files written during a failed ingestion. Unlink
// failures are logged and ignored, the record is authoritative.
func Cleanup(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Warnf("[MediaProcessor] Could not remove %s: %v", p, err)
		}
	}
}

// RemoveWithVariants deletes the original file and every possible
// variant sibling, for media deletion.
func RemoveWithVariants(originalPath string) {
	paths := []string{originalPath}
	for _, width := range VariantWidths {
		paths = append(paths, VariantPath(originalPath, width))
	}
	Cleanup(paths)
}
