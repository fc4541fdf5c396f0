// Package imageprocessor produces the thumbnail variant for uploaded item
// photos and extracts EXIF metadata used to prefill report fields.
package imageprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ThumbnailMaxSize is the bounding box for generated thumbnails in pixels.
const ThumbnailMaxSize = 400

// GenerateThumbnail creates a JPEG thumbnail next to the original, named
// <base>_thumb.jpg, and returns its path. EXIF orientation is applied while
// decoding so rotated phone photos come out upright.
func GenerateThumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", srcPath, err)
	}

	thumb := imaging.Fit(img, ThumbnailMaxSize, ThumbnailMaxSize, imaging.Lanczos)

	ext := filepath.Ext(srcPath)
	thumbPath := strings.TrimSuffix(srcPath, ext) + "_thumb.jpg"
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail %s: %w", thumbPath, err)
	}

	return thumbPath, nil
}

// ExtractCaptureDate reads the EXIF DateTimeOriginal from a photo. Returns
// false when the file has no usable EXIF block; that is the common case for
// screenshots and messenger re-exports, not an error.
func ExtractCaptureDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	tm, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return tm, true
}
