// Package logo converts an uploaded image file into the embedded data blob
// stored on the school profile.
package logo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// MaxUploadBytes caps logo uploads. Logos are embedded into every persisted
// profile blob and every rendered receipt, so they stay small.
const MaxUploadBytes = 2 << 20

// maxDimension is the bounding box logos are scaled down to fit.
const maxDimension = 256

var (
	ErrTooLarge = errors.New("logo image is too large (max 2 MB)")
	ErrNotImage = errors.New("file is not a supported image")
)

// Ingest reads an uploaded image, downscales it to fit the logo box and
// returns it as a PNG data URL ready to embed in the profile.
func Ingest(r io.Reader, size int64) (string, error) {
	if size > MaxUploadBytes {
		return "", ErrTooLarge
	}

	img, err := imaging.Decode(io.LimitReader(r, MaxUploadBytes+1), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode turns a stored data URL back into raw PNG bytes for the renderer.
func Decode(dataURL string) ([]byte, error) {
	const prefix = "data:image/png;base64,"
	if len(dataURL) <= len(prefix) || dataURL[:len(prefix)] != prefix {
		return nil, ErrNotImage
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[len(prefix):])
	if err != nil {
		return nil, ErrNotImage
	}
	return raw, nil
}
