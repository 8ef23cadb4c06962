package palette

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/neurlang/gowavelet/errs"
)

// Format identifies a lossless image encoding.
type Format string

const (
	PNG  Format = "png"
	TIFF Format = "tiff"
)

// FormatOf returns the image format implied by the extension of name. Only
// lossless formats are accepted, lossy compression would blur the palette
// indices.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: unsupported image file %q, want .png, .tif or .tiff", errs.ErrConfiguration, name)
	}
}

// CheckFormat fails early for output names Save would refuse.
func CheckFormat(name string) error {
	_, err := FormatOf(name)
	return err
}

// Encode writes img to w in format.
func Encode(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: unsupported image format %q", errs.ErrConfiguration, format)
	}
}

// Save encodes img into the file name, format chosen by extension.
func Save(name string, img image.Image) error {
	format, err := FormatOf(name)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Encode(f, format, img); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}
