// Package sink writes finished raster buffers to image files.
package sink

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/raster"
)

// Format is an image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFor picks the encoding from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupportedFormat,
			"cannot infer image format of %q (use .png, .bmp, .tif or .tiff)", path)
	}
}

// ToImage converts buf to an opaque image.RGBA.
func ToImage(buf *raster.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))

	for src, dst := 0, 0; src < len(buf.Pix); src, dst = src+3, dst+4 {
		img.Pix[dst] = buf.Pix[src]
		img.Pix[dst+1] = buf.Pix[src+1]
		img.Pix[dst+2] = buf.Pix[src+2]
		img.Pix[dst+3] = 0xff
	}

	return img
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *raster.Buffer, f Format) error {
	img := ToImage(buf)

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unsupported format %q", f)
	}

	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encoding %s", f)
	}
	return nil
}

// Save writes buf to path, creating parent directories as needed. The format
// follows path's extension.
func Save(path string, buf *raster.Buffer) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "creating %s", dir)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating %s", path)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "closing %s", path)
		}
	}()

	return Encode(out, buf, f)
}
