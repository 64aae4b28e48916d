package raster

import "github.com/willbeason/ifs-fractal/pkg/errors"

// Bytes per pixel in a Buffer.
const channels = 3

var (
	background = [channels]byte{255, 255, 255}
	foreground = [channels]byte{0, 255, 0}
)

// Buffer is a row-major, interleaved RGB image: pixel (col, row) occupies
// Pix[3*(row*Width+col) : 3*(row*Width+col)+3].
type Buffer struct {
	Pix           []byte
	Width, Height int
}

// NewBuffer returns a white width×height buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidCanvas, "canvas %dx%d, want positive dimensions", width, height)
	}

	pix := make([]byte, width*height*channels)
	for i := 0; i < len(pix); i += channels {
		copy(pix[i:i+channels], background[:])
	}

	return &Buffer{Pix: pix, Width: width, Height: height}, nil
}

func (b *Buffer) offset(col, row int) int {
	return channels * (row*b.Width + col)
}

// RGB returns the colour of pixel (col, row), which must be on the canvas.
func (b *Buffer) RGB(col, row int) (r, g, bl byte) {
	i := b.offset(col, row)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Painted reports whether any pixel differs from the background.
func (b *Buffer) Painted() bool {
	for i := 0; i < len(b.Pix); i += channels {
		if b.Pix[i] != background[0] || b.Pix[i+1] != background[1] || b.Pix[i+2] != background[2] {
			return true
		}
	}
	return false
}
