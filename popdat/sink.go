package popdat

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// ImageFormat selects the concrete image sink backend: stdlib
// image/png or golang.org/x/image/bmp.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatBMP
)

func (f ImageFormat) ext() string {
	if f == FormatBMP {
		return ".bmp"
	}
	return ".png"
}

// EncodeRGBA writes a decoded image to path in the selected format.
func EncodeRGBA(path string, img Image, format ImageFormat) error {
	rgba := &image.RGBA{
		Pix:    img.RGBA,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("popdat: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatBMP:
		err = bmp.Encode(f, rgba)
	default:
		err = png.Encode(f, rgba)
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("popdat: encode %s: %w", path, err)
	}
	return nil
}

// writeAtomic writes data to path, removing the partial file on any
// write failure.
func writeAtomic(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
