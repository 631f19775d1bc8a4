// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"path"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Texture decoding errors.
var (
	ErrDecode      = errors.New("texture decode failed")
	ErrUnsupported = errors.New("unsupported texture format")
)

// Supported lists the file extensions Decode understands.
var Supported = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp", ".tga"}

// Decode decodes image data, picking the decoder from the file extension.
// TGA has no magic number, so it is only recognized by name.
func Decode(name string, data []byte) (*image.RGBA, error) {
	ext := strings.ToLower(path.Ext(name))
	if !isSupported(ext) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}

	var img image.Image
	var err error
	if ext == ".tga" {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return ImageToRGBA(img), nil
}

func isSupported(ext string) bool {
	for _, s := range Supported {
		if s == ext {
			return true
		}
	}
	return false
}

// ImageToRGBA converts any image.Image to *image.RGBA with a zero origin.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with rows in reverse order.
// Model texture coordinates put v=0 at the bottom row.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	rowSize := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Max.Y-1-y)
		dst := out.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out.Pix[dst:dst+rowSize], img.Pix[src:src+rowSize])
	}
	return out
}
