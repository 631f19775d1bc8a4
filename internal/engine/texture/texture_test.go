package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// makeTGA builds an uncompressed 24-bit bottom-up TGA.
func makeTGA(w, h int, px func(x, y int) color.RGBA) []byte {
	buf := make([]byte, 18, 18+w*h*3)
	buf[2] = TGATypeUncompressed
	buf[12], buf[13] = byte(w), byte(w>>8)
	buf[14], buf[15] = byte(h), byte(h>>8)
	buf[16] = 24
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			c := px(x, y)
			buf = append(buf, c.B, c.G, c.R)
		}
	}
	return buf
}

func TestDecodeTGA_Uncompressed(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	data := makeTGA(2, 2, func(x, y int) color.RGBA {
		if y == 0 {
			return red
		}
		return blue
	})

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if got := img.At(1, 0); got != red {
		t.Errorf("top row = %v, want %v", got, red)
	}
	if got := img.At(0, 1); got != blue {
		t.Errorf("bottom row = %v, want %v", got, blue)
	}
}

func TestDecodeTGA_RLE(t *testing.T) {
	// 3x1, one RLE packet repeating green three times, top-to-bottom.
	data := make([]byte, 18)
	data[2] = TGATypeRLE
	data[12] = 3
	data[14] = 1
	data[16] = 32
	data[17] = 0x20
	data = append(data, 0x80|2, 0, 255, 0, 200)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	want := color.RGBA{G: 255, A: 200}
	for x := 0; x < 3; x++ {
		if got := img.At(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGA_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", []byte{0, 0, 2}, ErrDecode},
		{"color mapped", append([]byte{0, 1, 2}, make([]byte, 15)...), ErrUnsupported},
		{"grayscale", append([]byte{0, 0, 3}, make([]byte, 15)...), ErrUnsupported},
		{"truncated pixels", makeTGA(4, 4, func(int, int) color.RGBA { return color.RGBA{} })[:30], ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("DecodeTGA() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255 * ((x + y) % 2))
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestDecodeByExtension(t *testing.T) {
	src := checker(4, 2)

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"stars.png", pngBuf.Bytes()},
		{"textures/EARTH.BMP", bmpBuf.Bytes()},
		{"ring.tga", makeTGA(4, 2, func(x, y int) color.RGBA { return src.RGBAAt(x, y) })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.name, tt.data)
			if err != nil {
				t.Fatalf("Decode(%s): %v", tt.name, err)
			}
			if img.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
			if img.RGBAAt(1, 0) != src.RGBAAt(1, 0) || img.RGBAAt(1, 1) != src.RGBAAt(1, 1) {
				t.Error("decoded pixels differ from source")
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode("model.obj", []byte("v 0 0 0")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := Decode("broken.png", []byte("not a png")); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	out := FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := out.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d = %d, want %d", y, got, 2-y)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		w, h, max int
		wantW     int
		wantH     int
	}{
		{"already fits", 64, 32, 64, 64, 32},
		{"wide", 256, 128, 64, 64, 32},
		{"tall", 100, 400, 100, 25, 100},
		{"disabled", 512, 512, 0, 512, 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := checker(tt.w, tt.h)
			out := Fit(src, tt.max)
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("Fit = %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}

	small := checker(8, 8)
	if Fit(small, 16) != small {
		t.Error("Fit should return the same image when no scaling is needed")
	}
}
