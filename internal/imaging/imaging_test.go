package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encode(t *testing.T, w, h int, asPNG bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 90, 200, 255})
		}
	}
	var buf bytes.Buffer
	var err error
	if asPNG {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizePhoto(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		png          bool
		wantW, wantH int
	}{
		{"small jpeg kept", 50, 40, false, 50, 40},
		{"png becomes jpeg", 100, 100, true, 100, 100},
		{"wide downscaled", 2560, 1280, false, MaxDimension, 640},
		{"tall downscaled", 1000, 4000, true, 320, MaxDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NormalizePhoto(bytes.NewReader(encode(t, tt.w, tt.h, tt.png)))
			if err != nil {
				t.Fatalf("NormalizePhoto: %v", err)
			}
			if p.MIME != "image/jpeg" {
				t.Errorf("expected image/jpeg, got %s", p.MIME)
			}
			if p.Width != tt.wantW || p.Height != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, p.Width, p.Height)
			}

			img, err := jpeg.Decode(bytes.NewReader(p.Data))
			if err != nil {
				t.Fatalf("decoding result: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("stored photo is %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestNormalizePhotoRejectsOtherFormats(t *testing.T) {
	for _, data := range [][]byte{[]byte("not an image"), []byte("GIF89a......")} {
		if _, err := NormalizePhoto(bytes.NewReader(data)); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat for %q, got %v", data, err)
		}
	}
}

func TestNormalizePhotoTooLarge(t *testing.T) {
	data := make([]byte, MaxPhotoBytes+10)
	if _, err := NormalizePhoto(bytes.NewReader(data)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}
