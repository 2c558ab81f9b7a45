package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodeFormats(t *testing.T) {
	dir := t.TempDir()
	img := createGradientImage(64, 64)

	tests := []struct {
		name string
		path string
	}{
		{"png", writePNG(t, dir, "a.png", img)},
		{"jpeg", writeJPEG(t, dir, "a.jpg", img)},
		{"bmp", writeBMP(t, dir, "a.bmp", img)},
	}

	var dec Decoder
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := dec.Decode(tc.path)
			if err != nil {
				t.Fatalf("Decode(%s) failed: %v", tc.path, err)
			}
			bounds := decoded.Bounds()
			if bounds.Dx() != 64 || bounds.Dy() != 64 {
				t.Errorf("decoded size = %dx%d; want 64x64", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestDecodeFailureKinds(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		kind Kind
	}{
		{"missing file", filepath.Join(dir, "missing.png"), KindNotFound},
		{"directory", dir, KindNotReadable},
		{"text file", textPath, KindUnsupported},
	}

	var dec Decoder
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dec.Decode(tc.path)
			if err == nil {
				t.Fatalf("Decode(%s) should fail", tc.path)
			}

			var decErr *Error
			if !errors.As(err, &decErr) {
				t.Fatalf("error should be *Error, got %T: %v", err, err)
			}
			if decErr.Kind != tc.kind {
				t.Errorf("kind = %v; want %v", decErr.Kind, tc.kind)
			}
			if decErr.Path != tc.path {
				t.Errorf("path = %q; want %q", decErr.Path, tc.path)
			}
		})
	}
}

func TestDecodeErrorSurvivesWrapping(t *testing.T) {
	var dec Decoder
	_, err := dec.Decode("/does/not/exist.png")
	wrapped := fmt.Errorf("while searching: %w", err)

	var decErr *Error
	if !errors.As(wrapped, &decErr) {
		t.Fatal("wrapped error should still match *Error")
	}
	if decErr.Kind != KindNotFound {
		t.Errorf("kind = %v; want %v", decErr.Kind, KindNotFound)
	}
}

func TestDecodeAutoOrient(t *testing.T) {
	dir := t.TempDir()
	path := writeJPEG(t, dir, "plain.jpg", createGradientImage(32, 32))

	// No EXIF data present, decode must still work with orientation enabled.
	dec := Decoder{AutoOrient: true}
	if _, err := dec.Decode(path); err != nil {
		t.Fatalf("Decode with AutoOrient failed: %v", err)
	}
}

// Helper functions

func createGradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			gray := uint8((x + y) * 255 / (width + height))
			img.Set(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeBMP(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}
