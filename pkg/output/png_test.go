package output

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

func TestWritePNG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testImage(t), ChannelClamp); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", decoded.Bounds())
	}

	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("Expected red top-left pixel, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = decoded.At(2, 1).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black bottom-right pixel, got (%d, %d, %d)", r, g, b)
	}
}

func TestToRGBA_WrapMode(t *testing.T) {
	img, _ := NewImage(1, 1)
	img.Set(0, 0, core.NewVec3(2, -0.5, 0.5))

	got := ToRGBA(img, ChannelWrap).RGBAAt(0, 0)
	expected := color.RGBA{R: 254, G: 129, B: 127, A: 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	img := testImage(t)

	t.Run("ppm in new directory", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "render.ppm")
		if err := SaveFile(path, img, ChannelClamp); err != nil {
			t.Fatalf("SaveFile failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		if !strings.HasPrefix(string(data), "P3\n3 2\n255\n") {
			t.Errorf("Unexpected PPM header: %q", string(data[:12]))
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "render.PNG")
		if err := SaveFile(path, img, ChannelClamp); err != nil {
			t.Fatalf("SaveFile failed: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open output: %v", err)
		}
		defer f.Close()
		if _, err := png.Decode(f); err != nil {
			t.Errorf("Output is not a valid PNG: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "render.jpg")
		if err := SaveFile(path, img, ChannelClamp); err == nil {
			t.Error("Expected error for .jpg output")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("No file should be created for an unsupported format")
		}
	})
}
