package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToRGBA converts img to an 8-bit RGBA image using the same quantization as WritePPM.
// Wrapped negative channels are taken modulo 256 into [0,255].
func ToRGBA(img *Image, mode ChannelMode) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: byteChannel(Quantize(c.X, mode)),
				G: byteChannel(Quantize(c.Y, mode)),
				B: byteChannel(Quantize(c.Z, mode)),
				A: 255,
			})
		}
	}
	return rgba
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *Image, mode ChannelMode) error {
	if err := png.Encode(w, ToRGBA(img, mode)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
