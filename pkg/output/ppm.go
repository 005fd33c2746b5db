package output

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM serializes img as a plain-text P3 pixel map.
// Each row is written on its own line as "<r> <g> <b> " triples.
func WritePPM(w io.Writer, img *Image, mode ChannelMode) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d ",
				Quantize(c.X, mode), Quantize(c.Y, mode), Quantize(c.Z, mode)); err != nil {
				return fmt.Errorf("failed to write PPM row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}
