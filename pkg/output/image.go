package output

import (
	"fmt"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Image is a width x height grid of linear colors, stored row-major with the top row first
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a black image. Both dimensions must be positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}, nil
}

// Width returns the number of columns
func (img *Image) Width() int { return img.width }

// Height returns the number of rows
func (img *Image) Height() int { return img.height }

// At returns the color at column x of row y (row 0 is the top)
func (img *Image) At(x, y int) core.Vec3 {
	return img.pixels[y*img.width+x]
}

// Set stores the color at column x of row y (row 0 is the top)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.pixels[y*img.width+x] = c
}
