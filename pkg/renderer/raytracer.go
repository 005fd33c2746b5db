package renderer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
	"github.com/df07/go-diffuse-raytracer/pkg/output"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed of the random stream used for jitter and bounces
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Raytracer renders a world through a camera, one pixel at a time
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	width      int
	height     int
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Shape, camera *Camera, integ integrator.Integrator, width, height int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// RenderPass renders the full image. Each pixel is the mean of SamplesPerPixel
// jittered samples, gamma corrected with gamma 2.
func (rt *Raytracer) RenderPass() (*output.Image, RenderStats, error) {
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}

	img, err := output.NewImage(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed)))

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (max depth %d)...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	// A single row or column maps to coordinate 0 instead of dividing by zero
	uScale := float64(max(rt.width-1, 1))
	vScale := float64(max(rt.height-1, 1))

	for row := 0; row < rt.height; row++ {
		// Image rows run top to bottom, v runs bottom to top
		j := rt.height - 1 - row
		for i := 0; i < rt.width; i++ {
			var colorAccum core.Vec3
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				u := (float64(i) + sampler.Get1D()) / uScale
				v := (float64(j) + sampler.Get1D()) / vScale

				ray := rt.camera.GetRay(u, v)
				colorAccum.AddAssign(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
			}

			colorAccum.DivideAssign(float64(rt.config.SamplesPerPixel))
			img.Set(i, row, colorAccum.GammaCorrect(2.0))
		}
	}

	stats := RenderStats{
		TotalPixels:     rt.width * rt.height,
		TotalSamples:    rt.width * rt.height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Duration:        time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Duration, stats.SamplesPerSecond())

	return img, stats, nil
}
