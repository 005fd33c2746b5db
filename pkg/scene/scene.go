package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// DefaultScenesDir is where named JSON scenes are looked up
const DefaultScenesDir = "scenes"

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Width          int // Image width; height follows from the camera aspect ratio
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
	World          *geometry.HittableList // Objects in the scene
}

// newScene creates an empty scene with default settings
func newScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Width:          400,
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Background:     integrator.DefaultBackground(),
		World:          geometry.NewHittableList(),
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// Height returns the image height implied by Width and the camera aspect ratio
func (s *Scene) Height() int {
	return max(1, int(float64(s.Width)/s.CameraConfig.AspectRatio))
}

// Create resolves a scene by built-in name, by path to a .json file, or by the
// name of a .json file in DefaultScenesDir.
func Create(name string, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	switch name {
	case "":
		return nil, fmt.Errorf("scene name must not be empty")
	case "default":
		return NewDefaultScene(), nil
	case "ground":
		return NewGroundScene(), nil
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		return LoadFile(name, logger)
	}

	path := filepath.Join(DefaultScenesDir, name+".json")
	if _, err := os.Stat(path); err == nil {
		return LoadFile(path, logger)
	}

	return nil, fmt.Errorf("unknown scene %q", name)
}
