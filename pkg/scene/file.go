package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// FileConfig is the JSON layout of a scene file. Omitted fields keep their defaults.
type FileConfig struct {
	Name            string            `json:"name,omitempty"`
	Description     string            `json:"description,omitempty"`
	Width           int               `json:"width,omitempty"`
	SamplesPerPixel int               `json:"samplesPerPixel,omitempty"`
	MaxDepth        int               `json:"maxDepth,omitempty"`
	Seed            *int64            `json:"seed,omitempty"`
	Camera          *CameraFileConfig `json:"camera,omitempty"`
	Background      *BackgroundConfig `json:"background,omitempty"`
	Spheres         []SphereConfig    `json:"spheres"`
}

// CameraFileConfig overrides the default camera. Zero values keep the default.
type CameraFileConfig struct {
	Origin         *[3]float64 `json:"origin,omitempty"`
	ViewportHeight float64     `json:"viewportHeight,omitempty"`
	AspectRatio    float64     `json:"aspectRatio,omitempty"`
	FocalLength    float64     `json:"focalLength,omitempty"`
}

// BackgroundConfig sets the sky gradient colors
type BackgroundConfig struct {
	Top    [3]float64 `json:"top"`
	Bottom [3]float64 `json:"bottom"`
}

// SphereConfig describes one sphere
type SphereConfig struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Build validates the sphere and creates it
func (sc SphereConfig) Build() (*geometry.Sphere, error) {
	if !finite(sc.Center[0], sc.Center[1], sc.Center[2], sc.Radius) {
		return nil, fmt.Errorf("sphere values must be finite, got center %v radius %v", sc.Center, sc.Radius)
	}
	// A zero radius divides by zero when computing normals
	if sc.Radius == 0 {
		return nil, fmt.Errorf("sphere radius must be non-zero")
	}
	return geometry.NewSphere(vec(sc.Center), sc.Radius), nil
}

// Parse builds a scene from JSON scene data
func Parse(data []byte) (*Scene, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg FileConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	s := newScene(cfg.Name)

	if cfg.Width < 0 {
		return nil, fmt.Errorf("width must be positive, got %d", cfg.Width)
	}
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.SamplesPerPixel < 0 {
		return nil, fmt.Errorf("samplesPerPixel must be positive, got %d", cfg.SamplesPerPixel)
	}
	if cfg.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("maxDepth must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = cfg.MaxDepth
	}
	if cfg.Seed != nil {
		s.SamplingConfig.Seed = *cfg.Seed
	}

	if cam := cfg.Camera; cam != nil {
		if cam.ViewportHeight < 0 || cam.AspectRatio < 0 || cam.FocalLength < 0 {
			return nil, fmt.Errorf("camera dimensions must be positive, got %+v", *cam)
		}
		if cam.Origin != nil {
			s.CameraConfig.Origin = vec(*cam.Origin)
		}
		if cam.ViewportHeight > 0 {
			s.CameraConfig.ViewportHeight = cam.ViewportHeight
		}
		if cam.AspectRatio > 0 {
			s.CameraConfig.AspectRatio = cam.AspectRatio
		}
		if cam.FocalLength > 0 {
			s.CameraConfig.FocalLength = cam.FocalLength
		}
	}

	if bg := cfg.Background; bg != nil {
		s.Background.Top = vec(bg.Top)
		s.Background.Bottom = vec(bg.Bottom)
	}

	if len(cfg.Spheres) == 0 {
		return nil, fmt.Errorf("scene has no spheres")
	}
	for i, sc := range cfg.Spheres {
		sphere, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.World.Add(sphere)
	}

	return s, nil
}

// LoadFile reads and parses a JSON scene file.
// A scene without a name is named after its file.
func LoadFile(path string, logger core.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Printf("Loaded scene %q from %s: %d spheres, %dx%d, %d samples/pixel, max depth %d\n",
		s.Name, path, s.World.Len(), s.Width, s.Height(),
		s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)
	return s, nil
}
