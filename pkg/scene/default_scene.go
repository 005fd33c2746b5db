package scene

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// NewDefaultScene creates three spheres side by side in front of the camera
func NewDefaultScene() *Scene {
	s := newScene("default")

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5)

	return s
}

// NewGroundScene creates a single sphere resting on a very large ground sphere
func NewGroundScene() *Scene {
	s := newScene("ground")
	s.SamplingConfig.SamplesPerPixel = 100

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100)

	return s
}
