package integrator

import (
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// MockShape implements geometry.Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

// constantSampler always returns the same sample
type constantSampler struct {
	value core.Vec3
}

func (c constantSampler) Get1D() float64   { return c.value.X }
func (c constantSampler) Get3D() core.Vec3 { return c.value }

// centerSampler makes RandomInUnitSphere return the origin
var centerSampler = constantSampler{value: core.NewVec3(0.5, 0.5, 0.5)}

func TestBackground_Color(t *testing.T) {
	bg := DefaultBackground()
	white := core.NewVec3(1, 1, 1)
	sky := core.NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), sky},
		{"straight up unnormalized", core.NewVec3(0, 5, 0), sky},
		{"straight down", core.NewVec3(0, -1, 0), white},
		{"horizontal", core.NewVec3(0, 0, -1), white.Multiply(0.5).Add(sky.Multiply(0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.Color(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIntegrators_ZeroDepthIsBlack(t *testing.T) {
	world := MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
		t.Error("World should not be queried at depth 0")
		return nil, false
	}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	integrators := map[string]Integrator{
		"diffuse": NewDiffuseIntegrator(DefaultBackground()),
		"normal":  NewNormalIntegrator(DefaultBackground()),
	}

	for name, integ := range integrators {
		t.Run(name, func(t *testing.T) {
			for _, depth := range []int{0, -1} {
				if got := integ.RayColor(ray, world, centerSampler, depth); got != (core.Vec3{}) {
					t.Errorf("Expected black at depth %d, got %v", depth, got)
				}
			}
		})
	}
}
