package integrator

import (
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

func TestNormalIntegrator_RayColor(t *testing.T) {
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
	integ := NewNormalIntegrator(DefaultBackground())

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"hit facing camera", core.NewVec3(0, 0, -1), core.NewVec3(0.5, 0.5, 1.0)},
		{"miss straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			if got := integ.RayColor(ray, world, nil, 1); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalIntegrator_IgnoresFarSurfaces(t *testing.T) {
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2000), 0.5))
	integ := NewNormalIntegrator(DefaultBackground())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	expected := DefaultBackground().Color(ray)
	if got := integ.RayColor(ray, world, nil, 1); got != expected {
		t.Errorf("Expected background %v beyond t=1000, got %v", expected, got)
	}
}
