package integrator

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

const (
	// ShadowAcneEpsilon is the minimum t accepted for any hit, so a bounce ray
	// cannot re-hit the surface it starts on.
	ShadowAcneEpsilon = 0.001

	// DiffuseAttenuation is the fraction of light kept on every bounce
	DiffuseAttenuation = 0.5
)

// DiffuseIntegrator shades every surface as a pure diffuse reflector
type DiffuseIntegrator struct {
	background Background
}

// NewDiffuseIntegrator creates a diffuse integrator using the given background
func NewDiffuseIntegrator(background Background) *DiffuseIntegrator {
	return &DiffuseIntegrator{background: background}
}

// RayColor returns the color for a ray by recursively bouncing it off diffuse surfaces
func (d *DiffuseIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return d.background.Color(ray)
	}

	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	bounce := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return d.RayColor(bounce, world, sampler, depth-1).Multiply(DiffuseAttenuation)
}
