package integrator

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// normalMaxT bounds how far the normal preview looks for surfaces
const normalMaxT = 1000.0

// NormalIntegrator colors each hit by its surface normal, mapped from [-1,1] to [0,1].
// Useful for checking geometry without waiting for diffuse noise to converge.
type NormalIntegrator struct {
	background Background
}

// NewNormalIntegrator creates a normal preview integrator
func NewNormalIntegrator(background Background) *NormalIntegrator {
	return &NormalIntegrator{background: background}
}

// RayColor returns the normal color of the nearest hit or the background.
// The sampler is unused.
func (n *NormalIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, normalMaxT)
	if !isHit {
		return n.background.Color(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
