package core

import "testing"

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"origin", 0, NewVec3(1, 2, 3)},
		{"forward", 1.5, NewVec3(1, 2, 0)},
		{"negative t", -1, NewVec3(1, 2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ray.At(tt.t); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_ValueSemantics(t *testing.T) {
	origin := NewVec3(0, 0, 0)
	direction := NewVec3(0, 0, -1)
	ray := NewRay(origin, direction)

	origin.AddAssign(NewVec3(5, 5, 5))
	direction.MultiplyAssign(10)

	if ray.Origin != NewVec3(0, 0, 0) || ray.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Ray aliased caller vectors: %+v", ray)
	}
}
