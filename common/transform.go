package common

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid-body pose: a rotation followed by a translation.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{Orientation: mgl64.QuatIdent()}
}

// NewTransform builds a transform from a position and an orientation.
func NewTransform(position mgl64.Vec3, orientation mgl64.Quat) Transform {
	return Transform{Position: position, Orientation: orientation}
}

// Mul composes two transforms: applying the result equals applying o first,
// then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		Position:    t.Orientation.Rotate(o.Position).Add(t.Position),
		Orientation: t.Orientation.Mul(o.Orientation),
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Orientation.Rotate(p).Add(t.Position)
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	inv := t.Orientation.Inverse()
	return Transform{
		Position:    inv.Rotate(t.Position.Mul(-1)),
		Orientation: inv,
	}
}

// InterpolateTransforms blends two poses with factor f in [0, 1]: the
// position is lerped and the orientation slerped. f = 0 yields a, f = 1
// yields b.
func InterpolateTransforms(a, b Transform, f float64) Transform {
	return Transform{
		Position:    a.Position.Add(b.Position.Sub(a.Position).Mul(f)),
		Orientation: mgl64.QuatSlerp(a.Orientation.Normalize(), b.Orientation.Normalize(), f),
	}
}
