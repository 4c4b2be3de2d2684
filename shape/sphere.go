package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/common"
)

// Sphere is centered on its local origin.
type Sphere struct {
	Radius float64
}

func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

func (s Sphere) Type() Type {
	return TypeSphere
}

func (s Sphere) ComputeAABB(tr common.Transform) common.AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return common.AABB{
		Min: tr.Position.Sub(r),
		Max: tr.Position.Add(r),
	}
}

func (s Sphere) TestPoint(local mgl64.Vec3) bool {
	return local.Dot(local) <= s.Radius*s.Radius
}

func (s Sphere) Equal(other Shape) bool {
	o, ok := other.(Sphere)
	return ok && o.Radius == s.Radius
}
