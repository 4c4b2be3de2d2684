package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/common"
)

// Capsule is a sphere-swept segment along the local Y axis. HalfHeight is
// the half-length of the inner segment, not of the full capsule.
type Capsule struct {
	Radius     float64
	HalfHeight float64
}

func NewCapsule(radius, halfHeight float64) Capsule {
	return Capsule{Radius: radius, HalfHeight: halfHeight}
}

func (c Capsule) Type() Type {
	return TypeCapsule
}

func (c Capsule) ComputeAABB(tr common.Transform) common.AABB {
	top := tr.Apply(mgl64.Vec3{0, c.HalfHeight, 0})
	bottom := tr.Apply(mgl64.Vec3{0, -c.HalfHeight, 0})
	r := mgl64.Vec3{c.Radius, c.Radius, c.Radius}
	ends := common.AABB{Min: top.Sub(r), Max: top.Add(r)}
	return ends.Merged(common.AABB{Min: bottom.Sub(r), Max: bottom.Add(r)})
}

func (c Capsule) TestPoint(local mgl64.Vec3) bool {
	y := local.Y()
	if y > c.HalfHeight {
		y = c.HalfHeight
	} else if y < -c.HalfHeight {
		y = -c.HalfHeight
	}
	d := local.Sub(mgl64.Vec3{0, y, 0})
	return d.Dot(d) <= c.Radius*c.Radius
}

func (c Capsule) Equal(other Shape) bool {
	o, ok := other.(Capsule)
	return ok && o.Radius == c.Radius && o.HalfHeight == c.HalfHeight
}
