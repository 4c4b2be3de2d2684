package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/common"
)

// Box is centered on its local origin with HalfExtents along each local axis.
type Box struct {
	HalfExtents mgl64.Vec3
}

func NewBox(halfExtents mgl64.Vec3) Box {
	return Box{HalfExtents: halfExtents}
}

func (b Box) Type() Type {
	return TypeBox
}

func (b Box) ComputeAABB(tr common.Transform) common.AABB {
	// World extents come from the rotated local axes scaled to the half
	// extents; summing their absolute components bounds the rotated box.
	ex := tr.Orientation.Rotate(mgl64.Vec3{b.HalfExtents.X(), 0, 0})
	ey := tr.Orientation.Rotate(mgl64.Vec3{0, b.HalfExtents.Y(), 0})
	ez := tr.Orientation.Rotate(mgl64.Vec3{0, 0, b.HalfExtents.Z()})
	ext := mgl64.Vec3{
		math.Abs(ex.X()) + math.Abs(ey.X()) + math.Abs(ez.X()),
		math.Abs(ex.Y()) + math.Abs(ey.Y()) + math.Abs(ez.Y()),
		math.Abs(ex.Z()) + math.Abs(ey.Z()) + math.Abs(ez.Z()),
	}
	return common.AABB{
		Min: tr.Position.Sub(ext),
		Max: tr.Position.Add(ext),
	}
}

func (b Box) TestPoint(local mgl64.Vec3) bool {
	return math.Abs(local.X()) <= b.HalfExtents.X() &&
		math.Abs(local.Y()) <= b.HalfExtents.Y() &&
		math.Abs(local.Z()) <= b.HalfExtents.Z()
}

func (b Box) Equal(other Shape) bool {
	o, ok := other.(Box)
	return ok && o.HalfExtents == b.HalfExtents
}
