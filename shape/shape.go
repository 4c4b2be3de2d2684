// Package shape defines immutable collision-geometry descriptions and the
// world-owned store that deduplicates and reference-counts them.
package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/common"
)

// Type discriminates the concrete geometry kinds.
type Type int

const (
	TypeSphere Type = iota
	TypeBox
	TypeCapsule
)

func (t Type) String() string {
	switch t {
	case TypeSphere:
		return "sphere"
	case TypeBox:
		return "box"
	case TypeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape is an immutable geometry definition. Implementations must be
// comparable through Equal so the store can deduplicate them.
type Shape interface {
	Type() Type

	// ComputeAABB returns the world-space bounds of the shape placed at tr.
	ComputeAABB(tr common.Transform) common.AABB

	// TestPoint reports whether a point, given in the shape's local frame,
	// lies inside the shape.
	TestPoint(local mgl64.Vec3) bool

	// Equal reports whether other describes the same geometry.
	Equal(other Shape) bool
}
