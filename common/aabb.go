package common

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Overlaps reports whether the two boxes intersect, touching included.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// Contains reports whether the point lies inside or on the box.
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half-size of the box along each axis.
func (a AABB) Extents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Merged returns the smallest box enclosing both a and b.
func (a AABB) Merged(b AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			min(a.Min.X(), b.Min.X()),
			min(a.Min.Y(), b.Min.Y()),
			min(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl64.Vec3{
			max(a.Max.X(), b.Max.X()),
			max(a.Max.Y(), b.Max.Y()),
			max(a.Max.Z(), b.Max.Z()),
		},
	}
}
