package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/arena"
	"github.com/milk9111/physics3d/common"
	"github.com/milk9111/physics3d/shape"
)

// ProxyHandle identifies one shape attachment on a body. It stays the
// attachment's identity for its whole life and goes stale the moment the
// attachment is detached.
type ProxyHandle arena.Handle

// Valid reports whether the handle could ever have been issued.
func (h ProxyHandle) Valid() bool {
	return arena.Handle(h).Valid()
}

// Each attachment carries the same default contribution to its body's mass
// until a caller overrides it.
const defaultMassFactor = 1.0

// ProxyAttachment binds one body to one canonical shape instance with a
// local-to-body transform. Attachments live in the world's proxy pool and
// are owned exclusively by their body; callers hold only the handle.
type ProxyAttachment struct {
	body       *Body
	shape      shape.Shape
	local      common.Transform
	massFactor float64
}

// Body returns the owning body.
func (p *ProxyAttachment) Body() *Body {
	return p.body
}

// Shape returns the canonical shared shape instance.
func (p *ProxyAttachment) Shape() shape.Shape {
	return p.shape
}

// LocalTransform returns the local-to-body transform.
func (p *ProxyAttachment) LocalTransform() common.Transform {
	return p.local
}

// MassFactor returns the attachment's mass-contribution factor.
func (p *ProxyAttachment) MassFactor() float64 {
	return p.massFactor
}

// SetMassFactor overrides the mass-contribution factor.
func (p *ProxyAttachment) SetMassFactor(f float64) {
	p.massFactor = f
}

// WorldTransform composes the body transform with the local one.
func (p *ProxyAttachment) WorldTransform() common.Transform {
	return p.body.transform.Mul(p.local)
}

// WorldAABB returns the attachment's current world-space bounds.
func (p *ProxyAttachment) WorldAABB() common.AABB {
	return p.shape.ComputeAABB(p.WorldTransform())
}

// TestPoint reports whether a world-space point lies inside the shape.
func (p *ProxyAttachment) TestPoint(worldPoint mgl64.Vec3) bool {
	return p.shape.TestPoint(p.WorldTransform().Inverse().Apply(worldPoint))
}
