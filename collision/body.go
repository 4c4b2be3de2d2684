package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/arena"
	"github.com/milk9111/physics3d/broadphase"
	"github.com/milk9111/physics3d/common"
	"github.com/milk9111/physics3d/shape"
)

// Body owns a set of shape attachments and keeps them registered with the
// world's broad-phase index. All methods assume the single simulation
// thread of the owning world.
type Body struct {
	id                  uint32
	transform           common.Transform
	oldTransform        common.Transform
	interpolationFactor float64
	collisionEnabled    bool

	// Attachment handles, most-recently-attached first.
	proxies    []ProxyHandle
	shapeCount int

	manifolds []arena.Handle

	world *World
}

// ID returns the body's stable id within its world.
func (b *Body) ID() uint32 {
	return b.id
}

// Transform returns the body's current world transform.
func (b *Body) Transform() common.Transform {
	return b.transform
}

// SetTransform moves the body, remembers the previous pose for
// interpolation, and pushes fresh bounds for every attachment to the
// broad-phase index.
func (b *Body) SetTransform(tr common.Transform) {
	b.oldTransform = b.transform
	b.transform = tr
	b.RefreshBroadPhaseState()
}

// InterpolatedTransform blends the previous and current poses by the
// body's interpolation factor.
func (b *Body) InterpolatedTransform() common.Transform {
	return common.InterpolateTransforms(b.oldTransform, b.transform, b.interpolationFactor)
}

// SetInterpolationFactor sets the blend factor used by
// InterpolatedTransform. Callers keep it in [0, 1].
func (b *Body) SetInterpolationFactor(f float64) {
	b.interpolationFactor = f
}

// CollisionEnabled reports whether the body participates in collision.
func (b *Body) CollisionEnabled() bool {
	return b.collisionEnabled
}

// SetCollisionEnabled flips collision participation. The geometry does not
// move, so the broad-phase only gets a recheck, not new bounds.
func (b *Body) SetCollisionEnabled(enabled bool) {
	if b.collisionEnabled == enabled {
		return
	}
	b.collisionEnabled = enabled
	b.RequestBroadPhaseRecheck()
}

// ShapeCount returns the number of live attachments.
func (b *Body) ShapeCount() int {
	return b.shapeCount
}

// Proxies returns the attachment handles, most-recently-attached first.
func (b *Body) Proxies() []ProxyHandle {
	out := make([]ProxyHandle, len(b.proxies))
	copy(out, b.proxies)
	return out
}

// Proxy resolves a handle to its attachment record, or nil if the handle is
// stale or belongs to another body. The pointer is valid only until the
// world's proxy pool is next mutated.
func (b *Body) Proxy(h ProxyHandle) *ProxyAttachment {
	p := b.world.proxies.Get(arena.Handle(h))
	if p == nil || p.body != b {
		return nil
	}
	return p
}

// Attach binds a shape to the body with a local-to-body transform and
// registers it with the broad-phase index. The definition is deduplicated
// through the world's shape store, so attaching an equal definition twice
// shares one canonical shape. Returns the attachment's handle.
func (b *Body) Attach(def shape.Shape, local common.Transform) ProxyHandle {
	canonical := b.world.shapes.Acquire(def)

	h := ProxyHandle(b.world.proxies.Insert(ProxyAttachment{
		body:       b,
		shape:      canonical,
		local:      local,
		massFactor: defaultMassFactor,
	}))

	// New attachments go to the front of the list.
	b.proxies = append(b.proxies, 0)
	copy(b.proxies[1:], b.proxies)
	b.proxies[0] = h

	aabb := canonical.ComputeAABB(b.transform.Mul(local))
	b.world.index.AddProxy(broadphase.ProxyID(h), aabb)

	b.shapeCount++
	return h
}

// AttachShape is Attach with an identity local transform.
func (b *Body) AttachShape(def shape.Shape) ProxyHandle {
	return b.Attach(def, common.IdentityTransform())
}

// Detach removes one attachment: the proxy leaves the broad-phase index,
// its shared shape reference returns to the store, and its pool slot is
// released. A handle the body does not own is ignored after the scan.
func (b *Body) Detach(h ProxyHandle) {
	for i, owned := range b.proxies {
		if owned != h {
			continue
		}
		b.releaseProxy(h)
		b.proxies = append(b.proxies[:i], b.proxies[i+1:]...)
		b.shapeCount--
		if b.shapeCount < 0 {
			panic("collision: shape count below zero")
		}
		return
	}
}

// DetachAll tears down every attachment in one walk and resets the list.
func (b *Body) DetachAll() {
	for _, h := range b.proxies {
		b.releaseProxy(h)
	}
	b.proxies = nil
	b.shapeCount = 0
}

// releaseProxy runs the deregister/release/free sequence for one handle the
// body is known to own.
func (b *Body) releaseProxy(h ProxyHandle) {
	p := b.world.proxies.Get(arena.Handle(h))
	if p == nil {
		panic("collision: owned proxy handle is stale")
	}
	b.world.index.RemoveProxy(broadphase.ProxyID(h))
	b.world.shapes.Release(p.shape)
	b.world.proxies.Remove(arena.Handle(h))
}

// RefreshBroadPhaseState recomputes every attachment's world bounds from
// the current body transform and pushes them to the broad-phase index.
func (b *Body) RefreshBroadPhaseState() {
	for _, h := range b.proxies {
		p := b.world.proxies.Get(arena.Handle(h))
		aabb := p.shape.ComputeAABB(b.transform.Mul(p.local))
		b.world.index.UpdateProxy(broadphase.ProxyID(h), aabb)
	}
}

// RequestBroadPhaseRecheck asks the index to re-evaluate pair candidacy for
// every attachment without touching its bounds.
func (b *Body) RequestBroadPhaseRecheck() {
	for _, h := range b.proxies {
		b.world.index.RequestRecheck(broadphase.ProxyID(h))
	}
}

// ContainsPoint reports whether a world-space point lies inside any
// attachment, stopping at the first hit. An empty body contains nothing.
func (b *Body) ContainsPoint(worldPoint mgl64.Vec3) bool {
	for _, h := range b.proxies {
		p := b.world.proxies.Get(arena.Handle(h))
		if p.TestPoint(worldPoint) {
			return true
		}
	}
	return false
}

// Raycast reports whether the ray hits the body within maxDistance.
//
// Ray-versus-shape geometry is not implemented yet; the query always
// reports no hit.
func (b *Body) Raycast(ray common.Ray, maxDistance float64) bool {
	return false
}

// RaycastInto is Raycast with hit feedback. Not implemented yet; info is
// left untouched and the query always reports no hit.
func (b *Body) RaycastInto(ray common.Ray, info *common.RaycastInfo, maxDistance float64) bool {
	return false
}
