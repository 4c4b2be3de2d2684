// Package collision manages the attachment of collision geometry to bodies
// and keeps that geometry synchronized with a broad-phase spatial index.
//
// A World owns the shared shape store, the broad-phase index, and the pools
// that back attachment and contact records; bodies borrow those through a
// non-owning back-reference. Everything here assumes one simulation thread
// per world, with no internal locking.
package collision

import (
	"github.com/milk9111/physics3d/arena"
	"github.com/milk9111/physics3d/broadphase"
	"github.com/milk9111/physics3d/common"
	"github.com/milk9111/physics3d/shape"
)

// World owns bodies and the collaborators their attachments are registered
// with.
type World struct {
	shapes    *shape.Store
	index     broadphase.Index
	proxies   arena.Arena[ProxyAttachment]
	manifolds arena.Arena[ContactManifold]

	// Body ids are stable for a body's lifetime and reused after death,
	// slot-indexed at id-1.
	bodies  []*Body
	freeIDs []uint32
}

// NewWorld creates a world around a broad-phase index. A nil index gets the
// brute-force PairIndex.
func NewWorld(index broadphase.Index) *World {
	if index == nil {
		index = broadphase.NewPairIndex()
	}
	return &World{
		shapes: shape.NewStore(),
		index:  index,
	}
}

// CreateBody adds a collision body at the given transform.
func (w *World) CreateBody(tr common.Transform) *Body {
	var id uint32
	if n := len(w.freeIDs); n > 0 {
		id = w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
	} else {
		w.bodies = append(w.bodies, nil)
		id = uint32(len(w.bodies))
	}
	b := &Body{
		id:               id,
		transform:        tr,
		oldTransform:     tr,
		collisionEnabled: true,
		world:            w,
	}
	w.bodies[id-1] = b
	return b
}

// DestroyBody removes a body, detaching all of its shapes. The body's
// contact-manifold list must already have been reset by the simulation
// step; destroying a body with parked manifolds is a contract violation.
func (w *World) DestroyBody(b *Body) {
	if b.world != w {
		panic("collision: body does not belong to this world")
	}
	if len(b.manifolds) != 0 {
		panic("collision: destroying body with live contact manifolds")
	}
	b.DetachAll()
	w.bodies[b.id-1] = nil
	w.freeIDs = append(w.freeIDs, b.id)
	b.world = nil
}

// Bodies returns every live body in creation-slot order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Body returns the live body with the given id, or nil.
func (w *World) Body(id uint32) *Body {
	if id == 0 || int(id) > len(w.bodies) {
		return nil
	}
	return w.bodies[id-1]
}

// BroadPhase returns the index attachments are registered with.
func (w *World) BroadPhase() broadphase.Index {
	return w.index
}

// ShapeStore returns the world's deduplicating shape store.
func (w *World) ShapeStore() *shape.Store {
	return w.shapes
}

// Proxy resolves an attachment handle regardless of owning body, or nil if
// it is stale. The pointer is valid only until the proxy pool is next
// mutated.
func (w *World) Proxy(h ProxyHandle) *ProxyAttachment {
	return w.proxies.Get(arena.Handle(h))
}

// ProxyCount returns the number of live attachments across all bodies.
func (w *World) ProxyCount() int {
	return w.proxies.Len()
}
