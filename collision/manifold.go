package collision

// ContactManifold is the per-pair contact bookkeeping record the
// narrow-phase collaborator parks on a body between steps. Its content
// beyond the proxy pair is owned by that collaborator; this core only
// stores and tears down the list.
type ContactManifold struct {
	ProxyA, ProxyB ProxyHandle
}

// AddContactManifold records a contact pair against the body. The
// simulation step calls this while building contacts for a frame.
func (b *Body) AddContactManifold(m ContactManifold) {
	h := b.world.manifolds.Insert(m)
	b.manifolds = append(b.manifolds, h)
}

// ContactManifoldCount returns the number of parked manifold records.
func (b *Body) ContactManifoldCount() int {
	return len(b.manifolds)
}

// ResetContactManifolds releases every manifold record back to the world's
// pool in one walk and empties the list. The attachment list is untouched.
// The simulation step runs this once manifolds are no longer needed for a
// frame, and must have run it before the body is destroyed.
func (b *Body) ResetContactManifolds() {
	for _, h := range b.manifolds {
		if !b.world.manifolds.Remove(h) {
			panic("collision: owned manifold handle is stale")
		}
	}
	b.manifolds = nil
}
