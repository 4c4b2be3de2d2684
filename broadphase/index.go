// Package broadphase defines the coarse spatial index a collision world
// keeps its proxy attachments registered with, plus a brute-force
// implementation good enough for tests and tooling.
package broadphase

import "github.com/milk9111/physics3d/common"

// ProxyID keys one registered proxy attachment.
type ProxyID uint64

// Index is the registration surface the collision core drives. Every proxy
// is added exactly once, updated in place while it lives, and removed
// exactly once; implementations may treat violations as fatal.
type Index interface {
	AddProxy(id ProxyID, aabb common.AABB)
	RemoveProxy(id ProxyID)
	UpdateProxy(id ProxyID, aabb common.AABB)

	// RequestRecheck asks the index to re-evaluate pair candidacy for a
	// proxy whose bounds did not change, e.g. after an enabled-state flip.
	RequestRecheck(id ProxyID)
}
