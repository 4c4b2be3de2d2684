package broadphase

import "github.com/milk9111/physics3d/common"

// PairIndex tracks proxy bounds in a flat table and reports overlapping
// pairs by exhaustive sweep. It trades speed for being trivially correct;
// production worlds would plug a tree or grid behind the Index interface.
type PairIndex struct {
	aabbs   map[ProxyID]common.AABB
	order   []ProxyID
	recheck map[ProxyID]bool
}

var _ Index = (*PairIndex)(nil)

// NewPairIndex creates an empty index.
func NewPairIndex() *PairIndex {
	return &PairIndex{
		aabbs:   make(map[ProxyID]common.AABB),
		recheck: make(map[ProxyID]bool),
	}
}

// AddProxy registers a proxy. Adding an id twice is a contract violation.
func (x *PairIndex) AddProxy(id ProxyID, aabb common.AABB) {
	if _, ok := x.aabbs[id]; ok {
		panic("broadphase: proxy added twice")
	}
	x.aabbs[id] = aabb
	x.order = append(x.order, id)
}

// RemoveProxy deregisters a proxy. Removing an unknown id is a contract
// violation.
func (x *PairIndex) RemoveProxy(id ProxyID) {
	if _, ok := x.aabbs[id]; !ok {
		panic("broadphase: remove of unknown proxy")
	}
	delete(x.aabbs, id)
	delete(x.recheck, id)
	for i, other := range x.order {
		if other == id {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
}

// UpdateProxy replaces a proxy's bounds in place.
func (x *PairIndex) UpdateProxy(id ProxyID, aabb common.AABB) {
	if _, ok := x.aabbs[id]; !ok {
		panic("broadphase: update of unknown proxy")
	}
	x.aabbs[id] = aabb
}

// RequestRecheck marks a proxy for pair re-evaluation.
func (x *PairIndex) RequestRecheck(id ProxyID) {
	if _, ok := x.aabbs[id]; !ok {
		panic("broadphase: recheck of unknown proxy")
	}
	x.recheck[id] = true
}

// Contains reports whether a proxy is currently registered.
func (x *PairIndex) Contains(id ProxyID) bool {
	_, ok := x.aabbs[id]
	return ok
}

// AABBOf returns the bounds last pushed for a proxy.
func (x *PairIndex) AABBOf(id ProxyID) (common.AABB, bool) {
	aabb, ok := x.aabbs[id]
	return aabb, ok
}

// Len returns the number of registered proxies.
func (x *PairIndex) Len() int {
	return len(x.order)
}

// TakeRechecks returns the proxies marked for re-evaluation since the last
// call and clears the marks.
func (x *PairIndex) TakeRechecks() []ProxyID {
	if len(x.recheck) == 0 {
		return nil
	}
	ids := make([]ProxyID, 0, len(x.recheck))
	for _, id := range x.order {
		if x.recheck[id] {
			ids = append(ids, id)
		}
	}
	x.recheck = make(map[ProxyID]bool)
	return ids
}

// ComputePairs returns every overlapping proxy pair in registration order.
func (x *PairIndex) ComputePairs() [][2]ProxyID {
	var pairs [][2]ProxyID
	for i := 0; i < len(x.order); i++ {
		for j := i + 1; j < len(x.order); j++ {
			a, b := x.order[i], x.order[j]
			if x.aabbs[a].Overlaps(x.aabbs[b]) {
				pairs = append(pairs, [2]ProxyID{a, b})
			}
		}
	}
	return pairs
}
