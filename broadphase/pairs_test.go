package broadphase

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/common"
)

func unitBoxAt(x float64) common.AABB {
	return common.AABB{
		Min: mgl64.Vec3{x, 0, 0},
		Max: mgl64.Vec3{x + 1, 1, 1},
	}
}

func TestPairIndexBookkeeping(t *testing.T) {
	x := NewPairIndex()

	x.AddProxy(1, unitBoxAt(0))
	x.AddProxy(2, unitBoxAt(10))
	if x.Len() != 2 {
		t.Fatalf("Len = %d, want 2", x.Len())
	}
	if !x.Contains(1) || !x.Contains(2) {
		t.Fatalf("added proxies must be contained")
	}

	x.UpdateProxy(2, unitBoxAt(0.5))
	aabb, ok := x.AABBOf(2)
	if !ok || aabb != unitBoxAt(0.5) {
		t.Fatalf("AABBOf(2) = %+v ok=%v after update", aabb, ok)
	}

	x.RemoveProxy(1)
	if x.Contains(1) {
		t.Fatalf("removed proxy still contained")
	}
	if x.Len() != 1 {
		t.Fatalf("Len = %d after remove, want 1", x.Len())
	}
}

func TestPairIndexComputePairs(t *testing.T) {
	cases := []struct {
		name      string
		positions map[ProxyID]float64
		want      [][2]ProxyID
	}{
		{
			name:      "no_overlap",
			positions: map[ProxyID]float64{1: 0, 2: 5, 3: 10},
			want:      nil,
		},
		{
			name:      "one_pair",
			positions: map[ProxyID]float64{1: 0, 2: 0.5, 3: 10},
			want:      [][2]ProxyID{{1, 2}},
		},
		{
			name:      "chain",
			positions: map[ProxyID]float64{1: 0, 2: 0.9, 3: 1.8},
			want:      [][2]ProxyID{{1, 2}, {2, 3}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := NewPairIndex()
			for _, id := range []ProxyID{1, 2, 3} {
				x.AddProxy(id, unitBoxAt(c.positions[id]))
			}
			got := x.ComputePairs()
			if len(got) != len(c.want) {
				t.Fatalf("ComputePairs = %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("pair %d = %v, want %v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestPairIndexRechecks(t *testing.T) {
	x := NewPairIndex()
	x.AddProxy(1, unitBoxAt(0))
	x.AddProxy(2, unitBoxAt(5))

	if got := x.TakeRechecks(); got != nil {
		t.Fatalf("TakeRechecks on clean index = %v, want nil", got)
	}

	x.RequestRecheck(2)
	x.RequestRecheck(2)
	got := x.TakeRechecks()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("TakeRechecks = %v, want [2]", got)
	}
	if got := x.TakeRechecks(); got != nil {
		t.Fatalf("rechecks must clear once taken, got %v", got)
	}
}

func TestPairIndexContractViolationsPanic(t *testing.T) {
	cases := []struct {
		name string
		run  func(x *PairIndex)
	}{
		{"double_add", func(x *PairIndex) { x.AddProxy(1, unitBoxAt(0)); x.AddProxy(1, unitBoxAt(1)) }},
		{"remove_unknown", func(x *PairIndex) { x.RemoveProxy(9) }},
		{"update_unknown", func(x *PairIndex) { x.UpdateProxy(9, unitBoxAt(0)) }},
		{"recheck_unknown", func(x *PairIndex) { x.RequestRecheck(9) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			c.run(NewPairIndex())
		})
	}
}
