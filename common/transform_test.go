package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return math.Abs(a.X()-b.X()) < epsilon &&
		math.Abs(a.Y()-b.Y()) < epsilon &&
		math.Abs(a.Z()-b.Z()) < epsilon
}

func TestTransformApply(t *testing.T) {
	quarterTurnY := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})

	cases := []struct {
		name  string
		tr    Transform
		point mgl64.Vec3
		want  mgl64.Vec3
	}{
		{
			name:  "identity",
			tr:    IdentityTransform(),
			point: mgl64.Vec3{1, 2, 3},
			want:  mgl64.Vec3{1, 2, 3},
		},
		{
			name:  "translation_only",
			tr:    NewTransform(mgl64.Vec3{10, 0, -5}, mgl64.QuatIdent()),
			point: mgl64.Vec3{1, 2, 3},
			want:  mgl64.Vec3{11, 2, -2},
		},
		{
			name:  "rotation_only_quarter_turn_y",
			tr:    NewTransform(mgl64.Vec3{}, quarterTurnY),
			point: mgl64.Vec3{1, 0, 0},
			want:  mgl64.Vec3{0, 0, -1},
		},
		{
			name:  "rotation_then_translation",
			tr:    NewTransform(mgl64.Vec3{5, 5, 5}, quarterTurnY),
			point: mgl64.Vec3{1, 0, 0},
			want:  mgl64.Vec3{5, 5, 4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.tr.Apply(c.point)
			if !vecNear(got, c.want) {
				t.Fatalf("Apply(%v) = %v, want %v", c.point, got, c.want)
			}
		})
	}
}

func TestTransformMulMatchesSequentialApply(t *testing.T) {
	outer := NewTransform(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 1, 0}))
	inner := NewTransform(mgl64.Vec3{-4, 0, 2}, mgl64.QuatRotate(math.Pi/5, mgl64.Vec3{1, 0, 0}))
	point := mgl64.Vec3{0.5, -1, 2}

	composed := outer.Mul(inner).Apply(point)
	sequential := outer.Apply(inner.Apply(point))
	if !vecNear(composed, sequential) {
		t.Fatalf("composed = %v, sequential = %v", composed, sequential)
	}
}

func TestTransformInverseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		tr   Transform
	}{
		{"identity", IdentityTransform()},
		{"translation", NewTransform(mgl64.Vec3{3, -7, 1}, mgl64.QuatIdent())},
		{"rotation", NewTransform(mgl64.Vec3{}, mgl64.QuatRotate(1.1, mgl64.Vec3{0, 0, 1}))},
		{"full_pose", NewTransform(mgl64.Vec3{2, 4, -6}, mgl64.QuatRotate(0.7, mgl64.Vec3{1, 1, 0}.Normalize()))},
	}

	point := mgl64.Vec3{1.5, -2.5, 0.25}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.tr.Inverse().Apply(c.tr.Apply(point))
			if !vecNear(got, point) {
				t.Fatalf("inverse round trip = %v, want %v", got, point)
			}
		})
	}
}

func TestInterpolateTransforms(t *testing.T) {
	a := NewTransform(mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
	b := NewTransform(mgl64.Vec3{10, -4, 2}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}))

	if got := InterpolateTransforms(a, b, 0); !vecNear(got.Position, a.Position) {
		t.Fatalf("f=0 position = %v, want %v", got.Position, a.Position)
	}
	if got := InterpolateTransforms(a, b, 1); !vecNear(got.Position, b.Position) {
		t.Fatalf("f=1 position = %v, want %v", got.Position, b.Position)
	}

	mid := InterpolateTransforms(a, b, 0.5)
	if !vecNear(mid.Position, mgl64.Vec3{5, -2, 1}) {
		t.Fatalf("f=0.5 position = %v, want {5 -2 1}", mid.Position)
	}
	// Halfway between identity and a quarter turn is an eighth turn.
	rotated := mid.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{math.Cos(math.Pi / 4), 0, -math.Sin(math.Pi / 4)}
	if !vecNear(rotated, want) {
		t.Fatalf("f=0.5 rotation maps x to %v, want %v", rotated, want)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Fatalf("Lerp(2, 6, 0.25) = %v, want 3", got)
	}
}
