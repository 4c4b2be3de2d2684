package common

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// RaycastInfo carries hit feedback from a raycast query.
type RaycastInfo struct {
	WorldPoint  mgl64.Vec3
	WorldNormal mgl64.Vec3
	Distance    float64
}
