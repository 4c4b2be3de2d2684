// Package scene loads yaml world descriptions, builds collision worlds from
// them, and hot-reloads them while the inspector runs.
package scene

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/physics3d/collision"
	"github.com/milk9111/physics3d/common"
	"github.com/milk9111/physics3d/shape"
)

type Spec struct {
	Bodies []BodySpec `yaml:"bodies"`
}

type BodySpec struct {
	Name     string      `yaml:"name"`
	Position [3]float64  `yaml:"position"`
	Rotation [3]float64  `yaml:"rotation"` // Euler angles in degrees, XYZ order
	Shapes   []ShapeSpec `yaml:"shapes"`
}

type ShapeSpec struct {
	Type        string     `yaml:"type"`
	Radius      float64    `yaml:"radius"`
	HalfExtents [3]float64 `yaml:"half_extents"`
	HalfHeight  float64    `yaml:"half_height"`
	Offset      [3]float64 `yaml:"offset"`
}

// LoadSpec reads and decodes a scene file.
func LoadSpec(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", filename, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scene: unmarshal %s: %w", filename, err)
	}

	return &spec, nil
}

// Build creates one body per BodySpec with its shapes attached, returning
// the bodies keyed by spec name.
func (s *Spec) Build(w *collision.World) (map[string]*collision.Body, error) {
	bodies := make(map[string]*collision.Body, len(s.Bodies))
	for i, bs := range s.Bodies {
		name := bs.Name
		if name == "" {
			return nil, fmt.Errorf("scene: body %d has no name", i)
		}
		if _, ok := bodies[name]; ok {
			return nil, fmt.Errorf("scene: duplicate body name %q", name)
		}

		body := w.CreateBody(bs.Transform())
		for j, ss := range bs.Shapes {
			def, err := ss.Shape()
			if err != nil {
				return nil, fmt.Errorf("scene: body %q shape %d: %w", name, j, err)
			}
			body.Attach(def, common.NewTransform(vec3(ss.Offset), mgl64.QuatIdent()))
		}
		bodies[name] = body
	}
	return bodies, nil
}

// Transform converts the spec's position and Euler rotation to a pose.
func (bs BodySpec) Transform() common.Transform {
	rot := mgl64.AnglesToQuat(
		mgl64.DegToRad(bs.Rotation[0]),
		mgl64.DegToRad(bs.Rotation[1]),
		mgl64.DegToRad(bs.Rotation[2]),
		mgl64.XYZ,
	)
	return common.NewTransform(vec3(bs.Position), rot)
}

// Shape converts a shape spec to its immutable definition.
func (ss ShapeSpec) Shape() (shape.Shape, error) {
	switch ss.Type {
	case "sphere":
		if !(ss.Radius > 0) {
			return nil, fmt.Errorf("sphere radius %v is not positive", ss.Radius)
		}
		return shape.NewSphere(ss.Radius), nil
	case "box":
		he := vec3(ss.HalfExtents)
		if !(he.X() > 0 && he.Y() > 0 && he.Z() > 0) {
			return nil, fmt.Errorf("box half extents %v are not positive", ss.HalfExtents)
		}
		return shape.NewBox(he), nil
	case "capsule":
		if !(ss.Radius > 0) || ss.HalfHeight < 0 || math.IsNaN(ss.HalfHeight) {
			return nil, fmt.Errorf("capsule radius %v / half height %v invalid", ss.Radius, ss.HalfHeight)
		}
		return shape.NewCapsule(ss.Radius, ss.HalfHeight), nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", ss.Type)
	}
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
