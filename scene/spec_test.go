package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/physics3d/collision"
)

const sampleScene = `
bodies:
  - name: ball
    position: [3, 0, -2]
    shapes:
      - type: sphere
        radius: 1
  - name: crate
    position: [0, 1, 0]
    rotation: [0, 90, 0]
    shapes:
      - type: box
        half_extents: [1, 1, 1]
      - type: capsule
        radius: 0.5
        half_height: 1
        offset: [0, 2, 0]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpecAndBuild(t *testing.T) {
	spec, err := LoadSpec(writeScene(t, sampleScene))
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Bodies) != 2 {
		t.Fatalf("Bodies = %d, want 2", len(spec.Bodies))
	}

	w := collision.NewWorld(nil)
	bodies, err := spec.Build(w)
	if err != nil {
		t.Fatal(err)
	}

	ball, ok := bodies["ball"]
	if !ok {
		t.Fatalf("ball not built")
	}
	if got := ball.Transform().Position; got != (mgl64.Vec3{3, 0, -2}) {
		t.Fatalf("ball position = %v, want {3 0 -2}", got)
	}
	if ball.ShapeCount() != 1 {
		t.Fatalf("ball ShapeCount = %d, want 1", ball.ShapeCount())
	}

	crate := bodies["crate"]
	if crate.ShapeCount() != 2 {
		t.Fatalf("crate ShapeCount = %d, want 2", crate.ShapeCount())
	}
	if !ball.ContainsPoint(mgl64.Vec3{3, 0.5, -2}) {
		t.Fatalf("built sphere does not contain an interior point")
	}
	if w.ProxyCount() != 3 {
		t.Fatalf("world ProxyCount = %d, want 3", w.ProxyCount())
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	if _, err := LoadSpec(writeScene(t, "bodies: [not a body")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestBuildValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "unnamed_body",
			content: `
bodies:
  - shapes:
      - type: sphere
        radius: 1
`,
		},
		{
			name: "duplicate_name",
			content: `
bodies:
  - name: a
    shapes: [{type: sphere, radius: 1}]
  - name: a
    shapes: [{type: sphere, radius: 1}]
`,
		},
		{
			name: "unknown_shape_type",
			content: `
bodies:
  - name: a
    shapes: [{type: pyramid}]
`,
		},
		{
			name: "zero_radius_sphere",
			content: `
bodies:
  - name: a
    shapes: [{type: sphere, radius: 0}]
`,
		},
		{
			name: "flat_box",
			content: `
bodies:
  - name: a
    shapes: [{type: box, half_extents: [1, 0, 1]}]
`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadSpec(writeScene(t, c.content))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := spec.Build(collision.NewWorld(nil)); err == nil {
				t.Fatalf("expected a build error")
			}
		})
	}
}
