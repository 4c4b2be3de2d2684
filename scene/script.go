package scene

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

// A motion script defines update(t) returning a map of body name to
// [x, y, z] position; the dispatch tail routes each tick through it.
const motionDispatchScript = `
__out := update(__t)
`

// MotionScript animates scene bodies from a tengo script, compiled once
// and re-run every tick.
type MotionScript struct {
	compiled *tengo.Compiled
}

// LoadMotionScript reads and compiles a script file.
func LoadMotionScript(path string) (*MotionScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load script %s: %w", path, err)
	}
	ms, err := CompileMotionScript(src)
	if err != nil {
		return nil, fmt.Errorf("scene: compile script %s: %w", path, err)
	}
	return ms, nil
}

// CompileMotionScript compiles motion-script source.
func CompileMotionScript(src []byte) (*MotionScript, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), motionDispatchScript...))
	_ = script.Add("__t", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &MotionScript{compiled: compiled}, nil
}

// Update runs the script for simulation time t and returns the scripted
// body positions by name. Bodies the script does not mention keep their
// current pose.
func (m *MotionScript) Update(t float64) (map[string]mgl64.Vec3, error) {
	if err := m.compiled.Set("__t", t); err != nil {
		return nil, err
	}
	if err := m.compiled.Run(); err != nil {
		return nil, err
	}

	raw := m.compiled.Get("__out").Map()
	out := make(map[string]mgl64.Vec3, len(raw))
	for name, v := range raw {
		arr, ok := v.([]any)
		if !ok || len(arr) != 3 {
			return nil, fmt.Errorf("scene: script position for %q is not [x, y, z]", name)
		}
		var pos mgl64.Vec3
		for i, c := range arr {
			f, err := scriptFloat(c)
			if err != nil {
				return nil, fmt.Errorf("scene: script position for %q: %w", name, err)
			}
			pos[i] = f
		}
		out[name] = pos
	}
	return out, nil
}

func scriptFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("component %v is not a number", v)
	}
}
