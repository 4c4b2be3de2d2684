// Command inspect renders a scene's broad-phase state top-down: one
// rectangle per shape attachment, red when its AABB overlaps another
// attachment's. Scene and script files are hot-reloaded while it runs.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/physics3d/broadphase"
	"github.com/milk9111/physics3d/collision"
	"github.com/milk9111/physics3d/scene"
)

const (
	screenWidth   = 960
	screenHeight  = 720
	pixelsPerUnit = 24.0
	tickSeconds   = 1.0 / 60.0
)

type inspector struct {
	scenePath  string
	scriptPath string

	index  *broadphase.PairIndex
	world  *collision.World
	bodies map[string]*collision.Body
	script *scene.MotionScript

	watcher *scene.Watcher
	elapsed float64
	status  string
}

func newInspector(scenePath, scriptPath string) (*inspector, error) {
	in := &inspector{
		scenePath:  scenePath,
		scriptPath: scriptPath,
	}
	if err := in.reloadScene(); err != nil {
		return nil, err
	}
	if scriptPath != "" {
		if err := in.reloadScript(); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func (in *inspector) reloadScene() error {
	spec, err := scene.LoadSpec(in.scenePath)
	if err != nil {
		return err
	}
	index := broadphase.NewPairIndex()
	world := collision.NewWorld(index)
	bodies, err := spec.Build(world)
	if err != nil {
		return err
	}
	in.index = index
	in.world = world
	in.bodies = bodies
	log.Printf("inspect: loaded %s (%d bodies, %d proxies)", in.scenePath, len(bodies), world.ProxyCount())
	return nil
}

func (in *inspector) reloadScript() error {
	script, err := scene.LoadMotionScript(in.scriptPath)
	if err != nil {
		return err
	}
	in.script = script
	log.Printf("inspect: loaded %s", in.scriptPath)
	return nil
}

func (in *inspector) Update() error {
	in.drainWatcher()

	in.elapsed += tickSeconds
	if in.script != nil {
		positions, err := in.script.Update(in.elapsed)
		if err != nil {
			in.status = err.Error()
			return nil
		}
		for name, pos := range positions {
			body, ok := in.bodies[name]
			if !ok {
				continue
			}
			tr := body.Transform()
			tr.Position = pos
			body.SetTransform(tr)
		}
	}
	return nil
}

func (in *inspector) drainWatcher() {
	if in.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-in.watcher.Events:
			if !ok {
				return
			}
			var err error
			switch filepath.Ext(path) {
			case ".tengo":
				err = in.reloadScript()
			default:
				err = in.reloadScene()
			}
			if err != nil {
				in.status = err.Error()
				log.Printf("inspect: reload %s: %v", path, err)
			} else {
				in.status = ""
			}
		case err, ok := <-in.watcher.Errors:
			if ok {
				log.Printf("inspect: watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (in *inspector) Draw(screen *ebiten.Image) {
	pairs := in.index.ComputePairs()
	hot := make(map[broadphase.ProxyID]bool, len(pairs)*2)
	for _, pair := range pairs {
		hot[pair[0]] = true
		hot[pair[1]] = true
	}

	names := make([]string, 0, len(in.bodies))
	for name := range in.bodies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		body := in.bodies[name]
		for _, h := range body.Proxies() {
			id := broadphase.ProxyID(h)
			aabb, ok := in.index.AABBOf(id)
			if !ok {
				continue
			}
			clr := color.RGBA{R: 220, G: 220, B: 220, A: 255}
			if hot[id] {
				clr = color.RGBA{R: 255, G: 64, B: 64, A: 255}
			}
			x, y := project(aabb.Min.X(), aabb.Max.Z())
			w := float32(aabb.Max.X()-aabb.Min.X()) * pixelsPerUnit
			d := float32(aabb.Max.Z()-aabb.Min.Z()) * pixelsPerUnit
			vector.StrokeRect(screen, x, y, w, d, 1.0, clr, false)
		}
		px, py := project(body.Transform().Position.X(), body.Transform().Position.Z())
		ebitenutil.DebugPrintAt(screen, name, int(px)+2, int(py)+2)
	}

	header := fmt.Sprintf("bodies: %d  proxies: %d  overlapping pairs: %d  t=%.1fs",
		len(in.bodies), in.world.ProxyCount(), len(pairs), in.elapsed)
	if in.status != "" {
		header += "\n" + in.status
	}
	ebitenutil.DebugPrintAt(screen, header, 10, 10)
}

func (in *inspector) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// project maps world X/Z to screen coordinates, world origin at the
// screen center with +Z growing upward on screen.
func project(wx, wz float64) (float32, float32) {
	return float32(wx*pixelsPerUnit) + screenWidth/2,
		screenHeight/2 - float32(wz*pixelsPerUnit)
}

func main() {
	scenePath := flag.String("scene", "scenes/demo.yaml", "scene file to load")
	scriptPath := flag.String("script", "", "tengo motion script driving body positions")
	watch := flag.Bool("watch", false, "reload scene and script files on change")
	flag.Parse()

	in, err := newInspector(*scenePath, *scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	if *watch {
		files := []string{*scenePath}
		if *scriptPath != "" {
			files = append(files, *scriptPath)
		}
		watcher, err := scene.NewWatcher(files...)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
		in.watcher = watcher
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("physics3d inspect")
	if err := ebiten.RunGame(in); err != nil {
		log.Fatal(err)
	}
}
