// Package scenario builds simulation worlds from the builtin demo, YAML scene
// files or Lua scene scripts. Every source produces a Scene, a flat list of
// body descriptions that Build turns into a sim.World.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
)

// ErrUnknownFormat is returned by Load for unrecognized file extensions
var ErrUnknownFormat = errors.New("unknown scene format")

// Scene is a world description
type Scene struct {
	Gravity mgl64.Vec2
	Bodies  []BodyDef
}

// BodyDef describes one body and its optional fixed color
type BodyDef struct {
	sim.BodyDesc
	Color *render.RGB
}

// ColorOverride pins a display color to a built body
type ColorOverride struct {
	Body  *sim.Body
	Color render.RGB
}

// Build creates a world holding every body in order
func (s *Scene) Build() (*sim.World, []ColorOverride, error) {
	w := sim.NewWorld(s.Gravity)
	var colors []ColorOverride
	for i, def := range s.Bodies {
		b, err := w.AddBody(def.BodyDesc)
		if err != nil {
			return nil, nil, fmt.Errorf("body %d %q: %w", i, def.Name, err)
		}
		if def.Color != nil {
			colors = append(colors, ColorOverride{Body: b, Color: *def.Color})
		}
	}
	return w, colors, nil
}

// Load reads a scene file, choosing the parser by extension
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	var sc *Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		sc, err = ParseYAML(data)
	case ".lua":
		sc, err = RunLua(string(data), path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Demo layout
const (
	demoBallCount   = 1000
	demoRadius      = 0.5
	demoDensity     = 1.0
	demoRestitution = 0.3
	demoFriction    = 0.6
	demoGravity     = 9.81
)

// Builtin returns the demo: a square grid of balls above two slanted walls
// forming a funnel, under downward gravity (screen y grows downward)
func Builtin() *Scene {
	sc := &Scene{Gravity: mgl64.Vec2{0, demoGravity}}

	for _, n := range []mgl64.Vec2{{-1, -1}, {1, -1}} {
		sc.Bodies = append(sc.Bodies, BodyDef{BodyDesc: sim.BodyDesc{
			Shape:       sim.Plane(n[0], n[1]),
			Static:      true,
			Position:    sim.Translation(0, 10),
			Restitution: demoRestitution,
			Friction:    demoFriction,
		}})
	}

	num := int(math.Sqrt(demoBallCount))
	shift := 2.5 * demoRadius
	center := shift * float64(num) / 2

	for i := 0; i < num; i++ {
		for j := 0; j < num; j++ {
			x := float64(i)*shift - center
			y := float64(j)*shift - center*2 - 20
			sc.Bodies = append(sc.Bodies, BodyDef{BodyDesc: sim.BodyDesc{
				Shape:       sim.Ball(demoRadius),
				Position:    sim.Translation(x, y),
				Density:     demoDensity,
				Restitution: demoRestitution,
				Friction:    demoFriction,
			}})
		}
	}
	return sc
}
