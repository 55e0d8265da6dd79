package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
)

func TestBuiltinLayout(t *testing.T) {
	sc := Builtin()
	if sc.Gravity != (mgl64.Vec2{0, 9.81}) {
		t.Errorf("gravity = %v, want (0, 9.81)", sc.Gravity)
	}

	var planes, balls int
	for _, b := range sc.Bodies {
		switch b.Shape.Kind {
		case sim.KindPlane:
			planes++
			if !b.Static {
				t.Error("plane is not static")
			}
			if b.Position != sim.Translation(0, 10) {
				t.Errorf("plane position = %v, want (0, 10)", b.Position)
			}
		case sim.KindBall:
			balls++
			if b.Shape.Radius != 0.5 || b.Density != 1 || b.Restitution != 0.3 || b.Friction != 0.6 {
				t.Errorf("ball desc = %+v", b.BodyDesc)
			}
		}
	}
	if planes != 2 || balls != 961 {
		t.Fatalf("planes/balls = %d/%d, want 2/961", planes, balls)
	}

	first, last := sc.Bodies[2].Position, sc.Bodies[len(sc.Bodies)-1].Position
	if first != sim.Translation(-19.375, -58.75) {
		t.Errorf("first ball at %v, want (-19.375, -58.75)", first)
	}
	if last != sim.Translation(18.125, -21.25) {
		t.Errorf("last ball at %v, want (18.125, -21.25)", last)
	}
}

func TestBuiltinBuilds(t *testing.T) {
	w, colors, err := Builtin().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 963 {
		t.Errorf("world bodies = %d, want 963", w.Len())
	}
	if len(colors) != 0 {
		t.Errorf("color overrides = %d, want 0", len(colors))
	}
}

const yamlScene = `
gravity: [0, 9.81]
bodies:
  - name: floor
    static: true
    shape: {plane: [0, -1]}
    position: [0, 10]
    friction: 0.5
  - name: dumbbell
    shape:
      compound:
        - position: [-1, 0]
          shape: {ball: 0.5}
        - position: [1, 0]
          shape: {ball: 0.5}
    density: 2
    color: "#ff8000"
grids:
  - cols: 3
    rows: 2
    origin: [-1, -5]
    spacing: [1.25, 1.5]
    body:
      shape: {ball: 0.5}
      density: 1
`

const luaScene = `
gravity(0, 9.81)
body{ name = "floor", static = true, shape = plane(0, -1), x = 0, y = 10, friction = 0.5 }
body{
  name = "dumbbell",
  shape = compound{ {shape = ball(0.5), x = -1}, {shape = ball(0.5), x = 1} },
  density = 2,
  color = "#ff8000",
}
for i = 0, 2 do
  for j = 0, 1 do
    body{ shape = ball(0.5), x = -1 + i * 1.25, y = -5 + j * 1.5, density = 1 }
  end
end
`

func TestYAMLAndLuaAgree(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(yamlScene))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	fromLua, err := RunLua(luaScene, "test.lua")
	if err != nil {
		t.Fatalf("RunLua: %v", err)
	}

	if len(fromYAML.Bodies) != 8 {
		t.Fatalf("yaml bodies = %d, want 8", len(fromYAML.Bodies))
	}
	if !reflect.DeepEqual(fromYAML, fromLua) {
		t.Errorf("yaml and lua scenes differ:\nyaml %+v\nlua  %+v", fromYAML, fromLua)
	}

	w, colors, err := fromYAML.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 8 {
		t.Errorf("world bodies = %d, want 8", w.Len())
	}
	if len(colors) != 1 || colors[0].Color != (render.RGB{R: 0xff, G: 0x80}) || colors[0].Body.Name() != "dumbbell" {
		t.Errorf("color overrides = %+v", colors)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "bodies:\n  - shape: {ball: 1}\n    mass: 3\n", "mass"},
		{"two shapes", "bodies:\n  - shape: {ball: 1, plane: [0, 1]}\n", "exactly one"},
		{"no shape", "bodies:\n  - density: 1\n", "exactly one"},
		{"short vector", "gravity: [1]\n", "gravity"},
		{"bad color", "bodies:\n  - shape: {ball: 1}\n    color: red\n", "red"},
		{"empty grid", "grids:\n  - cols: 0\n    rows: 1\n    spacing: [1, 1]\n    body: {shape: {ball: 1}}\n", "grid size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseYAML error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	sc, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML(nil): %v", err)
	}
	if len(sc.Bodies) != 0 {
		t.Errorf("bodies = %d, want 0", len(sc.Bodies))
	}
}

func TestRunLuaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing shape", `body{ x = 1 }`},
		{"shape not userdata", `body{ shape = 3 }`},
		{"non-number field", `body{ shape = ball(1), x = "far" }`},
		{"bad compound part", `compound{ 5 }`},
		{"bad color", `body{ shape = ball(1), color = "nope" }`},
		{"syntax", `body{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunLua(tt.src, "bad.lua"); err == nil {
				t.Error("RunLua succeeded, want error")
			}
		})
	}
}

func TestBuildReportsInvalidBody(t *testing.T) {
	sc := &Scene{Bodies: []BodyDef{
		{BodyDesc: sim.BodyDesc{Name: "ok", Shape: sim.Ball(1), Density: 1}},
		{BodyDesc: sim.BodyDesc{Name: "wall", Shape: sim.Plane(0, 1)}},
	}}
	_, _, err := sc.Build()
	if !errors.Is(err, sim.ErrStaticOnly) {
		t.Errorf("Build error = %v, want ErrStaticOnly", err)
	}
	if err != nil && !strings.Contains(err.Error(), "wall") {
		t.Errorf("error %q does not name the body", err)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	for _, name := range []string{"scene.yaml", "scene.YML"} {
		sc, err := Load(write(name, yamlScene))
		if err != nil || len(sc.Bodies) != 8 {
			t.Errorf("Load(%s) = %v bodies, err %v", name, sc, err)
		}
	}

	sc, err := Load(write("scene.lua", luaScene))
	if err != nil || len(sc.Bodies) != 8 {
		t.Errorf("Load(scene.lua) err %v", err)
	}

	if _, err := Load(write("scene.json", "{}")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.json) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
