package scenario

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	lua "github.com/yuin/gopher-lua"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
)

// luaBuilder collects the scene declared by a script through its globals:
//
//	gravity(x, y)
//	plane(nx, ny), ball(r), cuboid(hx, hy) -> shape
//	compound{ {shape = s, x = 0, y = 0, angle = 0}, ... } -> shape
//	body{ shape = s, x =, y =, angle =, static =, density =, restitution =,
//	      friction =, margin =, name =, color = "#rrggbb" }
type luaBuilder struct {
	scene *Scene
}

// RunLua executes a scene script; name labels errors
func RunLua(src, name string) (*Scene, error) {
	vm := lua.NewState()
	defer vm.Close()

	b := &luaBuilder{scene: &Scene{}}
	for global, fn := range map[string]lua.LGFunction{
		"gravity":  b.gravity,
		"plane":    b.plane,
		"ball":     b.ball,
		"cuboid":   b.cuboid,
		"compound": b.compound,
		"body":     b.body,
	} {
		vm.SetGlobal(global, vm.NewFunction(fn))
	}

	if err := vm.DoString(src); err != nil {
		return nil, fmt.Errorf("run lua %s: %w", name, err)
	}
	return b.scene, nil
}

func (b *luaBuilder) gravity(L *lua.LState) int {
	b.scene.Gravity = mgl64.Vec2{float64(L.CheckNumber(1)), float64(L.CheckNumber(2))}
	return 0
}

func (b *luaBuilder) plane(L *lua.LState) int {
	return pushShape(L, sim.Plane(float64(L.CheckNumber(1)), float64(L.CheckNumber(2))))
}

func (b *luaBuilder) ball(L *lua.LState) int {
	return pushShape(L, sim.Ball(float64(L.CheckNumber(1))))
}

func (b *luaBuilder) cuboid(L *lua.LState) int {
	return pushShape(L, sim.Cuboid(float64(L.CheckNumber(1)), float64(L.CheckNumber(2))))
}

func (b *luaBuilder) compound(L *lua.LState) int {
	tbl := L.CheckTable(1)
	parts := make([]sim.Part, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			L.RaiseError("compound part %d must be a table", i)
			return 0
		}
		parts = append(parts, sim.Part{
			Delta: pose(L, entry),
			Shape: shapeField(L, entry),
		})
	}
	return pushShape(L, sim.Compound(parts...))
}

func (b *luaBuilder) body(L *lua.LState) int {
	tbl := L.CheckTable(1)
	def := BodyDef{BodyDesc: sim.BodyDesc{
		Name:        lua.LVAsString(tbl.RawGetString("name")),
		Shape:       shapeField(L, tbl),
		Static:      lua.LVAsBool(tbl.RawGetString("static")),
		Position:    pose(L, tbl),
		Density:     number(L, tbl, "density"),
		Restitution: number(L, tbl, "restitution"),
		Friction:    number(L, tbl, "friction"),
		Margin:      number(L, tbl, "margin"),
	}}
	if s := lua.LVAsString(tbl.RawGetString("color")); s != "" {
		c, err := render.ParseHex(s)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		def.Color = &c
	}
	b.scene.Bodies = append(b.scene.Bodies, def)
	L.Push(lua.LNumber(len(b.scene.Bodies)))
	return 1
}

func pushShape(L *lua.LState, s sim.Shape) int {
	ud := L.NewUserData()
	ud.Value = s
	L.Push(ud)
	return 1
}

// shapeField reads the shape stored under "shape"
func shapeField(L *lua.LState, tbl *lua.LTable) sim.Shape {
	ud, ok := tbl.RawGetString("shape").(*lua.LUserData)
	if ok {
		if s, ok := ud.Value.(sim.Shape); ok {
			return s
		}
	}
	L.RaiseError("shape must be built with plane, ball, cuboid or compound")
	return sim.Shape{}
}

func pose(L *lua.LState, tbl *lua.LTable) sim.Pose {
	return sim.Pose{
		X:     number(L, tbl, "x"),
		Y:     number(L, tbl, "y"),
		Angle: number(L, tbl, "angle"),
	}
}

// number reads an optional numeric field, zero when absent
func number(L *lua.LState, tbl *lua.LTable, key string) float64 {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LNumber:
		return float64(v)
	default:
		if v == lua.LNil {
			return 0
		}
		L.RaiseError("%s must be a number, got %s", key, v.Type())
		return 0
	}
}
