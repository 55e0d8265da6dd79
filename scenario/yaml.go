package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
)

type yamlFile struct {
	Gravity []float64  `yaml:"gravity"`
	Bodies  []yamlBody `yaml:"bodies"`
	Grids   []yamlGrid `yaml:"grids"`
}

type yamlBody struct {
	Name        string    `yaml:"name"`
	Shape       yamlShape `yaml:"shape"`
	Static      bool      `yaml:"static"`
	Position    []float64 `yaml:"position"`
	Angle       float64   `yaml:"angle"` // radians
	Density     float64   `yaml:"density"`
	Restitution float64   `yaml:"restitution"`
	Friction    float64   `yaml:"friction"`
	Margin      float64   `yaml:"margin"`
	Color       string    `yaml:"color"`
}

// yamlShape sets exactly one of its fields
type yamlShape struct {
	Plane    []float64  `yaml:"plane"`
	Ball     float64    `yaml:"ball"`
	Cuboid   []float64  `yaml:"cuboid"`
	Compound []yamlPart `yaml:"compound"`
}

type yamlPart struct {
	Position []float64 `yaml:"position"`
	Angle    float64   `yaml:"angle"`
	Shape    yamlShape `yaml:"shape"`
}

// yamlGrid repeats a body template over cols x rows positions, column-major
type yamlGrid struct {
	Cols    int       `yaml:"cols"`
	Rows    int       `yaml:"rows"`
	Origin  []float64 `yaml:"origin"`
	Spacing []float64 `yaml:"spacing"`
	Body    yamlBody  `yaml:"body"`
}

// ParseYAML decodes a scene document; bodies come first, then grids in order
func ParseYAML(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f yamlFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	sc := &Scene{}
	if f.Gravity != nil {
		g, err := vec2(f.Gravity, "gravity")
		if err != nil {
			return nil, err
		}
		sc.Gravity = g
	}

	for i, b := range f.Bodies {
		def, err := b.def(mgl64.Vec2{})
		if err != nil {
			return nil, fmt.Errorf("bodies[%d]: %w", i, err)
		}
		sc.Bodies = append(sc.Bodies, def)
	}

	for i, g := range f.Grids {
		if err := g.expand(sc); err != nil {
			return nil, fmt.Errorf("grids[%d]: %w", i, err)
		}
	}
	return sc, nil
}

func (g yamlGrid) expand(sc *Scene) error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("grid size %dx%d", g.Cols, g.Rows)
	}
	var origin, spacing mgl64.Vec2
	var err error
	if g.Origin != nil {
		if origin, err = vec2(g.Origin, "origin"); err != nil {
			return err
		}
	}
	if spacing, err = vec2(g.Spacing, "spacing"); err != nil {
		return err
	}

	for i := 0; i < g.Cols; i++ {
		for j := 0; j < g.Rows; j++ {
			offset := origin.Add(mgl64.Vec2{float64(i) * spacing[0], float64(j) * spacing[1]})
			def, err := g.Body.def(offset)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", i, j, err)
			}
			sc.Bodies = append(sc.Bodies, def)
		}
	}
	return nil
}

func (b yamlBody) def(offset mgl64.Vec2) (BodyDef, error) {
	shape, err := b.Shape.shape()
	if err != nil {
		return BodyDef{}, err
	}
	pos := offset
	if b.Position != nil {
		p, err := vec2(b.Position, "position")
		if err != nil {
			return BodyDef{}, err
		}
		pos = pos.Add(p)
	}

	def := BodyDef{BodyDesc: sim.BodyDesc{
		Name:        b.Name,
		Shape:       shape,
		Static:      b.Static,
		Position:    sim.Pose{X: pos[0], Y: pos[1], Angle: b.Angle},
		Density:     b.Density,
		Restitution: b.Restitution,
		Friction:    b.Friction,
		Margin:      b.Margin,
	}}
	if b.Color != "" {
		c, err := render.ParseHex(b.Color)
		if err != nil {
			return BodyDef{}, err
		}
		def.Color = &c
	}
	return def, nil
}

func (s yamlShape) shape() (sim.Shape, error) {
	var out []sim.Shape
	if s.Plane != nil {
		n, err := vec2(s.Plane, "plane")
		if err != nil {
			return sim.Shape{}, err
		}
		out = append(out, sim.Plane(n[0], n[1]))
	}
	if s.Ball != 0 {
		out = append(out, sim.Ball(s.Ball))
	}
	if s.Cuboid != nil {
		h, err := vec2(s.Cuboid, "cuboid")
		if err != nil {
			return sim.Shape{}, err
		}
		out = append(out, sim.Cuboid(h[0], h[1]))
	}
	if s.Compound != nil {
		parts := make([]sim.Part, 0, len(s.Compound))
		for i, p := range s.Compound {
			child, err := p.Shape.shape()
			if err != nil {
				return sim.Shape{}, fmt.Errorf("compound[%d]: %w", i, err)
			}
			var pos mgl64.Vec2
			if p.Position != nil {
				if pos, err = vec2(p.Position, "position"); err != nil {
					return sim.Shape{}, fmt.Errorf("compound[%d]: %w", i, err)
				}
			}
			parts = append(parts, sim.Part{
				Delta: sim.Pose{X: pos[0], Y: pos[1], Angle: p.Angle},
				Shape: child,
			})
		}
		out = append(out, sim.Compound(parts...))
	}

	if len(out) != 1 {
		return sim.Shape{}, fmt.Errorf("shape must set exactly one of plane, ball, cuboid, compound; got %d", len(out))
	}
	return out[0], nil
}

func vec2(v []float64, field string) (mgl64.Vec2, error) {
	if len(v) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("%s: want 2 numbers, got %d", field, len(v))
	}
	return mgl64.Vec2{v[0], v[1]}, nil
}
