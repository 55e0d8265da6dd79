package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp/v2"
)

var (
	// ErrInvalidShape reports a malformed shape tree
	ErrInvalidShape = errors.New("sim: invalid shape")
	// ErrStaticOnly reports a plane attached to a dynamic body
	ErrStaticOnly = errors.New("sim: planes require a static body")
)

const (
	// SleepTimeThreshold is how long a body must idle before the space puts it to sleep
	SleepTimeThreshold = 0.5
	// PlaneExtent is the half length of the segment standing in for an infinite plane
	PlaneExtent = 1000.0

	defaultDensity = 1.0
)

// World owns every body and the underlying cp space
type World struct {
	space  *cp.Space
	bodies arena[*Body]
	order  []Handle
	steps  uint64
}

// NewWorld creates an empty world with the given gravity
func NewWorld(gravity mgl64.Vec2) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: gravity[0], Y: gravity[1]})
	space.SleepTimeThreshold = SleepTimeThreshold
	return &World{space: space}
}

// SetGravity replaces the gravity vector
func (w *World) SetGravity(gravity mgl64.Vec2) {
	w.space.SetGravity(cp.Vector{X: gravity[0], Y: gravity[1]})
}

// AddBody creates a body from desc and registers it with the space
func (w *World) AddBody(desc BodyDesc) (*Body, error) {
	if err := desc.Shape.Validate(); err != nil {
		return nil, err
	}
	if !desc.Static && desc.Shape.HasPlane() {
		return nil, ErrStaticOnly
	}

	margin := desc.margin()
	density := desc.Density
	if density <= 0 {
		density = defaultDensity
	}

	var cb *cp.Body
	if desc.Static {
		cb = cp.NewStaticBody()
	} else {
		mass, moment, err := massProperties(desc.Shape, density, margin)
		if err != nil {
			return nil, err
		}
		cb = cp.NewBody(mass, moment)
	}
	cb.SetPosition(cp.Vector{X: desc.Position.X, Y: desc.Position.Y})
	cb.SetAngle(desc.Position.Angle)

	shapes := make([]*cp.Shape, 0, 1)
	err := desc.Shape.Walk(Identity(), func(delta Pose, leaf Shape) error {
		s, err := newShape(cb, delta, leaf, margin)
		if err != nil {
			return err
		}
		s.SetElasticity(desc.Restitution)
		s.SetFriction(desc.Friction)
		shapes = append(shapes, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.space.AddBody(cb)
	for _, s := range shapes {
		w.space.AddShape(s)
	}

	b := &Body{
		name:   desc.Name,
		body:   cb,
		shapes: shapes,
		shape:  desc.Shape,
		margin: margin,
		static: desc.Static,
	}
	b.handle = w.bodies.insert(b)
	w.order = append(w.order, b.handle)
	return b, nil
}

// RemoveBody detaches the body from the space and invalidates its handle
func (w *World) RemoveBody(h Handle) bool {
	b, ok := w.bodies.get(h)
	if !ok {
		return false
	}
	for _, s := range b.shapes {
		w.space.RemoveShape(s)
	}
	w.space.RemoveBody(b.body)
	w.bodies.remove(h)

	for i, oh := range w.order {
		if oh == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Body resolves a handle issued by this world
func (w *World) Body(h Handle) (*Body, bool) {
	return w.bodies.get(h)
}

// Bodies returns the live bodies in creation order
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.order))
	for _, h := range w.order {
		if b, ok := w.bodies.get(h); ok {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return w.bodies.len()
}

// Step advances the simulation by dt
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	w.steps++
}

// Steps returns how many times Step ran
func (w *World) Steps() uint64 {
	return w.steps
}

func newShape(body *cp.Body, delta Pose, leaf Shape, margin float64) (*cp.Shape, error) {
	switch leaf.Kind {
	case KindBall:
		return cp.NewCircle(body, leaf.Radius+margin, cp.Vector{X: delta.X, Y: delta.Y}), nil
	case KindCuboid:
		if delta.Angle != 0 {
			return nil, fmt.Errorf("%w: rotated cuboid part", ErrInvalidShape)
		}
		hx, hy := leaf.HalfExtents[0], leaf.HalfExtents[1]
		bb := cp.BB{L: delta.X - hx, B: delta.Y - hy, R: delta.X + hx, T: delta.Y + hy}
		return cp.NewBox2(body, bb, margin), nil
	case KindPlane:
		// Segment through the plane origin along its tangent
		n := leaf.Normal.Normalize()
		tx, ty := -n[1]*PlaneExtent, n[0]*PlaneExtent
		ax, ay := delta.Apply(-tx, -ty)
		bx, by := delta.Apply(tx, ty)
		return cp.NewSegment(body, cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}, margin), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidShape, leaf.Kind)
	}
}

// massProperties sums leaf mass and moment about the body origin
func massProperties(s Shape, density, margin float64) (mass, moment float64, err error) {
	err = s.Walk(Identity(), func(delta Pose, leaf Shape) error {
		offset := cp.Vector{X: delta.X, Y: delta.Y}
		switch leaf.Kind {
		case KindBall:
			r := leaf.Radius + margin
			m := density * math.Pi * r * r
			mass += m
			moment += cp.MomentForCircle(m, 0, r, offset)
		case KindCuboid:
			w, h := 2*leaf.HalfExtents[0], 2*leaf.HalfExtents[1]
			m := density * w * h
			mass += m
			moment += cp.MomentForBox(m, w, h) + m*(delta.X*delta.X+delta.Y*delta.Y)
		default:
			return fmt.Errorf("%w: %s has no mass", ErrInvalidShape, leaf.Kind)
		}
		return nil
	})
	return mass, moment, err
}
