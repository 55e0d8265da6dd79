package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind enumerates the closed set of shape kinds a body may carry
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPlane
	KindBall
	KindCuboid
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBall:
		return "ball"
	case KindCuboid:
		return "cuboid"
	case KindCompound:
		return "compound"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a node of a body's shape tree
// Only the fields matching Kind are meaningful
type Shape struct {
	Kind Kind

	// Plane: outward normal, not necessarily unit length
	Normal mgl64.Vec2
	// Ball
	Radius float64
	// Cuboid
	HalfExtents mgl64.Vec2
	// Compound
	Parts []Part
}

// Part places a sub-shape inside a compound relative to the body origin
type Part struct {
	Delta Pose
	Shape Shape
}

// Plane returns an infinite half-plane shape with the given normal
func Plane(nx, ny float64) Shape {
	return Shape{Kind: KindPlane, Normal: mgl64.Vec2{nx, ny}}
}

// Ball returns a disc shape
func Ball(radius float64) Shape {
	return Shape{Kind: KindBall, Radius: radius}
}

// Cuboid returns an axis-aligned box shape from half extents
func Cuboid(hx, hy float64) Shape {
	return Shape{Kind: KindCuboid, HalfExtents: mgl64.Vec2{hx, hy}}
}

// Compound groups parts under one body
func Compound(parts ...Part) Shape {
	return Shape{Kind: KindCompound, Parts: parts}
}

// Walk visits every leaf of the tree in order, passing the leaf pose relative
// to the body origin composed from delta. Stops at the first error returned by fn
func (s Shape) Walk(delta Pose, fn func(delta Pose, leaf Shape) error) error {
	if s.Kind != KindCompound {
		return fn(delta, s)
	}
	for _, p := range s.Parts {
		if err := p.Shape.Walk(delta.Compose(p.Delta), fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks structural soundness: known kinds, positive sizes, non-empty compounds
func (s Shape) Validate() error {
	switch s.Kind {
	case KindPlane:
		if s.Normal.Len() == 0 {
			return fmt.Errorf("%w: plane normal is zero", ErrInvalidShape)
		}
	case KindBall:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: ball radius %g", ErrInvalidShape, s.Radius)
		}
	case KindCuboid:
		if s.HalfExtents[0] <= 0 || s.HalfExtents[1] <= 0 {
			return fmt.Errorf("%w: cuboid half extents %v", ErrInvalidShape, s.HalfExtents)
		}
	case KindCompound:
		if len(s.Parts) == 0 {
			return fmt.Errorf("%w: empty compound", ErrInvalidShape)
		}
		for i, p := range s.Parts {
			if err := p.Shape.Validate(); err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidShape, s.Kind)
	}
	return nil
}

// HasPlane reports whether any leaf is a plane
func (s Shape) HasPlane() bool {
	found := false
	_ = s.Walk(Identity(), func(_ Pose, leaf Shape) error {
		if leaf.Kind == KindPlane {
			found = true
		}
		return nil
	})
	return found
}
