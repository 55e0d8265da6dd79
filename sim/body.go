package sim

import (
	"github.com/jakecoffman/cp/v2"
)

// DefaultMargin is the collision margin applied when a BodyDesc leaves it unset
const DefaultMargin = 0.04

// Body is one rigid body owned by a World
// Only the World mutates it; every other holder reads through the accessors
type Body struct {
	handle Handle
	name   string
	body   *cp.Body
	shapes []*cp.Shape
	shape  Shape
	margin float64
	static bool
}

// Handle returns the identity issued at creation
func (b *Body) Handle() Handle { return b.handle }

// Name returns the optional label given by the scene description
func (b *Body) Name() string { return b.name }

// Position returns the current world pose
func (b *Body) Position() Pose {
	p := b.body.Position()
	return Pose{X: p.X, Y: p.Y, Angle: b.body.Angle()}
}

// IsActive reports whether the body is awake
func (b *Body) IsActive() bool {
	return !b.body.IsSleeping()
}

// Margin returns the collision margin added around every shape
func (b *Body) Margin() float64 { return b.margin }

// Shape returns the shape tree
func (b *Body) Shape() Shape { return b.shape }

// CanMove reports whether the body is dynamic
func (b *Body) CanMove() bool { return !b.static }

// BodyDesc describes a body to create
type BodyDesc struct {
	Name        string
	Shape       Shape
	Static      bool
	Position    Pose
	Density     float64
	Restitution float64
	Friction    float64
	// Margin defaults to DefaultMargin when zero; use a negative value for none
	Margin float64
}

func (d BodyDesc) margin() float64 {
	switch {
	case d.Margin < 0:
		return 0
	case d.Margin == 0:
		return DefaultMargin
	default:
		return d.Margin
	}
}
