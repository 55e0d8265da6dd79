package scene

import (
	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
)

// Body is the read-only view of a simulation body that visuals mirror
// The simulation world owns and mutates the body; the scene never writes back
type Body interface {
	Handle() sim.Handle
	Position() sim.Pose
	IsActive() bool
	Margin() float64
	Shape() sim.Shape
}

// KeyOf returns the identity key used to index a body's visuals
func KeyOf(b Body) sim.Handle {
	return b.Handle()
}

// Node is a renderable proxy for one shape of a body
// The set of implementations is closed to this package
type Node interface {
	// Update refreshes cached screen state from the body
	Update()
	// Draw issues draw commands from cached state only
	Draw(s render.Surface)
	Select()
	Unselect()
	// SetColor replaces the base color
	SetColor(c render.RGB)
	// Contains reports whether a screen-unit point hits the cached shape
	Contains(x, y float64) bool

	sceneNode()
}
