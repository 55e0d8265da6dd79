package scene

import (
	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
	"github.com/lixenwraith/testbed2d/vmath"
)

// DrawScale converts simulation length units to screen units
const DrawScale = 20.0

// Ball is the visual for one disc shape
type Ball struct {
	body  Body
	delta sim.Pose

	// Cached screen state, refreshed by Update
	x, y   float64
	angle  float64 // degrees
	radius float64

	base     render.RGB
	color    render.RGB
	selected bool
	fill     render.RGBA
}

var _ Node = (*Ball)(nil)

// NewBall creates the visual for a disc of the given radius (margin included)
// placed at delta relative to the body origin
func NewBall(body Body, delta sim.Pose, radius float64, color render.RGB) *Ball {
	r := radius * DrawScale
	return &Ball{
		body:   body,
		delta:  delta,
		x:      r,
		y:      r,
		radius: r,
		base:   color,
		color:  color,
		fill:   color.Opaque(),
	}
}

func (b *Ball) sceneNode() {}

// Update reads the body pose and activity and recomputes cached state
// Sleeping bodies render at a quarter of their color
func (b *Ball) Update() {
	pose := b.body.Position().Compose(b.delta)

	b.x = pose.X * DrawScale
	b.y = pose.Y * DrawScale
	b.angle = vmath.RadToDeg(pose.Angle)

	if b.body.IsActive() {
		b.fill = b.color.Opaque()
	} else {
		b.fill = b.color.Quarter().Opaque()
	}
}

// Draw fills a circle at the cached position
func (b *Ball) Draw(s render.Surface) {
	s.FillCircle(b.x, b.y, b.radius, b.fill)
}

// Select switches the displayed color to the highlight
func (b *Ball) Select() {
	b.selected = true
	b.color = render.RGBHighlight
}

// Unselect restores the base color
func (b *Ball) Unselect() {
	b.selected = false
	b.color = b.base
}

// SetColor replaces the base color; a selected ball keeps its highlight
func (b *Ball) SetColor(c render.RGB) {
	b.base = c
	if !b.selected {
		b.color = c
	}
}

// Contains reports whether (x, y) in screen units lies on the cached disc
func (b *Ball) Contains(x, y float64) bool {
	return vmath.CircleContains(x, y, b.x, b.y, b.radius)
}

// Body returns the mirrored body
func (b *Ball) Body() Body { return b.body }

// Delta returns the offset from the body origin
func (b *Ball) Delta() sim.Pose { return b.delta }

// Position returns the cached screen position
func (b *Ball) Position() (float64, float64) { return b.x, b.y }

// Angle returns the cached rotation in degrees
func (b *Ball) Angle() float64 { return b.angle }

// Radius returns the screen radius
func (b *Ball) Radius() float64 { return b.radius }

// BaseColor returns the color restored by Unselect
func (b *Ball) BaseColor() render.RGB { return b.base }

// Color returns the displayed color before activity dimming
func (b *Ball) Color() render.RGB { return b.color }

// Fill returns the color used by the last Update
func (b *Ball) Fill() render.RGBA { return b.fill }

// Selected reports whether the highlight is on
func (b *Ball) Selected() bool { return b.selected }
