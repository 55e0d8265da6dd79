package testbed

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/testbed2d/render"
)

// EventKind classifies frame loop events
type EventKind uint8

const (
	EventOther EventKind = iota
	EventUpdate
	EventRender
	EventKey
	EventMouse
	EventResize
)

// Event is one frame loop input
type Event struct {
	Kind EventKind

	// EventKey
	Key  tcell.Key
	Rune rune

	// EventMouse: cell under the pointer; EventResize: new size in cells
	X, Y int
	// EventMouse: primary button held
	Pressed bool
}

// EventSource yields events until it reports exhaustion
type EventSource interface {
	Next() (Event, bool)
}

// Display is the drawing target of the frame loop
type Display interface {
	render.Surface
	DrawText(col, row int, s string, fg, bg render.RGB)
	Present()
	Resize(cols, rows int)
	CellCenter(col, row int) (float64, float64)
	Camera() *render.Camera
}

var _ Display = (*render.Canvas)(nil)
