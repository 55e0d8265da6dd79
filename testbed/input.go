package testbed

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/testbed2d/sim"
)

const (
	panStep    = 4.0 // pixels per arrow press
	zoomFactor = 1.25
)

func (t *Testbed) handleKey(ev Event) {
	cam := t.display.Camera()

	switch ev.Key {
	case tcell.KeyUp:
		cam.Pan(0, -panStep)
	case tcell.KeyDown:
		cam.Pan(0, panStep)
	case tcell.KeyLeft:
		cam.Pan(-panStep, 0)
	case tcell.KeyRight:
		cam.Pan(panStep, 0)

	case tcell.KeyRune:
		switch ev.Rune {
		case 't':
			t.ctrl.Toggle()
		case 's':
			t.ctrl.RequestStep()
		case '+', '=':
			cam.ZoomBy(zoomFactor)
		case '-':
			cam.ZoomBy(1 / zoomFactor)
		case 'b':
			t.statusBar = !t.statusBar
		}
		t.statMode.Store(t.ctrl.Mode().String())
	}
}

// handleMouse highlights the movable body under the pointer while the button is held
func (t *Testbed) handleMouse(ev Event) {
	if !ev.Pressed {
		if !t.selected.IsZero() {
			t.scene.Unselect(t.selected)
			t.selected = sim.Handle{}
		}
		return
	}

	x, y := t.display.CellCenter(ev.X, ev.Y)
	h, ok := t.scene.Pick(x, y)
	if !ok || t.world == nil {
		return
	}
	if b, ok := t.world.Body(h); !ok || !b.CanMove() {
		return
	}
	if !t.selected.IsZero() {
		t.scene.Unselect(t.selected)
	}
	t.scene.Select(h)
	t.selected = h
	t.log.Debug("body selected", zap.Stringer("body", h))
}
