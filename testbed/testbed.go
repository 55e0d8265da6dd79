package testbed

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/scene"
	"github.com/lixenwraith/testbed2d/sim"
	"github.com/lixenwraith/testbed2d/status"
)

// framePadding widens the framed box by a fraction of its larger side
const framePadding = 0.1

// ErrNoWorld is returned by Run before SetWorld succeeded
var ErrNoWorld = errors.New("no world set")

// Options configures a Testbed
type Options struct {
	// Paused starts the controller Stopped
	Paused bool
	// StatusBar shows the mode and metrics line
	StatusBar bool
}

// Testbed drives one world: steps it on update events, mirrors it into the
// scene and draws it on render events
type Testbed struct {
	world   *sim.World
	scene   *scene.Manager
	display Display
	ctrl    *Controller
	log     *zap.Logger

	statusBar bool
	selected  sim.Handle

	statSteps   *atomic.Int64
	statUpdates *atomic.Int64
	statRenders *atomic.Int64
	statMode    *status.AtomicString
	reg         *status.Registry
}

// New creates a testbed drawing to display through the scene manager
func New(display Display, sc *scene.Manager, reg *status.Registry, log *zap.Logger, opts Options) *Testbed {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if sc == nil {
		sc = scene.NewManager(nil, log, reg)
	}
	mode := Running
	if opts.Paused {
		mode = Stopped
	}
	t := &Testbed{
		scene:       sc,
		display:     display,
		ctrl:        NewController(mode),
		log:         log,
		statusBar:   opts.StatusBar,
		statSteps:   reg.Ints.Get(status.KeySimSteps),
		statUpdates: reg.Ints.Get(status.KeyFrameUpdates),
		statRenders: reg.Ints.Get(status.KeyFrameRenders),
		statMode:    reg.Strings.Get(status.KeyRunMode),
		reg:         reg,
	}
	t.statMode.Store(mode.String())
	return t
}

// SetWorld replaces the world and rebuilds the scene from its bodies in creation order
// The first body without a visual aborts the rebuild and leaves no world and an empty scene
func (t *Testbed) SetWorld(w *sim.World) error {
	t.world = w
	t.selected = sim.Handle{}
	t.scene.Clear()
	for _, b := range w.Bodies() {
		if err := t.scene.Add(b); err != nil {
			t.scene.Clear()
			t.world = nil
			t.log.Error("set world failed", zap.Stringer("body", scene.KeyOf(b)), zap.Error(err))
			return fmt.Errorf("set world: %w", err)
		}
	}
	t.log.Info("world set",
		zap.Int("bodies", w.Len()),
		zap.Int("nodes", t.scene.NodeCount()))
	return nil
}

// FrameWorld points the camera at the body origins of the world
func (t *Testbed) FrameWorld() {
	if t.world == nil || t.world.Len() == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range t.world.Bodies() {
		p := b.Position()
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	pad := framePadding * max(maxX-minX, maxY-minY)
	t.display.Camera().Frame(
		(minX-pad)*scene.DrawScale, (minY-pad)*scene.DrawScale,
		(maxX+pad)*scene.DrawScale, (maxY+pad)*scene.DrawScale)
}

// World returns the current world, nil before SetWorld
func (t *Testbed) World() *sim.World {
	return t.world
}

// Scene returns the scene manager
func (t *Testbed) Scene() *scene.Manager {
	return t.scene
}

// Controller returns the run-mode controller
func (t *Testbed) Controller() *Controller {
	return t.ctrl
}

// SetColor overrides the color of a body
func (t *Testbed) SetColor(b scene.Body, c render.RGB) {
	t.scene.SetColor(b, c)
}

// Run consumes events until the source is exhausted
func (t *Testbed) Run(src EventSource) error {
	if t.world == nil {
		return ErrNoWorld
	}
	t.log.Info("loop started", zap.Stringer("mode", t.ctrl.Mode()))
	for {
		ev, ok := src.Next()
		if !ok {
			break
		}
		t.Handle(ev)
	}
	t.log.Info("loop finished",
		zap.Int64("steps", t.statSteps.Load()),
		zap.Int64("renders", t.statRenders.Load()))
	return nil
}

// Handle processes a single event
func (t *Testbed) Handle(ev Event) {
	switch ev.Kind {
	case EventUpdate:
		t.update()
	case EventRender:
		t.render()
	case EventKey:
		t.handleKey(ev)
	case EventMouse:
		t.handleMouse(ev)
	case EventResize:
		t.display.Resize(ev.X, ev.Y)
	}
}

func (t *Testbed) update() {
	t.statUpdates.Add(1)
	if t.world == nil {
		return
	}
	if t.ctrl.Tick(t.world) {
		t.statSteps.Add(1)
	}
	t.statMode.Store(t.ctrl.Mode().String())
}

func (t *Testbed) render() {
	t.statRenders.Add(1)
	t.scene.Refresh()
	t.display.Clear()
	t.scene.Draw(t.display)
	if t.statusBar {
		t.drawStatusBar()
	}
	t.display.Present()
}
