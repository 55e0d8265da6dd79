package scene

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/testbed2d/palette"
	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
	"github.com/lixenwraith/testbed2d/status"
)

// ErrUnsupportedShape is returned by Add for shape kinds that have no visual
var ErrUnsupportedShape = errors.New("unsupported shape")

// Manager maps body identity keys to the visuals built for them
// Not safe for concurrent use; the frame loop owns it
type Manager struct {
	palette *palette.Palette
	nodes   map[sim.Handle][]Node
	order   []sim.Handle

	log *zap.Logger

	// Cached metric pointers
	statBodies *atomic.Int64
	statNodes  *atomic.Int64
	nodeCount  int
}

// NewManager creates an empty scene; nil logger or registry are replaced by no-op instances
func NewManager(p *palette.Palette, log *zap.Logger, reg *status.Registry) *Manager {
	if p == nil {
		p = palette.NewDefault()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Manager{
		palette:    p,
		nodes:      make(map[sim.Handle][]Node),
		log:        log,
		statBodies: reg.Ints.Get(status.KeySceneBodies),
		statNodes:  reg.Ints.Get(status.KeySceneNodes),
	}
}

// Add builds visuals for every leaf of the body's shape tree and stores them
// under the body key, replacing any previous entry
// Planes produce no visual; any other non-ball leaf fails with ErrUnsupportedShape
// before the palette or the scene is touched
func (m *Manager) Add(b Body) error {
	key := KeyOf(b)
	shape := b.Shape()

	type ballLeaf struct {
		delta  sim.Pose
		radius float64
	}
	var balls []ballLeaf
	err := shape.Walk(sim.Identity(), func(delta sim.Pose, leaf sim.Shape) error {
		switch leaf.Kind {
		case sim.KindPlane:
			return nil
		case sim.KindBall:
			balls = append(balls, ballLeaf{delta: delta, radius: leaf.Radius})
			return nil
		default:
			return fmt.Errorf("%w: %s on %s", ErrUnsupportedShape, leaf.Kind, key)
		}
	})
	if err != nil {
		return err
	}

	margin := b.Margin()
	nodes := make([]Node, 0, len(balls))
	for _, l := range balls {
		nodes = append(nodes, NewBall(b, l.delta, l.radius+margin, m.palette.ColorFor(key)))
	}

	if prev, ok := m.nodes[key]; ok {
		m.nodeCount -= len(prev)
	} else {
		m.order = append(m.order, key)
	}
	m.nodes[key] = nodes
	m.nodeCount += len(nodes)
	m.publish()

	m.log.Debug("scene add",
		zap.Stringer("body", key),
		zap.Stringer("shape", shape.Kind),
		zap.Int("nodes", len(nodes)))
	return nil
}

// Clear drops every visual; palette colors are kept
func (m *Manager) Clear() {
	clear(m.nodes)
	m.order = m.order[:0]
	m.nodeCount = 0
	m.publish()
	m.log.Debug("scene cleared")
}

// Refresh updates every visual from its body
func (m *Manager) Refresh() {
	for _, key := range m.order {
		for _, n := range m.nodes[key] {
			n.Update()
		}
	}
}

// Draw issues draw commands for every visual in body insertion order
func (m *Manager) Draw(s render.Surface) {
	for _, key := range m.order {
		for _, n := range m.nodes[key] {
			n.Draw(s)
		}
	}
}

// SetColor overrides the body color and recolors its existing visuals
func (m *Manager) SetColor(b Body, c render.RGB) {
	key := KeyOf(b)
	m.palette.SetColor(key, c)
	for _, n := range m.nodes[key] {
		n.SetColor(c)
	}
	m.log.Debug("scene color",
		zap.Stringer("body", key),
		zap.String("color", c.Hex()))
}

// ColorFor returns the palette color of the body, assigning one on first use
func (m *Manager) ColorFor(b Body) render.RGB {
	return m.palette.ColorFor(KeyOf(b))
}

// Lookup returns the visuals of a body, nil when the body is unknown
func (m *Manager) Lookup(b Body) []Node {
	return m.nodes[KeyOf(b)]
}

// Contains reports whether the body has an entry, even an empty one
func (m *Manager) Contains(b Body) bool {
	_, ok := m.nodes[KeyOf(b)]
	return ok
}

// Len returns the number of bodies with an entry
func (m *Manager) Len() int {
	return len(m.order)
}

// NodeCount returns the number of visuals across all bodies
func (m *Manager) NodeCount() int {
	return m.nodeCount
}

// Pick returns the topmost body with a visual under (x, y) in screen units
func (m *Manager) Pick(x, y float64) (sim.Handle, bool) {
	for i := len(m.order) - 1; i >= 0; i-- {
		key := m.order[i]
		nodes := m.nodes[key]
		for j := len(nodes) - 1; j >= 0; j-- {
			if nodes[j].Contains(x, y) {
				return key, true
			}
		}
	}
	return sim.Handle{}, false
}

// Select highlights every visual of the body; false when the key is unknown
func (m *Manager) Select(h sim.Handle) bool {
	nodes, ok := m.nodes[h]
	for _, n := range nodes {
		n.Select()
	}
	return ok
}

// Unselect restores every visual of the body
func (m *Manager) Unselect(h sim.Handle) bool {
	nodes, ok := m.nodes[h]
	for _, n := range nodes {
		n.Unselect()
	}
	return ok
}

func (m *Manager) publish() {
	m.statBodies.Store(int64(len(m.order)))
	m.statNodes.Store(int64(m.nodeCount))
}
