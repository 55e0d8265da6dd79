// Package palette assigns display colors to simulation bodies.
//
// Colors are drawn lazily from a seeded xorshift generator the first time a
// body asks for one and cached by body handle afterwards. Assignment is
// deterministic given a fixed first-request order: requesting bodies in a
// different order consumes the generator differently and yields a different
// palette. Overrides never consume generator state.
package palette

import (
	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/sim"
	"github.com/lixenwraith/testbed2d/vmath"
)

// DefaultSeed keeps palettes reproducible across runs
var DefaultSeed = vmath.XorShiftSeed

// Palette maps body handles to colors
type Palette struct {
	rng    *vmath.XorShift
	colors map[sim.Handle]render.RGB
}

// New creates a palette whose generator starts from seed
func New(seed [4]uint32) *Palette {
	return &Palette{
		rng:    vmath.NewXorShift(seed),
		colors: make(map[sim.Handle]render.RGB),
	}
}

// NewDefault creates a palette seeded with DefaultSeed
func NewDefault() *Palette {
	return New(DefaultSeed)
}

// ColorFor returns the stored color for h, generating and storing one on first use
func (p *Palette) ColorFor(h sim.Handle) render.RGB {
	if c, ok := p.colors[h]; ok {
		return c
	}
	c := render.RGB{
		R: p.rng.Byte(),
		G: p.rng.Byte(),
		B: p.rng.Byte(),
	}
	p.colors[h] = c
	return c
}

// SetColor overrides the color for h
func (p *Palette) SetColor(h sim.Handle, c render.RGB) {
	p.colors[h] = c
}

// Lookup returns the stored color without generating one
func (p *Palette) Lookup(h sim.Handle) (render.RGB, bool) {
	c, ok := p.colors[h]
	return c, ok
}

// Len returns the number of stored colors
func (p *Palette) Len() int {
	return len(p.colors)
}
