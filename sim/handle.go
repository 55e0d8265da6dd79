package sim

import "fmt"

// Handle identifies a body inside one World
// Issued by the world's arena at creation; comparable and usable as a map key
// Generation is bumped when a slot is freed so stale handles never resolve to a new body
type Handle struct {
	index uint32
	gen   uint32
}

// Index returns the arena slot
func (h Handle) Index() uint32 { return h.index }

// Generation returns the slot generation the handle was issued for
func (h Handle) Generation() uint32 { return h.gen }

// IsZero reports whether h was never issued. Generations start at 1
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("body#%d.%d", h.index, h.gen)
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// arena stores values in reusable slots addressed by generation-checked handles
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

func (a *arena[T]) insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	s.value = v
	s.live = true
	a.live++
	return Handle{index: idx, gen: s.gen}
}

func (a *arena[T]) get(h Handle) (T, bool) {
	var zero T
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return zero, false
	}
	return s.value, true
}

func (a *arena[T]) remove(h Handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.live--
	return true
}

func (a *arena[T]) len() int {
	return a.live
}
