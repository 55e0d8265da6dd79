package vmath

// --- Randomness ---

// XorShiftSeed is the 128-bit state used when no seed is given
var XorShiftSeed = [4]uint32{0x193a6754, 0xa8a7d469, 0x97830e05, 0x113ba7bb}

// XorShift is Marsaglia's xorshift128 (11, 19, 8)
// Deterministic for a given seed; not safe for concurrent use
type XorShift struct {
	x, y, z, w uint32
}

// NewXorShift creates a generator from a 128-bit seed
// An all-zero seed is a fixed point of the recurrence and is replaced by XorShiftSeed
func NewXorShift(seed [4]uint32) *XorShift {
	if seed == [4]uint32{} {
		seed = XorShiftSeed
	}
	return &XorShift{x: seed[0], y: seed[1], z: seed[2], w: seed[3]}
}

// Next returns the next 32-bit output
func (r *XorShift) Next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// Intn returns a value in [0, n) by modulo reduction
func (r *XorShift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Byte returns one uniformly drawn byte
func (r *XorShift) Byte() uint8 {
	return uint8(r.Intn(256))
}
