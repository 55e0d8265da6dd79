package vmath

import (
	"math"
	"testing"
)

func TestXorShiftSequence(t *testing.T) {
	r := NewXorShift(XorShiftSeed)
	want := []uint32{3690029583, 1298391428, 3256827147, 248863884, 1583654467, 207160266}
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Fatalf("Next() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestXorShiftSmallSeed(t *testing.T) {
	r := NewXorShift([4]uint32{0, 1, 2, 3})
	want := []uint32{3, 2058, 6168, 3}
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Fatalf("Next() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestXorShiftZeroSeedFallsBack(t *testing.T) {
	a := NewXorShift([4]uint32{})
	b := NewXorShift(XorShiftSeed)
	for i := 0; i < 8; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("zero seed diverged from default at draw %d", i)
		}
	}
}

func TestXorShiftIntnRange(t *testing.T) {
	r := NewXorShift(XorShiftSeed)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d out of range", v)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with non-positive bound should return 0")
	}
}

func TestCircleContains(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 5, 5, true},
		{"on edge", 8, 5, true},
		{"outside", 8.1, 5, false},
		{"diagonal inside", 7, 7, true},
		{"diagonal outside", 7.2, 7.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleContains(tt.px, tt.py, 5, 5, 3); got != tt.want {
				t.Errorf("CircleContains(%g, %g) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	minX, minY, maxX, maxY := CircleBounds(10.5, 4, 2)
	if minX != 8 || minY != 2 || maxX != 13 || maxY != 6 {
		t.Errorf("CircleBounds = (%d %d %d %d), want (8 2 13 6)", minX, minY, maxX, maxY)
	}
}

func TestRadToDeg(t *testing.T) {
	if got := RadToDeg(math.Pi); math.Abs(got-180) > 1e-12 {
		t.Errorf("RadToDeg(pi) = %g, want 180", got)
	}
	if got := RadToDeg(1); math.Abs(got-180/math.Pi) > 1e-12 {
		t.Errorf("RadToDeg(1) = %g, want %g", got, 180/math.Pi)
	}
}
