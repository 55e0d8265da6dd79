package vmath

import "math"

// Circle helpers for raster fills and screen-space hit tests
// Float counterparts of the fixed-point ellipse utilities: pixel grids are square
// once rows are split into half cells, so no aspect correction is applied

// CircleContains returns true if (px, py) lies inside or on the circle at (cx, cy)
func CircleContains(px, py, cx, cy, radius float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= radius*radius
}

// CircleBounds returns the inclusive integer pixel span covering a circle
func CircleBounds(cx, cy, radius float64) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(cx - radius))
	minY = int(math.Floor(cy - radius))
	maxX = int(math.Ceil(cx + radius))
	maxY = int(math.Ceil(cy + radius))
	return
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
