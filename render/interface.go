package render

// Surface receives draw commands in screen units
// Implementations map screen units to device pixels
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, c RGBA)
}
