package render

const (
	// DefaultZoom maps screen units to canvas pixels
	DefaultZoom = 0.1
	minZoom     = 0.005
	maxZoom     = 10.0
)

// Camera maps screen units onto a pixel viewport
// (X, Y) is the screen-unit point shown at the viewport center
type Camera struct {
	X, Y   float64
	Zoom   float64
	width  int
	height int
}

// NewCamera creates a camera centered on the origin
func NewCamera(zoom float64) *Camera {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Camera{Zoom: clampZoom(zoom)}
}

// SetViewport sets the pixel size of the target
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Viewport returns the pixel size of the target
func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

// Project converts screen units to viewport pixels
func (c *Camera) Project(x, y float64) (float64, float64) {
	return (x-c.X)*c.Zoom + float64(c.width)/2, (y-c.Y)*c.Zoom + float64(c.height)/2
}

// Unproject converts viewport pixels to screen units
func (c *Camera) Unproject(px, py float64) (float64, float64) {
	return (px-float64(c.width)/2)/c.Zoom + c.X, (py-float64(c.height)/2)/c.Zoom + c.Y
}

// Scale converts a screen-unit length to pixels
func (c *Camera) Scale(length float64) float64 {
	return length * c.Zoom
}

// Pan moves the view by a pixel offset
func (c *Camera) Pan(dxPixels, dyPixels float64) {
	c.X += dxPixels / c.Zoom
	c.Y += dyPixels / c.Zoom
}

// ZoomBy multiplies zoom by factor, clamped to a sane range
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.Zoom = clampZoom(c.Zoom * factor)
}

// Frame centers the view on a screen-unit box, zooming out when the box does not fit
func (c *Camera) Frame(minX, minY, maxX, maxY float64) {
	c.X, c.Y = (minX+maxX)/2, (minY+maxY)/2
	if c.width == 0 || c.height == 0 {
		return
	}
	if w := maxX - minX; w > 0 {
		c.Zoom = clampZoom(min(c.Zoom, float64(c.width)/w))
	}
	if h := maxY - minY; h > 0 {
		c.Zoom = clampZoom(min(c.Zoom, float64(c.height)/h))
	}
}

func clampZoom(z float64) float64 {
	return min(max(z, minZoom), maxZoom)
}
