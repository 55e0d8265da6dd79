package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/testbed2d/vmath"
)

// HalfBlock draws the top pixel as foreground and the bottom pixel as background
const HalfBlock = '▀'

type textCell struct {
	r      rune
	fg, bg RGB
}

// Canvas is a pixel compositor over a tcell.Screen
// Every terminal cell carries two stacked pixels, which keeps pixels roughly square
// Text cells overlay the pixels and are cleared with them
type Canvas struct {
	screen     tcell.Screen
	camera     *Camera
	pixels     []RGB
	text       []textCell
	cols, rows int
	background RGB
}

// NewCanvas creates a canvas sized to the screen
func NewCanvas(screen tcell.Screen, camera *Camera, background RGB) *Canvas {
	c := &Canvas{
		screen:     screen,
		camera:     camera,
		background: background,
	}
	cols, rows := screen.Size()
	c.Resize(cols, rows)
	return c
}

// Camera returns the camera mapping screen units to pixels
func (c *Canvas) Camera() *Camera {
	return c.camera
}

// Size returns the canvas size in terminal cells
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows
	if cap(c.text) < size {
		c.text = make([]textCell, size)
		c.pixels = make([]RGB, size*2)
	} else {
		c.text = c.text[:size]
		c.pixels = c.pixels[:size*2]
	}
	c.cols = cols
	c.rows = rows
	c.camera.SetViewport(cols, rows*2)
	c.Clear()
}

// Clear resets all pixels to the background and drops text using exponential copy
func (c *Canvas) Clear() {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = c.background
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
	c.text[0] = textCell{}
	for filled := 1; filled < len(c.text); filled *= 2 {
		copy(c.text[filled:], c.text[:filled])
	}
}

func (c *Canvas) inBounds(px, py int) bool {
	return px >= 0 && px < c.cols && py >= 0 && py < c.rows*2
}

// Pixel returns the composited pixel, background when out of bounds
func (c *Canvas) Pixel(px, py int) RGB {
	if !c.inBounds(px, py) {
		return c.background
	}
	return c.pixels[py*c.cols+px]
}

func (c *Canvas) plot(px, py int, col RGBA) {
	if !c.inBounds(px, py) {
		return
	}
	idx := py*c.cols + px
	c.pixels[idx] = c.pixels[idx].Over(col)
}

// FillCircle rasterizes a disc given in screen units
// Pixels whose centers fall inside the projected radius are filled; a disc
// smaller than one pixel still marks the pixel holding its center
func (c *Canvas) FillCircle(x, y, radius float64, col RGBA) {
	cx, cy := c.camera.Project(x, y)
	r := c.camera.Scale(radius)

	if r < 0.5 {
		c.plot(int(math.Floor(cx)), int(math.Floor(cy)), col)
		return
	}

	minX, minY, maxX, maxY := vmath.CircleBounds(cx, cy, r)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, c.cols-1), min(maxY, c.rows*2-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if vmath.CircleContains(float64(px)+0.5, float64(py)+0.5, cx, cy, r) {
				c.plot(px, py, col)
			}
		}
	}
}

// DrawText writes s starting at a cell, clipped to the canvas
func (c *Canvas) DrawText(col, row int, s string, fg, bg RGB) {
	if row < 0 || row >= c.rows {
		return
	}
	x := col
	for _, r := range s {
		if x >= c.cols {
			break
		}
		if x >= 0 {
			c.text[row*c.cols+x] = textCell{r: r, fg: fg, bg: bg}
		}
		x++
	}
}

// CellCenter returns the screen-unit point under the center of a terminal cell
func (c *Canvas) CellCenter(col, row int) (float64, float64) {
	return c.camera.Unproject(float64(col)+0.5, float64(row*2)+1)
}

// Present writes the canvas to the screen and shows it
func (c *Canvas) Present() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if t := c.text[row*c.cols+col]; t.r != 0 {
				style := tcell.StyleDefault.Foreground(RGBToTcell(t.fg)).Background(RGBToTcell(t.bg))
				c.screen.SetContent(col, row, t.r, nil, style)
				continue
			}
			top := c.pixels[(row*2)*c.cols+col]
			bottom := c.pixels[(row*2+1)*c.cols+col]
			style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
			c.screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
	c.screen.Show()
}
