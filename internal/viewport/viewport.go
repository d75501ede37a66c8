package viewport

// Direction identifies a discrete pan command.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Dims is the terminal size in character cells, supplied by the host
// before each render. The camera never queries terminal geometry itself.
type Dims struct {
	Rows, Cols int
}

// Area returns the number of cells in the viewport.
func (d Dims) Area() int { return d.Rows * d.Cols }

const (
	DefaultCenterRe = -0.5
	DefaultCenterIm = 0.0
	// DefaultScale puts the classic set (re in [-2, 1]) across an
	// 80-column terminal.
	DefaultScale   = 3.0 / 80.0
	DefaultMaxIter = 100

	// MinScale sits well above the float64 mantissa limit at typical
	// coordinates; zooming past it would only produce blocky noise.
	MinScale = 1e-15
	// MaxScale keeps the whole set from shrinking below a handful of cells.
	MaxScale = 0.25

	MinIterations = 1
	MaxIterations = 5000

	zoomInFactor  = 0.8
	zoomOutFactor = 1.25
	panFraction   = 0.1

	// cellAspect is the width:height ratio of a terminal character cell.
	// The imaginary-axis step per row is Scale/cellAspect, so a circle in
	// the plane stays round on screen.
	cellAspect = 0.5
)

// Camera maps terminal cells to points in the complex plane. It is the
// single piece of mutable session state; the TUI loop owns one Camera and
// mutates it only through the command methods below.
type Camera struct {
	Center  complex128
	Scale   float64 // plane units per column
	MaxIter int
}

func New() Camera {
	return Camera{
		Center:  complex(DefaultCenterRe, DefaultCenterIm),
		Scale:   DefaultScale,
		MaxIter: DefaultMaxIter,
	}
}

// Reset restores the startup view.
func (c *Camera) Reset() { *c = New() }

// Pan shifts the center by a fixed fraction of the visible span, so a key
// press moves the view the same screen distance at every zoom level.
func (c *Camera) Pan(dir Direction, dims Dims) {
	dx := float64(dims.Cols) * c.Scale * panFraction
	dy := float64(dims.Rows) * c.Scale / cellAspect * panFraction
	switch dir {
	case Up:
		c.Center -= complex(0, dy)
	case Down:
		c.Center += complex(0, dy)
	case Left:
		c.Center -= complex(dx, 0)
	case Right:
		c.Center += complex(dx, 0)
	}
}

// ZoomIn shrinks the scale by a fixed factor, clamped at MinScale.
func (c *Camera) ZoomIn() {
	c.Scale *= zoomInFactor
	if c.Scale < MinScale {
		c.Scale = MinScale
	}
}

// ZoomOut grows the scale by the reciprocal factor, clamped at MaxScale.
func (c *Camera) ZoomOut() {
	c.Scale *= zoomOutFactor
	if c.Scale > MaxScale {
		c.Scale = MaxScale
	}
}

// AdjustIter adds delta to the iteration budget, clamped to
// [MinIterations, MaxIterations]. Clamping is silent.
func (c *Camera) AdjustIter(delta int) {
	c.MaxIter += delta
	if c.MaxIter < MinIterations {
		c.MaxIter = MinIterations
	}
	if c.MaxIter > MaxIterations {
		c.MaxIter = MaxIterations
	}
}

// PointAt maps a fractional cell coordinate (x across columns, y down rows)
// to a plane point. y accepts half steps so the renderer can sample two
// sub-rows per cell for half-block output.
func (c Camera) PointAt(x, y float64, dims Dims) complex128 {
	re := real(c.Center) + (x-float64(dims.Cols)/2)*c.Scale
	im := imag(c.Center) + (y-float64(dims.Rows)/2)*c.Scale/cellAspect
	return complex(re, im)
}

// ToComplex maps a whole cell to its plane point. Pure; identical inputs
// always yield identical output.
func (c Camera) ToComplex(row, col int, dims Dims) complex128 {
	return c.PointAt(float64(col), float64(row), dims)
}
