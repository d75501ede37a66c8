package fractal

import (
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// Sampling selects how plane points map onto terminal cells.
type Sampling int

const (
	// HalfBlock samples two sub-rows per cell and renders '▀' with the
	// top sample as foreground and the bottom as background, doubling
	// vertical resolution.
	HalfBlock Sampling = iota
	// ASCII samples one point per cell and encodes intensity in the
	// character itself.
	ASCII
)

func (s Sampling) String() string {
	if s == ASCII {
		return "ascii"
	}
	return "halfblock"
}

// Coloring selects how escape counts map to colors.
type Coloring int

const (
	// Ramp cycles the palette by iteration count.
	Ramp Coloring = iota
	// Histogram normalizes counts against their distribution across the
	// frame, spending the full ramp on the detail actually visible.
	Histogram
)

func (c Coloring) String() string {
	if c == Histogram {
		return "histogram"
	}
	return "ramp"
}

// serialThreshold is the sample count below which the goroutine fan-out
// costs more than it saves.
const serialThreshold = 4096

// Renderer produces frames from a camera and viewport dimensions. It holds
// only presentation settings; all navigation state lives in the camera.
type Renderer struct {
	Palette  palette.Palette
	Sampling Sampling
	Coloring Coloring
	workers  int
}

func New() *Renderer {
	return &Renderer{
		Palette: palette.Get("electric"),
		workers: runtime.NumCPU(),
	}
}

// Render computes a complete frame. Degenerate dimensions yield an empty
// frame, never an error. Worker goroutines each own a disjoint band of
// sample rows and are joined before the frame is assembled, so no partial
// result can ever be displayed.
func (r *Renderer) Render(cam viewport.Camera, dims viewport.Dims) Frame {
	frame := NewFrame(dims.Rows, dims.Cols)
	if dims.Rows <= 0 || dims.Cols <= 0 {
		return frame
	}

	counts, _ := r.sampleCounts(cam, dims)

	var brightness []float64
	if r.Coloring == Histogram {
		brightness = brightnessMap(counts, cam.MaxIter)
	}

	for row := 0; row < dims.Rows; row++ {
		for col := 0; col < dims.Cols; col++ {
			frame.set(row, col, r.cell(row, col, dims.Cols, counts, brightness, cam.MaxIter))
		}
	}
	return frame
}

// sampleCounts runs the escape kernel over the sample grid. Half-block mode
// uses two sample rows per terminal row.
func (r *Renderer) sampleCounts(cam viewport.Camera, dims viewport.Dims) ([]int, int) {
	sampleRows := dims.Rows
	rowStep := 1.0
	if r.Sampling == HalfBlock {
		sampleRows = dims.Rows * 2
		rowStep = 0.5
	}

	counts := make([]int, sampleRows*dims.Cols)

	fill := func(from, to int) {
		for sr := from; sr < to; sr++ {
			y := float64(sr) * rowStep
			base := sr * dims.Cols
			for col := 0; col < dims.Cols; col++ {
				c := cam.PointAt(float64(col), y, dims)
				counts[base+col] = Escape(c, cam.MaxIter)
			}
		}
	}

	if len(counts) < serialThreshold || r.workers <= 1 {
		fill(0, sampleRows)
		return counts, sampleRows
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	band := (sampleRows + r.workers - 1) / r.workers
	for from := 0; from < sampleRows; from += band {
		to := from + band
		if to > sampleRows {
			to = sampleRows
		}
		g.Go(func() error {
			fill(from, to)
			return nil
		})
	}
	// Workers cannot fail; Wait is purely the join barrier.
	_ = g.Wait()
	return counts, sampleRows
}

// cell colors one terminal cell from the sample grid.
func (r *Renderer) cell(row, col, cols int, counts []int, brightness []float64, maxIter int) Cell {
	if r.Sampling == ASCII {
		n := counts[row*cols+col]
		return Cell{Symbol: palette.Symbol(n, maxIter), Fg: r.colorFor(row*cols+col, counts, brightness, maxIter)}
	}

	top := row * 2 * cols
	bottom := (row*2 + 1) * cols
	return Cell{
		Symbol: '▀',
		Fg:     r.colorFor(top+col, counts, brightness, maxIter),
		Bg:     r.colorFor(bottom+col, counts, brightness, maxIter),
	}
}

func (r *Renderer) colorFor(idx int, counts []int, brightness []float64, maxIter int) lipgloss.Color {
	n := counts[idx]
	if r.Coloring == Histogram {
		if n >= maxIter {
			return r.Palette.Inside
		}
		return r.Palette.Shade(brightness[idx])
	}
	return r.Palette.Color(n, maxIter)
}

// brightnessMap implements histogram coloring: each escaped sample's
// brightness is the fraction of escaped samples that got out faster. The
// mapping is monotonic in n and adapts to whatever detail is on screen.
func brightnessMap(counts []int, maxIter int) []float64 {
	hist := make([]int, maxIter+1)
	total := 0
	for _, n := range counts {
		if n < maxIter {
			hist[n]++
			total++
		}
	}

	brightness := make([]float64, len(counts))
	if total == 0 {
		return brightness
	}

	// cumulative[n] = escaped samples with count < n
	cumulative := make([]float64, maxIter+1)
	running := 0
	for n := 0; n <= maxIter; n++ {
		cumulative[n] = float64(running) / float64(total)
		running += hist[n]
	}

	for i, n := range counts {
		if n < maxIter {
			brightness[i] = cumulative[n]
		}
	}
	return brightness
}
