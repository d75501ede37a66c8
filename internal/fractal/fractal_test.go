package fractal

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelview/internal/viewport"
)

func TestEscapeInterior(t *testing.T) {
	g := NewWithT(t)

	// The origin is deep inside the main cardioid and never escapes.
	g.Expect(Escape(complex(0, 0), 1000)).To(Equal(1000))
	g.Expect(Escape(complex(-1, 0), 1000)).To(Equal(1000))
}

func TestEscapeExterior(t *testing.T) {
	g := NewWithT(t)

	// Far outside the escape radius, the orbit blows up immediately.
	g.Expect(Escape(complex(2, 2), 1000)).To(BeNumerically("<=", 5))

	// Points just right of the cardioid escape, but slowly.
	n := Escape(complex(0.3, 0), 1000)
	g.Expect(n).To(BeNumerically("<", 1000))
	g.Expect(n).To(BeNumerically(">", 5))
}

func TestEscapeRespectsBudget(t *testing.T) {
	g := NewWithT(t)

	for _, budget := range []int{1, 10, 100} {
		g.Expect(Escape(complex(0, 0), budget)).To(Equal(budget))
	}
}

func TestOrbit(t *testing.T) {
	g := NewWithT(t)

	// An escaping orbit ends with the magnitude that crossed the radius.
	mags := Orbit(complex(2, 2), 100)
	g.Expect(mags).NotTo(BeEmpty())
	g.Expect(mags[len(mags)-1]).To(BeNumerically(">", 2))

	// An interior orbit runs the full budget without crossing it.
	mags = Orbit(complex(0, 0), 50)
	g.Expect(mags).To(HaveLen(50))
	for _, m := range mags {
		g.Expect(m).To(BeNumerically("<=", 2))
	}
}

func TestFrameShape(t *testing.T) {
	g := NewWithT(t)

	r := New()
	cam := viewport.New()

	tests := []viewport.Dims{
		{Rows: 24, Cols: 80},
		{Rows: 1, Cols: 1},
		{Rows: 0, Cols: 80},
		{Rows: 24, Cols: 0},
		{Rows: 0, Cols: 0},
	}
	for _, dims := range tests {
		frame := r.Render(cam, dims)
		g.Expect(frame.Rows).To(Equal(dims.Rows))
		g.Expect(frame.Cols).To(Equal(dims.Cols))
		g.Expect(frame.Cells).To(HaveLen(dims.Rows * dims.Cols))
	}
}

func TestRenderEndToEnd(t *testing.T) {
	g := NewWithT(t)

	r := New()
	cam := viewport.New()
	dims := viewport.Dims{Rows: 24, Cols: 80}

	counts, sampleRows := r.sampleCounts(cam, dims)
	g.Expect(sampleRows).To(Equal(48))

	// The sample nearest the plane origin must be interior.
	originIdx := nearestSample(cam, dims, sampleRows, complex(0, 0))
	g.Expect(counts[originIdx]).To(Equal(cam.MaxIter))

	// The sample nearest (2.5, 0) must escape within a few steps.
	farIdx := nearestSample(cam, dims, sampleRows, complex(2.5, 0))
	g.Expect(counts[farIdx]).To(BeNumerically("<=", 10))
}

// nearestSample finds the index of the sample-grid point closest to target.
func nearestSample(cam viewport.Camera, dims viewport.Dims, sampleRows int, target complex128) int {
	rowStep := float64(dims.Rows) / float64(sampleRows)
	best, bestDist := 0, -1.0
	for sr := 0; sr < sampleRows; sr++ {
		for col := 0; col < dims.Cols; col++ {
			p := cam.PointAt(float64(col), float64(sr)*rowStep, dims)
			d := p - target
			dist := real(d)*real(d) + imag(d)*imag(d)
			if bestDist < 0 || dist < bestDist {
				best, bestDist = sr*dims.Cols+col, dist
			}
		}
	}
	return best
}

func TestParallelMatchesSerial(t *testing.T) {
	g := NewWithT(t)

	cam := viewport.New()
	dims := viewport.Dims{Rows: 60, Cols: 200}

	serial := New()
	serial.workers = 1
	parallel := New()
	parallel.workers = 8

	a, _ := serial.sampleCounts(cam, dims)
	b, _ := parallel.sampleCounts(cam, dims)
	g.Expect(b).To(Equal(a))
}

func TestHistogramBrightnessMonotonic(t *testing.T) {
	g := NewWithT(t)

	maxIter := 100
	counts := []int{1, 5, 5, 20, 50, 99, maxIter, maxIter}
	brightness := brightnessMap(counts, maxIter)

	// Escaped samples: brightness strictly follows escape count order.
	g.Expect(brightness[0]).To(BeNumerically("<", brightness[1]))
	g.Expect(brightness[1]).To(Equal(brightness[2]))
	g.Expect(brightness[2]).To(BeNumerically("<", brightness[3]))
	g.Expect(brightness[3]).To(BeNumerically("<", brightness[4]))
	g.Expect(brightness[4]).To(BeNumerically("<", brightness[5]))

	// Interior samples get no brightness; the palette pins them.
	g.Expect(brightness[6]).To(BeZero())
}

func TestHistogramAllInterior(t *testing.T) {
	g := NewWithT(t)

	counts := []int{10, 10, 10, 10}
	brightness := brightnessMap(counts, 10)
	for _, b := range brightness {
		g.Expect(b).To(BeZero())
	}
}

func TestRenderSamplingModes(t *testing.T) {
	g := NewWithT(t)

	cam := viewport.New()
	dims := viewport.Dims{Rows: 10, Cols: 20}

	half := New()
	frame := half.Render(cam, dims)
	for _, cell := range frame.Cells {
		g.Expect(cell.Symbol).To(Equal('▀'))
	}

	ascii := New()
	ascii.Sampling = ASCII
	frame = ascii.Render(cam, dims)
	for _, cell := range frame.Cells {
		g.Expect(cell.Bg).To(BeEmpty())
	}
}
