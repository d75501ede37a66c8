package fractal

import (
	"testing"

	"github.com/san-kum/mandelview/internal/viewport"
)

func BenchmarkEscapeInterior(b *testing.B) {
	c := complex(-0.1, 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Escape(c, 1000)
	}
}

func BenchmarkEscapeBoundary(b *testing.B) {
	c := complex(-0.75, 0.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Escape(c, 1000)
	}
}

func BenchmarkRenderSerial(b *testing.B) {
	r := New()
	r.workers = 1
	cam := viewport.New()
	dims := viewport.Dims{Rows: 24, Cols: 80}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(cam, dims)
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	r := New()
	cam := viewport.New()
	dims := viewport.Dims{Rows: 24, Cols: 80}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(cam, dims)
	}
}

func BenchmarkRenderLarge(b *testing.B) {
	r := New()
	cam := viewport.New()
	dims := viewport.Dims{Rows: 96, Cols: 320}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(cam, dims)
	}
}

func BenchmarkRenderHistogram(b *testing.B) {
	r := New()
	r.Coloring = Histogram
	cam := viewport.New()
	dims := viewport.Dims{Rows: 24, Cols: 80}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(cam, dims)
	}
}
