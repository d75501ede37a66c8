// Package fractal computes escape-time iteration counts for the Mandelbrot
// set and turns them into complete terminal frames.
//
// The hot path is [Escape], which runs rows × columns × up to maxIter times
// per frame. It works on raw float64 components, tests the squared magnitude
// against 4 instead of taking a square root, and allocates nothing.
package fractal

import "math"

// Escape iterates z = z² + c from z = 0 and returns the iteration at which
// |z| first exceeds 2, or maxIter if the point never escapes (interior).
func Escape(c complex128, maxIter int) int {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for n := 0; n < maxIter; n++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4.0 {
			return n
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return maxIter
}

// Orbit returns the |z| magnitude after each iteration step, stopping once
// the orbit escapes or the budget runs out. Not performance critical; used
// by the trace command for plotting.
func Orbit(c complex128, maxIter int) []float64 {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	mags := make([]float64, 0, 64)
	for n := 0; n < maxIter; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		mag := math.Sqrt(zr*zr + zi*zi)
		mags = append(mags, mag)
		if mag > 2 {
			break
		}
	}
	return mags
}
