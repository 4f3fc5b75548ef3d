package splitfft

import (
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// TestLinearity checks FFT(a*x + b*y) == a*FFT(x) + b*FFT(y) for scalar a, b.
func TestLinearity(t *testing.T) {
	for n := 2; n <= 1<<8; n <<= 1 {
		p, err := NewPlan(n, Forward)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		x := randomComplex64(n)
		y := randomComplex64(n)
		a := complex64(complex(2.5, -1.0))
		bcoef := complex64(complex(-0.75, 3.0))

		combined := make([]complex64, n)
		for i := range combined {
			combined[i] = a*x[i] + bcoef*y[i]
		}

		fx := make([]complex64, n)
		fy := make([]complex64, n)
		fc := make([]complex64, n)
		if err := Execute(p, x, fx); err != nil {
			t.Fatal(err)
		}
		if err := Execute(p, y, fy); err != nil {
			t.Fatal(err)
		}
		if err := Execute(p, combined, fc); err != nil {
			t.Fatal(err)
		}

		for i := range fc {
			want := a*fx[i] + bcoef*fy[i]
			if d := cmplx.Abs(complex128(want) - complex128(fc[i])); d > 1e-2 {
				t.Errorf("n=%d i=%d: linearity violated, diff %v", n, i, d)
			}
		}
		p.Close()
	}
}

// TestParseval checks sum|x|^2 == sum|FFT(x)|^2 / N.
func TestParseval(t *testing.T) {
	for n := 2; n <= 1<<10; n <<= 1 {
		p, err := NewPlan(n, Forward)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		x := randomComplex64(n)
		y := make([]complex64, n)
		if err := Execute(p, x, y); err != nil {
			t.Fatal(err)
		}

		timeMags := make([]float64, n)
		freqMags := make([]float64, n)
		for i := range x {
			timeMags[i] = real(complex128(x[i]) * cmplx.Conj(complex128(x[i])))
		}
		for i := range y {
			freqMags[i] = real(complex128(y[i]) * cmplx.Conj(complex128(y[i])))
		}
		timeEnergy := floats.Sum(timeMags)
		freqEnergy := floats.Sum(freqMags) / float64(n)

		if d := timeEnergy - freqEnergy; d > 1e-1 || d < -1e-1 {
			t.Errorf("n=%d: Parseval mismatch, time=%v freq/n=%v", n, timeEnergy, freqEnergy)
		}
		p.Close()
	}
}

// TestImpulseResponse checks that FFT of a unit impulse is a constant 1.
func TestImpulseResponse(t *testing.T) {
	for n := 1; n <= 1<<8; n <<= 1 {
		p, err := NewPlan(n, Forward)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}
		x := make([]complex64, n)
		x[0] = 1
		y := make([]complex64, n)
		if err := Execute(p, x, y); err != nil {
			t.Fatal(err)
		}
		for i, v := range y {
			if d := cmplx.Abs(complex128(v) - 1); d > 1e-4 {
				t.Errorf("n=%d i=%d: impulse response %v, want 1", n, i, v)
			}
		}
		p.Close()
	}
}
