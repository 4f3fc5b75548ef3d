package frequency

import (
	"fmt"

	"github.com/andewx/splitfft"
)

// ZeroPad returns x extended to length n with zero samples. n must be
// >= len(x).
func ZeroPad(x []complex64, n int) []complex64 {
	if len(x) >= n {
		return x[:n]
	}
	out := make([]complex64, n)
	copy(out, x)
	return out
}

// Convolve computes the linear convolution of x and y via FFT, padding
// both to the next power of two at least len(x)+len(y)-1 long. It builds
// and discards its own plans (through FastConvolve).
func Convolve(x, y []complex64) ([]complex64, error) {
	if len(x) == 0 && len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	padded := splitfft.NextPow2(n)
	xp := ZeroPad(append([]complex64(nil), x...), padded)
	yp := ZeroPad(append([]complex64(nil), y...), padded)
	if err := FastConvolve(xp, yp); err != nil {
		return nil, err
	}
	return xp[:n], nil
}

// FastConvolve computes the circular convolution of x and y in place,
// overwriting x with the result and zeroing y. x and y must have equal,
// power-of-two length; callers are responsible for zero-padding first
// (see Convolve). FastConvolve builds two plans and two scratch buffers
// on every call.
func FastConvolve(x, y []complex64) error {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	if len(x) != len(y) {
		return fmt.Errorf("frequency: x and y must have equal length, got %d and %d", len(x), len(y))
	}
	n := len(x)
	fwd, err := splitfft.NewPlan(n, splitfft.Forward)
	if err != nil {
		return err
	}
	defer fwd.Close()
	inv, err := splitfft.NewPlan(n, splitfft.Inverse)
	if err != nil {
		return err
	}
	defer inv.Close()

	xf := make([]complex64, n)
	yf := make([]complex64, n)
	if err := splitfft.Execute(fwd, x, xf); err != nil {
		return err
	}
	if err := splitfft.Execute(fwd, y, yf); err != nil {
		return err
	}
	for i := range xf {
		xf[i] *= yf[i]
	}
	if err := splitfft.Execute(inv, xf, x); err != nil {
		return err
	}
	scale := 1 / float32(n)
	for i := range x {
		x[i] *= complex(scale, 0)
	}
	for i := range y {
		y[i] = 0
	}
	return nil
}
