package frequency

import (
	"testing"
)

func TestApplyRectangularIsNoOp(t *testing.T) {
	x := []complex64{1, 2, 3, 4}
	want := append([]complex64(nil), x...)
	Apply(x, Rectangular)
	for i := range x {
		if x[i] != want[i] {
			t.Errorf("Rectangular window changed x[%d]: got %v want %v", i, x[i], want[i])
		}
	}
}

func TestApplyHanningEndpointsZero(t *testing.T) {
	x := make([]complex64, 8)
	for i := range x {
		x[i] = 1
	}
	Apply(x, Hanning)
	if real(x[0]) > 1e-6 {
		t.Errorf("Hanning window x[0] = %v, want ~0", x[0])
	}
	if real(x[len(x)-1]) > 1e-6 {
		t.Errorf("Hanning window x[n-1] = %v, want ~0", x[len(x)-1])
	}
}

func TestPowerSpectrum(t *testing.T) {
	x := []complex64{complex(3, 4), complex(0, 1), 0}
	got := PowerSpectrum(x)
	want := []float32{25, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PowerSpectrum[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
