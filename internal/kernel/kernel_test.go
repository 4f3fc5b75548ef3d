package kernel

import (
	"math"
	"math/cmplx"
	"testing"
)

func slowDFT4(x [4]complex64) [4]complex64 {
	var y [4]complex64
	for k := 0; k < 4; k++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			phi := -2.0 * math.Pi * float64(k*j) / 4.0
			sn, cs := math.Sincos(phi)
			acc += complex128(x[j]) * complex(cs, sn)
		}
		y[k] = complex64(acc)
	}
	return y
}

func slowDFT8(x [8]complex64) [8]complex64 {
	var y [8]complex64
	for k := 0; k < 8; k++ {
		var acc complex128
		for j := 0; j < 8; j++ {
			phi := -2.0 * math.Pi * float64(k*j) / 8.0
			sn, cs := math.Sincos(phi)
			acc += complex128(x[j]) * complex(cs, sn)
		}
		y[k] = complex64(acc)
	}
	return y
}

func TestScalarX4MatchesDirectDFT(t *testing.T) {
	x := [4]complex64{1, 2, 3, 4}
	want := slowDFT4(x)
	data := append([]complex64(nil), x[:]...)
	Scalar{}.X4(data, [3]complex64{1, 1, 1}, complex(0, -1))
	for i := range want {
		if d := cmplx.Abs(complex128(want[i]) - complex128(data[i])); d > 1e-3 {
			t.Errorf("X4[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

// TestScalarX4InverseSign checks that passing the Inverse quarter-turn
// (+j instead of -j) makes X4 compute the unscaled inverse DFT, not a
// second copy of the forward transform.
func TestScalarX4InverseSign(t *testing.T) {
	x := [4]complex64{1, 2, 3, 4}
	var want [4]complex64
	for k := 0; k < 4; k++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			phi := 2.0 * math.Pi * float64(k*j) / 4.0
			sn, cs := math.Sincos(phi)
			acc += complex128(x[j]) * complex(cs, sn)
		}
		want[k] = complex64(acc)
	}
	data := append([]complex64(nil), x[:]...)
	Scalar{}.X4(data, [3]complex64{1, 1, 1}, complex(0, 1))
	for i := range want {
		if d := cmplx.Abs(complex128(want[i]) - complex128(data[i])); d > 1e-3 {
			t.Errorf("X4 inverse[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestScalarX8MatchesDirectDFT(t *testing.T) {
	x := [8]complex64{1, 2, 3, 4, 5, 6, 7, 8}
	want := slowDFT8(x)

	ws := [4]complex64{1}
	for k := 1; k < 4; k++ {
		phi := -2.0 * math.Pi * float64(k) / 8.0
		sn, cs := math.Sincos(phi)
		ws[k] = complex64(complex(cs, sn))
	}

	data := append([]complex64(nil), x[:]...)
	Scalar{}.X8(data, ws, complex(0, -1))
	for i := range want {
		if d := cmplx.Abs(complex128(want[i]) - complex128(data[i])); d > 1e-3 {
			t.Errorf("X8[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestScalarEOCombinesTwoBaseDFTsIntoFullDFT(t *testing.T) {
	// For N=16, base=8: two independent 8-point base DFTs sit side by
	// side in data; one combine stage (E runs the single o=0 window of
	// half-width 8; O has no window at this size, its first would start
	// at o=16) must turn them into the 16-point DFT of the original
	// concatenated signal.
	n := 16
	half := 8
	x := make([]complex64, n)
	for i := range x {
		x[i] = complex(float32(i+1), float32(-i))
	}

	evenSamples := make([]complex64, half)
	oddSamples := make([]complex64, half)
	for i := 0; i < half; i++ {
		evenSamples[i] = x[2*i]
		oddSamples[i] = x[2*i+1]
	}
	data := make([]complex64, n)
	copy(data[:half], slowDFTN(evenSamples))
	copy(data[half:], slowDFTN(oddSamples))

	ws := make([]complex64, half)
	for k := range ws {
		phi := -2.0 * math.Pi * float64(k) / float64(n)
		sn, cs := math.Sincos(phi)
		ws[k] = complex64(complex(cs, sn))
	}
	tables := &Tables{N: n, BaseSize: half, WS: [][]complex64{ws}, EOWs: [][]complex64{ws}}

	Scalar{}.E(tables, 0, data)
	Scalar{}.O(tables, 0, data)

	want := slowDFTN(x)
	for i := range want {
		if d := cmplx.Abs(complex128(want[i]) - complex128(data[i])); d > 1e-2 {
			t.Errorf("combined E+O[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func slowDFTN(x []complex64) []complex64 {
	n := len(x)
	y := make([]complex64, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			phi := -2.0 * math.Pi * float64(k*j) / float64(n)
			sn, cs := math.Sincos(phi)
			acc += complex128(x[j]) * complex(cs, sn)
		}
		y[k] = complex64(acc)
	}
	return y
}
