package splitfft

import (
	"math"

	"github.com/andewx/splitfft/internal/kernel"
)

// trig.go builds the twiddle-factor tables. Grounded on the teacher's
// roots(N) (fft.go): a single full-length table of W_N^k, sign-adjusted,
// consulted by every pass at whatever stride that pass needs — the same
// trick generalized here across the base kernel's small constant table
// and each combine stage's per-stage sub-table.

// buildRoots returns the length-n table of W_n^k for k=0..n-1, with the
// sign folded in at construction time (spec §9: "fold the sign into the
// trig tables at plan construction; the kernels are direction-agnostic").
func buildRoots(n int, sign Direction) []complex64 {
	roots := make([]complex64, n)
	s := -1.0
	if sign == Inverse {
		s = 1.0
	}
	for k := 0; k < n; k++ {
		phi := s * 2.0 * math.Pi * float64(k) / float64(n)
		sinv, cosv := math.Sincos(phi)
		roots[k] = complex(float32(cosv), float32(sinv))
	}
	return roots
}

// buildStageTables builds WS/EOWs/WSStride for every combine stage above
// the base size, plus EEWs, the small fixed W_8^k table the base kernel
// applies uniformly to every block.
func buildStageTables(n, base int, roots []complex64) (ws, eoWs [][]complex64, wsStride []int32, eeWs [4]complex64) {
	if base == 8 {
		rootStride := n / 8
		eeWs = [4]complex64{roots[0], roots[rootStride], roots[2*rootStride], roots[3*rootStride]}
	} else {
		eeWs = [4]complex64{1, 1, 1, 1}
	}

	stages := 0
	for w := base; w < n; w <<= 1 {
		stages++
	}
	ws = make([][]complex64, stages)
	eoWs = make([][]complex64, stages)
	wsStride = make([]int32, stages)

	s := 0
	for w := base; w < n; w <<= 1 {
		stride := n / (2 * w)
		wsStride[s] = int32(stride)
		stageTable := make([]complex64, w)
		stageTableOdd := make([]complex64, w)
		for k := 0; k < w; k++ {
			stageTable[k] = roots[k*stride]
			stageTableOdd[k] = roots[k*stride]
		}
		ws[s] = stageTable
		eoWs[s] = stageTableOdd
		s++
	}
	return
}

// populateTables builds the kernel.Tables view of a Plan's owned data.
func populateTables(n, base int, offsets []int32, roots []complex64) *kernel.Tables {
	ws, eoWs, wsStride, eeWs := buildStageTables(n, base, roots)
	i0 := n / base
	return &kernel.Tables{
		N:        n,
		BaseSize: base,
		Offsets:  offsets,
		Roots:    roots,
		WS:       ws,
		EOWs:     eoWs,
		EEWs:     eeWs,
		NegI:     roots[n/4],
		WSStride: wsStride,
		I0:       i0,
		I1:       len(ws),
	}
}
