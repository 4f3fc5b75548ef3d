package kernel

// Scalar is the portable reference implementation of Kernel. It is the
// correctness oracle every other implementation (including the SIMD
// backend under the goexperiment.simd build tag) is checked against, and
// is always compiled in as the fallback when no wider capability is
// available or requested.
type Scalar struct{}

var _ Kernel = Scalar{}

// X4 implements the general radix-4 DIT butterfly. data holds the four
// gathered samples {x[i], x[i+m], x[i+2m], x[i+3m]}; ws holds {w, w^2,
// w^3}. The base-case (untwiddled) call passes ws = {1, 1, 1}. negi is
// the butterfly's intrinsic quarter-turn rotation (Tables.NegI): -j for a
// Forward plan, +j for Inverse. Unlike ws, which comes from the outer
// stage's twiddle table (or is identity at the base case), negi is
// always applied — it is the W_4^1 term the radix-4 decomposition itself
// contributes, not a per-stage twiddle, and it is the only place in the
// base kernel where Direction has to be threaded in explicitly rather
// than falling out of a pre-built table lookup.
func (Scalar) X4(data []complex64, ws [3]complex64, negi complex64) {
	x1w := data[1] * ws[0]
	x3w3 := data[3] * ws[2]
	t := x1w + x3w3
	u := data[2] * ws[1]
	v := negi * (x1w - x3w3)
	data[0], data[1], data[2], data[3] =
		data[0]+u+t,
		data[0]-u+v,
		data[0]+u-t,
		data[0]-u-v
}

// dft4 is the untwiddled radix-4 DFT used internally by X8/X8T to combine
// their even/odd halves.
func dft4(data [4]complex64, negi complex64) [4]complex64 {
	Scalar{}.X4(data[:], [3]complex64{1, 1, 1}, negi)
	return data
}

// X8 implements the radix-8 DIT butterfly as two untwiddled radix-4 DFTs
// (over the even- and odd-gathered halves of data) combined with ws, the
// four W_8^k twiddle powers (ws[0] == 1). Results overwrite data in
// natural bin order X[0..7].
func (Scalar) X8(data []complex64, ws [4]complex64, negi complex64) {
	even := dft4([4]complex64{data[0], data[2], data[4], data[6]}, negi)
	odd := dft4([4]complex64{data[1], data[3], data[5], data[7]}, negi)
	for k := 0; k < 4; k++ {
		wo := ws[k] * odd[k]
		data[k] = even[k] + wo
		data[k+4] = even[k] - wo
	}
}

// X8T performs the same computation as X8 but writes its eight results
// interleaved, out[2i] = X[i], out[2i+1] = X[i+4], so that a following
// E/O combine pass can walk the pair (X[i], X[i+4]) with unit stride
// instead of a stride-4 gather.
func (Scalar) X8T(data []complex64, ws [4]complex64, negi complex64) {
	even := dft4([4]complex64{data[0], data[2], data[4], data[6]}, negi)
	odd := dft4([4]complex64{data[1], data[3], data[5], data[7]}, negi)
	for k := 0; k < 4; k++ {
		wo := ws[k] * odd[k]
		data[2*k] = even[k] + wo
		data[2*k+1] = even[k] - wo
	}
}

// combineBlock runs one radix-2-style combine window of half-width n
// starting at output offset o, using the per-stage twiddle sub-table ws
// (len(ws) == n).
func combineBlock(output []complex64, o, n int, ws []complex64) {
	for k := 0; k < n; k++ {
		i := o + k
		j := i + n
		wo := ws[k] * output[j]
		output[i], output[j] = output[i]+wo, output[i]-wo
	}
}

// E runs the combine windows whose outer block index is even (o ≡ 0 mod
// 4n), reading the stage's WS twiddle sub-table.
func (Scalar) E(t *Tables, stage int, output []complex64) {
	n := t.BaseSize << stage
	ws := t.WS[stage]
	for o := 0; o < t.N; o += 4 * n {
		combineBlock(output, o, n, ws)
	}
}

// O runs the complementary combine windows (o ≡ 2n mod 4n), reading the
// stage's EOWs twiddle sub-table. Structurally this is the same butterfly
// as E; keeping it as a distinct method (reading a distinct, separately
// materialized twiddle table) is what lets the odd subtree's table be
// rebuilt independently were a genuine j-rotation variant ever needed.
func (Scalar) O(t *Tables, stage int, output []complex64) {
	n := t.BaseSize << stage
	ws := t.EOWs[stage]
	for o := 2 * n; o < t.N; o += 4 * n {
		combineBlock(output, o, n, ws)
	}
}
