// Package kernel implements the vector base-case butterflies and the
// radix-2 combine passes that the static driver composes into a full
// transform. The composition is an iterative decimation-in-time FFT over
// radix-4/8 base blocks; it is not the asymmetric split-radix (one N/2
// plus two N/4 subproblems) decomposition.
//
// Two implementations exist behind the Kernel interface: Scalar (always
// built, the correctness reference for every test) and a SIMD
// implementation gated by the goexperiment.simd build tag. Both consume
// the same Tables and must agree to within 1 ULP per lane.
package kernel

// Tables holds the plan-owned, read-only data the kernels need to execute
// a pass. It is built once by the planner and never mutated; E and O read
// it on every call but own none of it.
type Tables struct {
	// N is the transform length.
	N int
	// BaseSize is 4 or 8 (or N itself when N < 4): the size of the fused
	// gather+base-DFT block the driver's first pass produces.
	BaseSize int
	// Offsets is the length-N base-pass gather table: Offsets[b*BaseSize+m]
	// is the input index that base block b's m'th slot draws from. Built
	// once by the planner's pattern generator.
	Offsets []int32
	// Roots is the length-N table of W_N^k, sign-adjusted at plan time
	// (k = 0..N-1). Every stage's twiddle is a stride-multiple lookup
	// into this single table, exactly as the base-size root table is
	// shared across every pass.
	Roots []complex64
	// WS holds, for each combine stage (indexed by stage number, stage 0
	// being the first combine above BaseSize), the twiddle sub-table used
	// by E. EOWs is O's own, independently materialized, per-stage table;
	// both are built from Roots but kept as separate owned slices so E
	// and O never share backing storage.
	WS   [][]complex64
	EOWs [][]complex64
	// EEWs holds the small, fixed W_8^0..W_8^3 constants the X8/X8T base
	// kernel applies to every base block, regardless of which block; it
	// does not vary with N beyond BaseSize and so is not a per-stage
	// table like WS/EOWs.
	EEWs [4]complex64
	// NegI is the base kernel's intrinsic quarter-turn rotation W_N^{N/4}
	// (the split-radix-4 butterfly's "multiply by j" step), sign-adjusted
	// the same way every other table derived from Roots is: -j for
	// Forward, +j for Inverse. X4 (and, through dft4, X8/X8T) use this
	// instead of a hardcoded -j so the base case stays correct under
	// Inverse plans, which have no combine stage to correct a
	// forward-only base for at small N.
	NegI complex64
	// WSStride holds, per combine stage, the multiplier applied to a
	// butterfly's local index k before indexing into Roots: twiddle for
	// local index k at stage s is Roots[k*WSStride[s]].
	WSStride []int32
	// I0 is the number of base blocks (N / BaseSize). I1 is the number of
	// combine stages (len(WS)).
	I0, I1 int
}

// Kernel is the vector butterfly contract. Every method must be
// bit-stable (identical inputs produce identical outputs) and must not
// alias its input and output regions.
type Kernel interface {
	// X4 performs a radix-4 DIT butterfly on four gathered complex
	// samples {x0, x1, x2, x3} representing {x[i], x[i+m], x[i+2m],
	// x[i+3m]} for some stride m, using twiddle powers ws = {w, w^2,
	// w^3} (all identity for the base-case, untwiddled call).
	// negi is the sign-adjusted quarter-turn W_N^{N/4} (Tables.NegI);
	// callers outside this package's base pass should pass
	// complex(0, -1) to get the conventional forward-sign butterfly.
	// The result overwrites data in place.
	X4(data []complex64, ws [3]complex64, negi complex64)
	// X8 performs a radix-8 DIT butterfly (two radix-4 halves combined
	// with twiddles ws, one per output bin 0..3) on eight gathered
	// samples, writing results to out in natural [X0..X7] order. negi is
	// the same sign-adjusted quarter-turn X4 takes.
	X8(out []complex64, ws [4]complex64, negi complex64)
	// X8T performs the same computation as X8 but writes results
	// interleaved: out[2k] = X[k] and out[2k+1] = X[k+4] for k = 0..3,
	// so a following E/O pass can read each (X[k], X[k+4]) pair with
	// unit stride.
	X8T(out []complex64, ws [4]complex64, negi complex64)
	// E runs the even half of one combine stage in place over output
	// (the windows at o ≡ 0 mod 4n, n being the stage's half-width); it
	// reads no input buffer. stage indexes t.WS.
	E(t *Tables, stage int, output []complex64)
	// O runs the complementary half of the same stage (the windows at
	// o ≡ 2n mod 4n), reading t.EOWs. It applies the same radix-2
	// butterfly as E; no separate ±j rotation is applied.
	O(t *Tables, stage int, output []complex64)
}
