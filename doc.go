// Package splitfft provides a single-precision complex fast Fourier
// transform for power-of-two lengths.
//
// The engine is an iterative Cooley-Tukey decimation-in-time FFT with a
// wide fused base case: rather than recursing down to N=1 radix-2
// butterflies, the bottom log2(4) or log2(8) stages are fused into a
// single radix-4 or radix-8 vector kernel call per block (see
// internal/kernel), and the remaining stages run as ordinary radix-2
// combines partitioned into two interleaved passes, E and O, over
// disjoint halves of the outer block index.
//
// Before transforming data, build a Plan with NewPlan(n, sign); the Plan
// owns every precomputed table (twiddle factors, output-offset pattern) and
// is immutable once returned. Execute(plan, input, output) then runs the
// transform with no further allocation, writing natural-order output
// directly (there is no separate bit-reversal pass: the offset table
// bakes the reordering into the gather stage's load addresses).
//
// A Plan may be shared across goroutines as long as each caller supplies
// its own input/output buffers; Execute only ever reads the Plan.
package splitfft

// ALGORITHM
//
// Decimation-in-time combine, one stage at half-width n (n doubling each
// stage from BaseSize up to N/2):
//
//	X[i]   = A[i] + W_N^{k} * A[j]
//	X[j]   = A[i] - W_N^{k} * A[j]
//
// for i, j = o+k, o+k+n, where A is the already-combined (or base-kernel)
// result from the previous stage and o ranges over block starts spaced
// 2n apart. E and O are the same butterfly applied to the two halves of
// that block-start range (o ≡ 0 mod 4n for E, o ≡ 2n mod 4n for O); they
// are kept as separate Kernel methods, each reading its own twiddle
// sub-table, so that a future asymmetric combine (a true split-radix
// j-rotation on the odd subtree) could replace O's implementation
// without touching E's.
//
// The vector kernels (X4, X8, X8T) implement the fused base case: a
// radix-4 DIT butterfly, and a radix-8 butterfly built from two
// untwiddled radix-4 DFTs combined with the W_8^k constants. Both are
// unrolled over the fixed small lane count rather than looped.
//
// Twiddle table layout: for every stage the table holds n consecutive
// complex roots of unity drawn from a single length-N root table built
// once at plan time (see trig.go), indexed by a per-stage stride. The
// gather offsets table is keyed by N and BaseSize and produced once at
// plan time by a pure combinatorial generator (see pattern.go),
// independent of sign or input data. The base kernel's own intrinsic
// quarter-turn rotation, unlike every other table, does depend on sign
// (Tables.NegI) since it isn't a per-stage twiddle the combine loop can
// fold sign into — it's a constant the butterfly formula always applies.
