//go:build goexperiment.simd

package kernel

import "simd/archsimd"

// SIMD implements Kernel's hot combine loop (E/O) over 4-lane float32
// registers, carrying the real and imaginary parts of four complex
// samples in separate de-interleaved registers ({re,re,re,re} /
// {im,im,im,im}) as described by the spec's vector-kernel contract: this
// maps the complex multiply (a+bi)(c+di) = (ac-bd)+(ad+bc)i onto two
// multiplies and one fused add/sub per register pair, with no intra-
// register shuffle in the inner loop.
//
// X4/X8/X8T delegate to Scalar: their butterflies are too small (4 or 8
// points) for 4-lane vectorization to pay for itself over the gather they
// would require, so the spec's "Base" driver state already dispatches
// them as scalar small-transform kernels regardless of capability.
type SIMD struct {
	Scalar
}

var _ Kernel = SIMD{}

// useAVX gates whether the 4-lane combine loop is used at all; when the
// running CPU lacks AVX, the zero-value SIMD{} kernel behaves exactly
// like Scalar since every method it doesn't override is inherited.
var useAVX = archsimd.X86.AVX()

// complexMulLanes computes (reA+j*imA) * (reB+j*imB) lanewise:
// re = reA*reB - imA*imB, im = reA*imB + imA*reB.
func complexMulLanes(reA, imA, reB, imB archsimd.Float32x4) (archsimd.Float32x4, archsimd.Float32x4) {
	re := reA.Mul(reB).Sub(imA.Mul(imB))
	im := reA.Mul(imB).Add(imA.Mul(reB))
	return re, im
}

func combineBlockSIMD(output []complex64, o, n int, ws []complex64) {
	if !useAVX || n < 4 {
		combineBlock(output, o, n, ws)
		return
	}
	k := 0
	for ; k+4 <= n; k += 4 {
		i := o + k
		j := i + n

		reI := archsimd.LoadFloat32x4(lanesRe(output[i : i+4]))
		imI := archsimd.LoadFloat32x4(lanesIm(output[i : i+4]))
		reJ := archsimd.LoadFloat32x4(lanesRe(output[j : j+4]))
		imJ := archsimd.LoadFloat32x4(lanesIm(output[j : j+4]))
		reW := archsimd.LoadFloat32x4(lanesRe(ws[k : k+4]))
		imW := archsimd.LoadFloat32x4(lanesIm(ws[k : k+4]))

		reWO, imWO := complexMulLanes(reJ, imJ, reW, imW)

		reSum, imSum := reI.Add(reWO), imI.Add(imWO)
		reDiff, imDiff := reI.Sub(reWO), imI.Sub(imWO)

		storeLanes(output[i:i+4], reSum, imSum)
		storeLanes(output[j:j+4], reDiff, imDiff)
	}
	for ; k < n; k++ {
		wo := ws[k] * output[o+k+n]
		output[o+k], output[o+k+n] = output[o+k]+wo, output[o+k]-wo
	}
}

// lanesRe/lanesIm de-interleave four complex64 samples into the
// {re,re,re,re}/{im,im,im,im} lane layout the spec's kernels operate on.
// This allocates a small fixed-size scratch array rather than taking
// unsafe pointers into the interleaved complex64 slice, keeping the
// kernel free of unsafe.Pointer while still expressing the same
// lane-parallel arithmetic.
func lanesRe(c []complex64) *[4]float32 {
	var r [4]float32
	for i, v := range c {
		r[i] = real(v)
	}
	return &r
}

func lanesIm(c []complex64) *[4]float32 {
	var r [4]float32
	for i, v := range c {
		r[i] = imag(v)
	}
	return &r
}

func storeLanes(dst []complex64, re, im archsimd.Float32x4) {
	var reArr, imArr [4]float32
	re.Store(&reArr)
	im.Store(&imArr)
	for i := range dst {
		dst[i] = complex(reArr[i], imArr[i])
	}
}

func (SIMD) E(t *Tables, stage int, output []complex64) {
	n := t.BaseSize << stage
	ws := t.WS[stage]
	for o := 0; o < t.N; o += 4 * n {
		combineBlockSIMD(output, o, n, ws)
	}
}

func (SIMD) O(t *Tables, stage int, output []complex64) {
	n := t.BaseSize << stage
	ws := t.EOWs[stage]
	for o := 2 * n; o < t.N; o += 4 * n {
		combineBlockSIMD(output, o, n, ws)
	}
}
