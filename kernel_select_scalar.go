//go:build !goexperiment.simd

package splitfft

import "github.com/andewx/splitfft/internal/kernel"

// newSIMDKernel falls back to the scalar kernel when the binary was not
// built with GOEXPERIMENT=simd. A caller that asked for CapabilitySSE or
// CapabilityAVX here still gets correct output, just without the 4-lane
// combine loop; resolveCapability only rejects a hint the CPU itself
// cannot satisfy, not one the build tags happen not to implement.
func newSIMDKernel() kernel.Kernel { return kernel.Scalar{} }
