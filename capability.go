package splitfft

import (
	"golang.org/x/sys/cpu"

	"github.com/andewx/splitfft/internal/log"
)

// Capability names a SIMD width the vector kernels may target. It is a
// hint only: NewPlan may silently choose a narrower capability than
// requested, but never a wider one than the target actually supports.
type Capability int

const (
	// CapabilityAuto selects the widest capability the running CPU
	// supports, falling back to CapabilityScalar when x/sys/cpu reports
	// none of the recognized SIMD feature flags.
	CapabilityAuto Capability = iota
	// CapabilityScalar forces the portable scalar kernel, regardless of
	// what the CPU supports. Useful for tests and for cross-checking the
	// SIMD kernels against a known-good reference.
	CapabilityScalar
	// CapabilitySSE requires 128-bit SSE2-class SIMD.
	CapabilitySSE
	// CapabilityAVX requires 256-bit AVX SIMD.
	CapabilityAVX
)

func (c Capability) String() string {
	switch c {
	case CapabilityAuto:
		return "auto"
	case CapabilityScalar:
		return "scalar"
	case CapabilitySSE:
		return "sse"
	case CapabilityAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// detectCapability reports the widest capability the running CPU actually
// supports, independent of what the caller requested. The vector kernel
// layer (internal/kernel) is only ever built for 128-bit (4-lane float32)
// SIMD per the spec's contract, so CapabilitySSE and CapabilityAVX select
// the same SIMD kernel in NewPlan; whether the code-generator backend is
// attempted depends only on WithCodegen, not on the capability.
func detectCapability() Capability {
	switch {
	case cpu.X86.HasAVX2:
		return CapabilityAVX
	case cpu.X86.HasSSE2:
		return CapabilitySSE
	case cpu.ARM64.HasASIMD:
		return CapabilitySSE
	default:
		return CapabilityScalar
	}
}

// resolveCapability reconciles a caller's hint with what the hardware
// supports. CapabilityAuto always succeeds. An explicit hint requesting
// any vector width on hardware with none at all is an error (there is
// nothing narrower to fall back to except scalar, which the caller did
// not ask for); a hint requesting a width wider than what the
// hardware offers (AVX requested, only SSE present) downgrades silently,
// per Capability's doc comment, and logs a diagnostic event.
func resolveCapability(n int, hint Capability) (Capability, error) {
	actual := detectCapability()
	if hint == CapabilityAuto {
		return actual, nil
	}
	if hint == CapabilityScalar {
		return CapabilityScalar, nil
	}
	if actual == CapabilityScalar {
		return 0, &PlanError{Code: UnsupportedCapability, Msg: hint.String() + " requested but not available"}
	}
	if hint == CapabilityAVX && actual != CapabilityAVX {
		log.CapabilityDowngrade(n, hint.String(), actual.String())
		return actual, nil
	}
	return hint, nil
}
