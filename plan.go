package splitfft

import (
	"github.com/andewx/splitfft/internal/kernel"
	"github.com/andewx/splitfft/internal/log"
)

// Direction selects the sign of the kernel exponent: Forward uses
// -2*pi*i*k*n/N, Inverse uses +2*pi*i*k*n/N. Neither direction applies
// any scaling; callers of Inverse divide by N themselves if they want
// the round-trip property.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// backendKind tags which dispatcher a Plan was built with, the Go
// realization of spec §9's "tagged enum over backends" note.
type backendKind int

const (
	backendTrivial backendKind = iota
	backendStatic
	backendGenerated
)

// transformFunc is the dispatched kernel for a plan: the `fn(&Plan, *const
// f32, *mut f32)` of the data model, realized over complex64 slices.
type transformFunc func(p *Plan, input, output []complex64)

// Plan is the only long-lived object in this package. It owns every
// precomputed table (twiddle factors, gather offsets) and the dispatcher
// selected for its (n, sign) pair. A Plan is immutable after NewPlan
// returns and may be shared across goroutines provided each caller
// supplies its own input/output buffers to Execute.
type Plan struct {
	n     int
	log2N uint
	sign  Direction

	offsets []int32
	roots   []complex64
	tables  *kernel.Tables

	backend   backendKind
	transform transformFunc
	kern      kernel.Kernel
	caps      Capability

	gen *generatedCode // non-nil only when backend == backendGenerated
}

// N returns the transform length the plan was built for.
func (p *Plan) N() int { return p.n }

// Sign returns the plan's direction.
func (p *Plan) Sign() Direction { return p.sign }

// Capability reports the capability NewPlan resolved for this plan, which
// selects the static driver's vector kernel. It is the same whether or not
// the code-generator backend was selected, since the generated routine
// runs the static driver.
func (p *Plan) Capability() Capability { return p.caps }

// UsesGeneratedCode reports whether this plan dispatches through the
// code-generator backend rather than the static driver.
func (p *Plan) UsesGeneratedCode() bool { return p.backend == backendGenerated }

// PlanOption configures NewPlan beyond (n, sign).
type PlanOption func(*planConfig)

type planConfig struct {
	capabilityHint Capability
	codegen        bool
}

// WithCapabilityHint suggests a SIMD width; NewPlan may downgrade it to a
// narrower width the hardware offers rather than failing, and fails only
// when the hint names a SIMD width and the hardware reports no SIMD
// support at all (see resolveCapability).
func WithCapabilityHint(c Capability) PlanOption {
	return func(cfg *planConfig) { cfg.capabilityHint = c }
}

// WithCodegen toggles the code-generator backend. It defaults to true on
// amd64 and false elsewhere; emission failure for any reason always
// falls back to the static driver silently, per §4.4/§7.
func WithCodegen(enabled bool) PlanOption {
	return func(cfg *planConfig) { cfg.codegen = enabled }
}

// NewPlan validates n, builds every table for (n, sign), selects a
// dispatcher, and returns an immutable Plan. All error conditions are
// detected here; Execute never fails due to a condition NewPlan could
// have caught.
func NewPlan(n int, sign Direction, opts ...PlanOption) (*Plan, error) {
	if n < 1 {
		return nil, invalidLengthError(n, "must be >= 1")
	}
	if !IsPow2(n) {
		return nil, invalidLengthError(n, "must be a power of two")
	}

	cfg := planConfig{capabilityHint: CapabilityAuto, codegen: defaultCodegenEnabled}
	for _, opt := range opts {
		opt(&cfg)
	}

	caps, err := resolveCapability(n, cfg.capabilityHint)
	if err != nil {
		if pe, ok := err.(*PlanError); ok {
			pe.N = n
		}
		return nil, err
	}

	p := &Plan{n: n, log2N: log2(n), sign: sign, caps: caps}

	if n <= 2 {
		p.backend = backendTrivial
		p.transform = transformTrivial
		return p, nil
	}

	base := baseSize(n)
	p.offsets = buildOffsets(n, base)
	p.roots = buildRoots(n, sign)
	p.tables = populateTables(n, base, p.offsets, p.roots)

	if caps == CapabilityScalar {
		p.kern = kernel.Scalar{}
	} else {
		p.kern = newSIMDKernel()
	}

	p.backend = backendStatic
	p.transform = transformStatic

	if cfg.codegen {
		gen, genErr := generate(p)
		if genErr == nil {
			p.gen = gen
			p.backend = backendGenerated
			p.transform = gen.transform
		} else {
			// Unsupported arch, executable memory denied, or routine too
			// large: fall back to the static driver already wired above.
			// No error is surfaced, per the code generator's
			// ExecutableMemoryDenied semantics; only a diagnostic log line.
			log.CodegenFallback(n, genErr)
		}
	}

	return p, nil
}

// Close releases the plan's executable memory, if the code-generator
// backend was selected. It is a no-op otherwise and is safe to call more
// than once.
func (p *Plan) Close() error {
	if p.gen == nil {
		return nil
	}
	return p.gen.close()
}
