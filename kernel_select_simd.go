//go:build goexperiment.simd

package splitfft

import "github.com/andewx/splitfft/internal/kernel"

func newSIMDKernel() kernel.Kernel { return kernel.SIMD{} }
