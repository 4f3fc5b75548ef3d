// Command splitfft-bench exercises a Plan end to end: window a random
// signal, time repeated Forward transforms of it, report the power
// spectrum's peak bin, and run the signal through the convolution helper
// in frequency. It exists
// mainly as a smoke test a developer can run by hand after touching the
// kernel or driver code.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/andewx/splitfft"
	"github.com/andewx/splitfft/frequency"
)

func main() {
	n := flag.Int("n", 1024, "transform length, must be a power of two")
	iters := flag.Int("iters", 1000, "number of Execute calls to time")
	capHint := flag.String("capability", "auto", "auto, scalar, sse, or avx")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	hint, err := parseCapability(*capHint)
	if err != nil {
		logger.Error("invalid capability flag", "value", *capHint, "err", err)
		os.Exit(1)
	}

	p, err := splitfft.NewPlan(*n, splitfft.Forward, splitfft.WithCapabilityHint(hint))
	if err != nil {
		logger.Error("NewPlan failed", "n", *n, "err", err)
		os.Exit(1)
	}
	defer p.Close()

	logger.Info("plan built",
		"n", p.N(),
		"capability", p.Capability(),
		"generated_code", p.UsesGeneratedCode(),
	)

	x := make([]complex64, *n)
	for i := range x {
		x[i] = complex(float32(rand.NormFloat64()), float32(rand.NormFloat64()))
	}
	frequency.Apply(x, frequency.Hanning)

	y := make([]complex64, *n)
	start := time.Now()
	for i := 0; i < *iters; i++ {
		if err := splitfft.Execute(p, x, y); err != nil {
			logger.Error("Execute failed", "err", err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)

	spectrum := frequency.PowerSpectrum(y)
	peak := 0.0
	peakBin := 0
	for i, v := range spectrum {
		if f := float64(v); f > peak {
			peak = f
			peakBin = i
		}
	}

	fmt.Printf("n=%d iters=%d total=%s per-call=%s\n", *n, *iters, elapsed, elapsed/time.Duration(*iters))
	fmt.Printf("peak bin=%d power=%.4g\n", peakBin, peak)

	conv, err := frequency.Convolve(x[:min(*n, 64)], x[:min(*n, 64)])
	if err != nil {
		logger.Error("Convolve failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("convolution length=%d first=%v\n", len(conv), conv[0])
}

func parseCapability(s string) (splitfft.Capability, error) {
	switch s {
	case "auto":
		return splitfft.CapabilityAuto, nil
	case "scalar":
		return splitfft.CapabilityScalar, nil
	case "sse":
		return splitfft.CapabilitySSE, nil
	case "avx":
		return splitfft.CapabilityAVX, nil
	default:
		return 0, fmt.Errorf("unknown capability %q", s)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
