// Package log provides the one structured logger this module uses for
// its non-fatal diagnostic path: capability downgrades and code-generator
// fallback during NewPlan. Nothing on the Execute hot path logs.
package log

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// SetDefault replaces the logger this package's helpers write to. Tests
// use this to capture diagnostic output; production callers normally
// leave the os.Stderr default in place.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// CodegenFallback records that NewPlan asked for the code-generator
// backend but fell back to the static driver, and why.
func CodegenFallback(n int, reason error) {
	get().Warn("codegen unavailable, falling back to static driver", "n", n, "reason", reason)
}

// CapabilityDowngrade records that NewPlan selected a narrower SIMD
// capability than the caller's hint requested.
func CapabilityDowngrade(n int, requested, resolved string) {
	get().Warn("capability downgraded", "n", n, "requested", requested, "resolved", resolved)
}
