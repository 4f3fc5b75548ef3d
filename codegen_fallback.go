//go:build !amd64 || nojit

package splitfft

// defaultCodegenEnabled is false on every architecture this package
// doesn't carry a hand-written emitter for, and whenever the nojit build
// tag opts a build out. NewPlan always has the static driver wired
// first, so this only changes which backend WithCodegen(true) would ask
// for; it still fails closed to the static driver.
const defaultCodegenEnabled = false

// maxGeneratedN is 0 on builds with no emitter at all, so any n always
// exceeds it and generate always reports unavailable.
const maxGeneratedN = 0

// generate always reports the alternative backend unavailable on this
// build. NewPlan's fallback makes this silent to callers.
func generate(p *Plan) (*generatedCode, error) {
	return nil, ErrCodegenUnavailable
}
