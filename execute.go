package splitfft

// Execute runs p over input, writing N complex64 samples to output.
// input and output must each have length p.N() and must not overlap:
// the backends write output blocks while later blocks are still being
// gathered from input, so passing the same slice for both (in place)
// does not produce the transform. Execute allocates nothing: every table
// p needs was built once by NewPlan.
func Execute(p *Plan, input, output []complex64) error {
	if len(input) != p.n {
		return bufferLengthError(p.n, len(input), "input")
	}
	if len(output) != p.n {
		return bufferLengthError(p.n, len(output), "output")
	}
	p.transform(p, input, output)
	return nil
}
