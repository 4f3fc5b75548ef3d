package splitfft

// driver_small.go handles the trivial transform lengths the spec calls
// out as tie-breaks in §4.2: n=1 is the identity, and n=2 is a single
// add/subtract pair with no twiddle and no kernel call.

func transformTrivial(p *Plan, input, output []complex64) {
	switch p.n {
	case 1:
		output[0] = input[0]
	case 2:
		output[0] = input[0] + input[1]
		output[1] = input[0] - input[1]
	}
}
