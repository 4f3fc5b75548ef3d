package splitfft

import "testing"

// TestBuildOffsetsNaturalOrderWithinBlock checks that each base block's
// offsets are a natural-order (unreversed), I0-strided run, not a full
// bit-reversal: for n==base there is exactly one block and it must be the
// identity permutation.
func TestBuildOffsetsNaturalOrderWithinBlock(t *testing.T) {
	for _, n := range []int{4, 8} {
		off := buildOffsets(n, n)
		for i := 0; i < n; i++ {
			if off[i] != int32(i) {
				t.Errorf("n=%d: offsets[%d] = %d, want %d (identity)", n, i, off[i], i)
			}
		}
	}
}

// TestBuildOffsetsDecimatedBlocks checks the n=16/base=8 case by hand:
// two blocks, even samples then odd samples, each in natural order.
func TestBuildOffsetsDecimatedBlocks(t *testing.T) {
	off := buildOffsets(16, 8)
	want := []int32{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	for i, w := range want {
		if off[i] != w {
			t.Errorf("offsets[%d] = %d, want %d", i, off[i], w)
		}
	}
}

// TestBuildOffsetsBitReversedBlockStarts checks the n=32/base=8 case,
// where I0=4 base blocks exist and the block-selection bits (not the
// within-block index) are bit-reversed: block order is residues
// 0, 2, 1, 3 (mod 4), matching bitrev_2(0..3) = 0, 2, 1, 3.
func TestBuildOffsetsBitReversedBlockStarts(t *testing.T) {
	off := buildOffsets(32, 8)
	wantStarts := []int32{0, 2, 1, 3}
	for b, start := range wantStarts {
		for m := 0; m < 8; m++ {
			want := start + int32(m*4)
			got := off[b*8+m]
			if got != want {
				t.Errorf("block %d slot %d: offsets = %d, want %d", b, m, got, want)
			}
		}
	}
}
