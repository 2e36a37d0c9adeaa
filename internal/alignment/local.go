package alignment

import (
	"github.com/viroscan/viroscan-go/internal/sequence"
)

// SmithWaterman performs local alignment: the best-scoring contiguous
// substrings of the two sequences are aligned, flanking regions are left
// out of the pair entirely. A nil scheme uses DefaultScheme.
//
// The anchor cell is the first matrix maximum in row-major order, and the
// traceback stops at the first zero-valued cell; see the package comment
// for the tie-break policy. Empty input (or no positively scoring region
// at all) yields an empty pair with score 0.
func SmithWaterman(a, b *sequence.Sequence, scheme *Scheme) *AlignedPair {
	if scheme == nil {
		scheme = DefaultScheme()
	}

	m, n := a.Len(), b.Len()
	s1, s2 := a.Bases, b.Bases
	gap := scheme.Gap()

	mx := newDPMatrix(m, n)

	var maxScore float64
	maxI, maxJ := 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := mx.score[mx.idx(i-1, j-1)] + scheme.Score(s1[i-1], s2[j-1])
			up := mx.score[mx.idx(i-1, j)] + gap
			left := mx.score[mx.idx(i, j-1)] + gap

			// floored at zero; strict comparisons keep diag > up > left
			best, dir := 0.0, dirStop
			if diag > best {
				best, dir = diag, dirDiag
			}
			if up > best {
				best, dir = up, dirUp
			}
			if left > best {
				best, dir = left, dirLeft
			}

			mx.score[mx.idx(i, j)] = best
			mx.dir[mx.idx(i, j)] = dir

			// strictly greater keeps the first row-major maximum
			if best > maxScore {
				maxScore = best
				maxI, maxJ = i, j
			}
		}
	}

	aligned1, aligned2, start1, start2 := tracebackLocal(s1, s2, mx, maxI, maxJ)

	pair, _ := NewAlignedPairWithOffsets(aligned1, aligned2, maxScore,
		start1, maxI, start2, maxJ, Local)
	return pair
}

// tracebackLocal walks the direction arena from the anchor cell back to
// the first zero cell, returning the aligned substrings and where they
// start in the originals.
func tracebackLocal(s1, s2 string, mx *dpMatrix, anchorI, anchorJ int) (string, string, int, int) {
	a1 := make([]byte, 0, anchorI+anchorJ)
	a2 := make([]byte, 0, anchorI+anchorJ)

	i, j := anchorI, anchorJ
	for i > 0 && j > 0 {
		d := mx.dir[mx.idx(i, j)]
		if d == dirStop {
			break
		}

		switch d {
		case dirDiag:
			a1 = append(a1, s1[i-1])
			a2 = append(a2, s2[j-1])
			i--
			j--
		case dirUp:
			a1 = append(a1, s1[i-1])
			a2 = append(a2, Gap)
			i--
		case dirLeft:
			a1 = append(a1, Gap)
			a2 = append(a2, s2[j-1])
			j--
		}
	}

	return string(reverseBytes(a1)), string(reverseBytes(a2)), i, j
}
