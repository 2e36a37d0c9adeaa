package alignment

import (
	"github.com/viroscan/viroscan-go/internal/sequence"
)

// NeedlemanWunsch performs global alignment: both sequences are aligned
// end-to-end, with gaps inserted where needed. A nil scheme uses
// DefaultScheme.
//
// Empty input is a defined result, not an error: aligning an empty
// sequence yields the other sequence fully gapped with a score of its
// length times the gap score.
func NeedlemanWunsch(a, b *sequence.Sequence, scheme *Scheme) *AlignedPair {
	if scheme == nil {
		scheme = DefaultScheme()
	}

	m, n := a.Len(), b.Len()
	s1, s2 := a.Bases, b.Bases
	gap := scheme.Gap()

	mx := newDPMatrix(m, n)

	// Boundary rows accumulate gap scores
	for i := 1; i <= m; i++ {
		mx.score[mx.idx(i, 0)] = float64(i) * gap
		mx.dir[mx.idx(i, 0)] = dirUp
	}
	for j := 1; j <= n; j++ {
		mx.score[mx.idx(0, j)] = float64(j) * gap
		mx.dir[mx.idx(0, j)] = dirLeft
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := mx.score[mx.idx(i-1, j-1)] + scheme.Score(s1[i-1], s2[j-1])
			up := mx.score[mx.idx(i-1, j)] + gap
			left := mx.score[mx.idx(i, j-1)] + gap

			// strict comparisons keep the diag > up > left tie-break
			best, dir := diag, dirDiag
			if up > best {
				best, dir = up, dirUp
			}
			if left > best {
				best, dir = left, dirLeft
			}

			mx.score[mx.idx(i, j)] = best
			mx.dir[mx.idx(i, j)] = dir
		}
	}

	aligned1, aligned2 := tracebackGlobal(s1, s2, mx)

	pair, _ := NewAlignedPairWithOffsets(aligned1, aligned2,
		mx.score[mx.idx(m, n)], 0, m, 0, n, Global)
	return pair
}

// tracebackGlobal walks the direction arena from (m,n) back to (0,0).
func tracebackGlobal(s1, s2 string, mx *dpMatrix) (string, string) {
	maxCols := mx.rows + mx.cols
	a1 := make([]byte, 0, maxCols)
	a2 := make([]byte, 0, maxCols)

	i, j := mx.rows-1, mx.cols-1
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			a1 = append(a1, Gap)
			a2 = append(a2, s2[j-1])
			j--
		case j == 0:
			a1 = append(a1, s1[i-1])
			a2 = append(a2, Gap)
			i--
		default:
			switch mx.dir[mx.idx(i, j)] {
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
	}

	return string(reverseBytes(a1)), string(reverseBytes(a2))
}
