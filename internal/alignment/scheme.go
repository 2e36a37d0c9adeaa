// Package alignment implements deterministic pairwise DNA alignment:
// Needleman-Wunsch global alignment and Smith-Waterman local alignment.
//
// Both algorithms can admit several equally optimal alignments. To keep
// results byte-for-byte reproducible the package follows a fixed tie-break
// policy: when filling and tracing the score matrix a diagonal move wins
// over up, and up wins over left; the local alignment anchor is the first
// maximum cell in row-major (top-to-bottom, left-to-right) scan order.
// Alternate orders are equally optimal but yield different alignments.
package alignment

import "fmt"

// Gap is the placeholder aligned against a real base.
const Gap = '-'

// Scheme holds the scoring parameters for alignment. It is a value
// object: construct it once and pass it into the alignment calls.
type Scheme struct {
	Match     float64
	Mismatch  float64
	GapOpen   float64
	GapExtend float64
}

// DefaultScheme returns identity-only scoring: a match rewards 1 while
// mismatches and gaps are free. Unusual for biological work, but it is the
// scoring the screening threshold was calibrated against; pass a custom
// Scheme when a penalized alignment is wanted.
func DefaultScheme() *Scheme {
	return &Scheme{Match: 1}
}

// BLASTLike returns a BLAST-flavored penalized scheme.
func BLASTLike() *Scheme {
	return &Scheme{Match: 1, Mismatch: -3, GapOpen: -5, GapExtend: -2}
}

// Score returns the score for aligning two bases against each other.
func (s *Scheme) Score(x, y byte) float64 {
	if x == y {
		return s.Match
	}
	return s.Mismatch
}

// Gap returns the per-position gap score. Gaps are scored linearly:
// GapExtend is carried for affine-style presets, but both aligners charge
// GapOpen for every gapped position.
func (s *Scheme) Gap() float64 {
	return s.GapOpen
}

func (s *Scheme) String() string {
	return fmt.Sprintf("Scheme { match: %g, mismatch: %g, gap_open: %g, gap_extend: %g }",
		s.Match, s.Mismatch, s.GapOpen, s.GapExtend)
}
