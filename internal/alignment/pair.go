package alignment

import (
	"fmt"
	"strings"
)

// AlignmentType distinguishes global from local alignments.
type AlignmentType int

const (
	// Local is a Smith-Waterman alignment of the best-scoring substrings
	Local AlignmentType = iota
	// Global is a Needleman-Wunsch alignment of both full sequences
	Global
)

func (t AlignmentType) String() string {
	switch t {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// AlignedPair is the result of one alignment: two equal-length strings
// over {A, C, G, T, -}, the score under the active Scheme, and the
// half-open [Start, End) offsets of the aligned region in each original
// sequence. Global alignments always cover 0..len; local alignments cover
// only the traced substrings.
type AlignedPair struct {
	AlignedSeq1 string
	AlignedSeq2 string
	Score       float64
	Start1      int
	End1        int
	Start2      int
	End2        int
	Type        AlignmentType
	Identity    float64
}

// NewAlignedPair creates a full-coverage aligned pair.
func NewAlignedPair(aligned1, aligned2 string, score float64, alignType AlignmentType) (*AlignedPair, error) {
	return NewAlignedPairWithOffsets(aligned1, aligned2, score, 0, len(aligned1), 0, len(aligned2), alignType)
}

// NewAlignedPairWithOffsets creates an aligned pair with explicit offsets
// into the original sequences.
func NewAlignedPairWithOffsets(aligned1, aligned2 string, score float64,
	start1, end1, start2, end2 int, alignType AlignmentType) (*AlignedPair, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length, got %d and %d",
			len(aligned1), len(aligned2))
	}

	p := &AlignedPair{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Score:       score,
		Start1:      start1,
		End1:        end1,
		Start2:      start2,
		End2:        end2,
		Type:        alignType,
	}
	p.Identity = p.calculateIdentity()
	return p, nil
}

// calculateIdentity returns the fraction of alignment columns that are
// identical bases.
func (p *AlignedPair) calculateIdentity() float64 {
	if len(p.AlignedSeq1) == 0 {
		return 0.0
	}

	matches := 0
	for i := 0; i < len(p.AlignedSeq1); i++ {
		if p.AlignedSeq1[i] == p.AlignedSeq2[i] && p.AlignedSeq1[i] != Gap {
			matches++
		}
	}
	return float64(matches) / float64(len(p.AlignedSeq1))
}

// Length returns the number of alignment columns.
func (p *AlignedPair) Length() int {
	return len(p.AlignedSeq1)
}

// MatchCount returns the number of identical aligned bases.
func (p *AlignedPair) MatchCount() int {
	count := 0
	for i := 0; i < len(p.AlignedSeq1); i++ {
		if p.AlignedSeq1[i] == p.AlignedSeq2[i] && p.AlignedSeq1[i] != Gap {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of differing aligned bases, gaps
// excluded.
func (p *AlignedPair) MismatchCount() int {
	count := 0
	for i := 0; i < len(p.AlignedSeq1); i++ {
		if p.AlignedSeq1[i] != p.AlignedSeq2[i] &&
			p.AlignedSeq1[i] != Gap && p.AlignedSeq2[i] != Gap {
			count++
		}
	}
	return count
}

// GapCount returns the total number of gap positions across both rows.
func (p *AlignedPair) GapCount() int {
	return strings.Count(p.AlignedSeq1, "-") + strings.Count(p.AlignedSeq2, "-")
}

// ToCIGAR renders the alignment as a CIGAR string (M match, X mismatch,
// I insertion in seq2, D deletion from seq1).
func (p *AlignedPair) ToCIGAR() string {
	if len(p.AlignedSeq1) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(p.AlignedSeq1); i++ {
		var op byte
		switch {
		case p.AlignedSeq1[i] == Gap:
			op = 'I'
		case p.AlignedSeq2[i] == Gap:
			op = 'D'
		case p.AlignedSeq1[i] == p.AlignedSeq2[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
		} else {
			if count > 0 {
				fmt.Fprintf(&cigar, "%d%c", count, currentOp)
			}
			currentOp = op
			count = 1
		}
	}

	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}

	return cigar.String()
}

// Format renders the alignment as a three-line block with a match rail
// ('|' identical, '.' mismatch, ' ' gap) followed by the score.
func (p *AlignedPair) Format() string {
	var rail strings.Builder
	for i := 0; i < len(p.AlignedSeq1); i++ {
		switch {
		case p.AlignedSeq1[i] == p.AlignedSeq2[i] && p.AlignedSeq1[i] != Gap:
			rail.WriteByte('|')
		case p.AlignedSeq1[i] == Gap || p.AlignedSeq2[i] == Gap:
			rail.WriteByte(' ')
		default:
			rail.WriteByte('.')
		}
	}

	return fmt.Sprintf("%s\n%s\n%s\n  Score=%.2f",
		p.AlignedSeq1, rail.String(), p.AlignedSeq2, p.Score)
}

func (p *AlignedPair) String() string {
	return fmt.Sprintf("AlignedPair { type: %s, score: %.2f, identity: %.1f%%, length: %d }",
		p.Type, p.Score, p.Identity*100, p.Length())
}
