// Package sequence provides a validated DNA sequence type.
//
// A Sequence holds an ordered run of bases over the strict {A, C, G, T}
// alphabet. Validation happens once at construction; everything downstream
// (similarity scoring, alignment, classification) treats the bases as
// read-only and assumes they are already valid.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence represents a validated, immutable DNA sequence.
//
// The zero-length sequence is legal: screening still produces a defined
// result for it, it just degrades the alignment semantics.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a sequence from raw bases. Input is uppercased before
// validation, so user-typed lowercase input is accepted.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(strings.TrimSpace(bases))

	if err := ValidateDNA(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// WithID creates a sequence carrying an identifier.
func WithID(bases, id string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a sequence carrying an identifier and description,
// typically from a FASTA header.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// BaseCounts holds per-base counts for a sequence.
type BaseCounts struct {
	A int
	C int
	G int
	T int
}

// BaseCounts returns the count of each base.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}

	for _, b := range s.Bases {
		switch b {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		}
	}

	return counts
}

// Total returns the total count of all bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T
}

// GCContent returns the proportion of G and C bases, in [0,1].
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	gc := 0
	for _, b := range s.Bases {
		if b == 'G' || b == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(s.Bases))
}

// ATContent returns the proportion of A and T bases, in [0,1].
func (s *Sequence) ATContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	at := 0
	for _, b := range s.Bases {
		if b == 'A' || b == 'T' {
			at++
		}
	}

	return float64(at) / float64(len(s.Bases))
}

func complementBase(c rune) rune {
	switch c {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	default:
		return 'C'
	}
}

// Complement returns the base-wise complement (A<->T, C<->G).
func (s *Sequence) Complement() *Sequence {
	comp := make([]rune, len(s.Bases))
	for i, b := range s.Bases {
		comp[i] = complementBase(b)
	}

	return &Sequence{
		Bases:       string(comp),
		ID:          s.ID,
		Description: s.Description,
	}
}

// Reverse returns the sequence reversed.
func (s *Sequence) Reverse() *Sequence {
	runes := []rune(s.Bases)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		runes[i], runes[n-1-i] = runes[n-1-i], runes[i]
	}

	return &Sequence{
		Bases:       string(runes),
		ID:          s.ID,
		Description: s.Description,
	}
}

// ReverseComplement returns the reverse complement.
func (s *Sequence) ReverseComplement() *Sequence {
	return s.Complement().Reverse()
}

// ToFASTA renders the sequence in FASTA format with 80-column wrapping.
func (s *Sequence) ToFASTA() string {
	header := ">sequence"
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')

	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteRune('\n')
	}

	return sb.String()
}

// String returns the bases, prefixed by the FASTA header when an ID is set.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal checks equality of bases with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases
}
