// Package viroscan provides a high-level API for screening DNA samples
// against a reference genome.
//
// Example usage:
//
//	ref, err := viroscan.LoadReference("cancer_lung.fna")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	query, err := viroscan.NewSequence("ATGCGTACGTTAGC")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := viroscan.Screen(ref, query, nil)
//	fmt.Println(result.Report())
package viroscan

import (
	"io"

	"github.com/viroscan/viroscan-go/internal/alignment"
	"github.com/viroscan/viroscan-go/internal/fasta"
	"github.com/viroscan/viroscan-go/internal/screen"
	"github.com/viroscan/viroscan-go/internal/sequence"
	"github.com/viroscan/viroscan-go/internal/similarity"
)

// Version of the viroscan toolkit.
const Version = "0.1.0"

// Re-export types for convenience
type (
	Sequence      = sequence.Sequence
	AlignedPair   = alignment.AlignedPair
	Scheme        = alignment.Scheme
	Result        = screen.Result
	ScreenOptions = screen.Options
)

// DefaultThreshold is the similarity percentage below which a sample is
// classified as infected.
const DefaultThreshold = screen.DefaultThreshold

// Info returns a version banner.
func Info() string {
	return "viroscan " + Version
}

// NewSequence creates a validated DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a validated DNA sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(path string) ([]*Sequence, error) {
	return fasta.Read(path)
}

// ParseFASTA parses FASTA records from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	return fasta.Parse(r)
}

// LoadReference loads a reference genome file as one sequence.
func LoadReference(path string) (*Sequence, error) {
	return fasta.LoadReference(path)
}

// Similarity returns the block-matching similarity of two sequences as a
// percentage in [0,100].
func Similarity(a, b *Sequence) float64 {
	return similarity.Percent(a.Bases, b.Bases)
}

// Classify reports whether a similarity percentage marks the sample as
// divergent from the reference.
func Classify(similarityPct, threshold float64) bool {
	return screen.Classify(similarityPct, threshold)
}

// AlignGlobal performs Needleman-Wunsch global alignment. A nil scheme
// uses DefaultScheme.
func AlignGlobal(a, b *Sequence, scheme *Scheme) *AlignedPair {
	return alignment.NeedlemanWunsch(a, b, scheme)
}

// AlignLocal performs Smith-Waterman local alignment. A nil scheme uses
// DefaultScheme.
func AlignLocal(a, b *Sequence, scheme *Scheme) *AlignedPair {
	return alignment.SmithWaterman(a, b, scheme)
}

// DefaultScheme returns the identity-only scoring scheme.
func DefaultScheme() *Scheme {
	return alignment.DefaultScheme()
}

// Screen runs the full comparison of a query against a reference. A nil
// opts uses the calibrated defaults.
func Screen(reference, query *Sequence, opts *ScreenOptions) *Result {
	return screen.Screen(reference, query, opts)
}
