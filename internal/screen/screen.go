// Package screen compares a query sequence against a reference genome and
// classifies the sample.
//
// A sample whose block-matching similarity falls below the threshold is
// reported as infected (significantly diverged from the reference);
// everything at or above the threshold matches the reference closely
// enough to pass.
package screen

import (
	"fmt"
	"strings"

	"github.com/viroscan/viroscan-go/internal/alignment"
	"github.com/viroscan/viroscan-go/internal/sequence"
	"github.com/viroscan/viroscan-go/internal/similarity"
)

// DefaultThreshold is the similarity percentage below which a sample is
// classified as infected.
const DefaultThreshold = 90.0

// Classify reports whether a similarity percentage marks the sample as
// divergent from the reference.
func Classify(similarityPct, threshold float64) bool {
	return similarityPct < threshold
}

// Options tunes one screening run. The zero value is not useful; use
// DefaultOptions or fill in every field.
type Options struct {
	Threshold float64
	Scheme    *alignment.Scheme
}

// DefaultOptions reproduces the calibrated screening behavior: 90%
// threshold, identity-only scoring.
func DefaultOptions() *Options {
	return &Options{
		Threshold: DefaultThreshold,
		Scheme:    alignment.DefaultScheme(),
	}
}

// Result is the aggregate outcome of screening one query against one
// reference.
type Result struct {
	Similarity float64
	Infected   bool
	Threshold  float64
	Global     *alignment.AlignedPair
	Local      *alignment.AlignedPair
}

// Screen runs the full comparison: block similarity, classification, and
// both optimal alignments. It is pure and deterministic; screening the
// same pair twice returns byte-identical results. A nil opts uses
// DefaultOptions.
func Screen(reference, query *sequence.Sequence, opts *Options) *Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	pct := similarity.Percent(reference.Bases, query.Bases)

	return &Result{
		Similarity: pct,
		Infected:   Classify(pct, opts.Threshold),
		Threshold:  opts.Threshold,
		Global:     alignment.NeedlemanWunsch(reference, query, opts.Scheme),
		Local:      alignment.SmithWaterman(reference, query, opts.Scheme),
	}
}

// Status returns the one-line human-readable classification.
func (r *Result) Status() string {
	if r.Infected {
		return "Infected (Significant variation detected)"
	}
	return "Not Infected (Sequence matches reference genome closely)"
}

// Report renders the full console report: similarity, status, and both
// alignments with their scores.
func (r *Result) Report() string {
	var sb strings.Builder

	sb.WriteString("Analysis Results:\n")
	fmt.Fprintf(&sb, "Similarity with reference genome: %.2f%%\n", r.Similarity)
	fmt.Fprintf(&sb, "Status: %s\n", r.Status())

	sb.WriteString("\nGlobal Alignment (Needleman-Wunsch):\n")
	sb.WriteString(r.Global.Format())
	fmt.Fprintf(&sb, "\nGlobal Alignment Score: %.2f\n", r.Global.Score)

	sb.WriteString("\nLocal Alignment (Smith-Waterman):\n")
	sb.WriteString(r.Local.Format())
	fmt.Fprintf(&sb, "\nLocal Alignment Score: %.2f\n", r.Local.Score)

	return sb.String()
}
