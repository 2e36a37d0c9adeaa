package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viroscan/viroscan-go/internal/alignment"
	"github.com/viroscan/viroscan-go/internal/sequence"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		threshold  float64
		want       bool
	}{
		{"just below threshold", 89.9, 90.0, true},
		{"exactly at threshold", 90.0, 90.0, false},
		{"perfect match", 100.0, 90.0, false},
		{"zero similarity", 0.0, 90.0, true},
		{"custom threshold", 94.9, 95.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.similarity, tt.threshold))
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 90.0, opts.Threshold)
	assert.Equal(t, alignment.DefaultScheme(), opts.Scheme)
}

func TestScreenMatchingSample(t *testing.T) {
	ref, err := sequence.New("ATGCGTACGTTAGC")
	require.NoError(t, err)
	query, err := sequence.New("ATGCGTACGTTAGC")
	require.NoError(t, err)

	result := Screen(ref, query, nil)

	assert.Equal(t, 100.0, result.Similarity)
	assert.False(t, result.Infected)
	assert.Equal(t, 14.0, result.Global.Score)
	assert.Equal(t, 14.0, result.Local.Score)
	assert.Equal(t, "ATGCGTACGTTAGC", result.Global.AlignedSeq1)
	assert.Equal(t, "ATGCGTACGTTAGC", result.Global.AlignedSeq2)
}

func TestScreenDivergentSample(t *testing.T) {
	ref, err := sequence.New("ATGCGTACGTTAGC")
	require.NoError(t, err)
	query, err := sequence.New("TTTT")
	require.NoError(t, err)

	result := Screen(ref, query, nil)

	assert.Less(t, result.Similarity, 90.0)
	assert.True(t, result.Infected)
}

func TestScreenCustomThreshold(t *testing.T) {
	ref, err := sequence.New("ATGCATGC")
	require.NoError(t, err)
	query, err := sequence.New("ATGCATGG")
	require.NoError(t, err)

	// one substitution out of eight: 2*7/16 = 87.5%
	strict := Screen(ref, query, &Options{Threshold: 90, Scheme: alignment.DefaultScheme()})
	lenient := Screen(ref, query, &Options{Threshold: 80, Scheme: alignment.DefaultScheme()})

	assert.InDelta(t, 87.5, strict.Similarity, 0.001)
	assert.True(t, strict.Infected)
	assert.False(t, lenient.Infected)
}

func TestScreenDeterministic(t *testing.T) {
	ref, err := sequence.New("ATGCGTACGTTAGCATGCGTACGTTAGC")
	require.NoError(t, err)
	query, err := sequence.New("ATGCGTACGTAGC")
	require.NoError(t, err)

	first := Screen(ref, query, nil)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Screen(ref, query, nil))
	}
}

func TestResultStatus(t *testing.T) {
	infected := &Result{Infected: true}
	clean := &Result{Infected: false}

	assert.Contains(t, infected.Status(), "Infected")
	assert.Contains(t, clean.Status(), "Not Infected")
}

func TestResultReport(t *testing.T) {
	ref, err := sequence.New("ATGCGTACGTTAGC")
	require.NoError(t, err)

	result := Screen(ref, ref, nil)
	report := result.Report()

	assert.Contains(t, report, "Similarity with reference genome: 100.00%")
	assert.Contains(t, report, "Status: Not Infected")
	assert.Contains(t, report, "Global Alignment (Needleman-Wunsch):")
	assert.Contains(t, report, "Local Alignment (Smith-Waterman):")
	assert.Contains(t, report, "Global Alignment Score: 14.00")
	assert.Contains(t, report, "Local Alignment Score: 14.00")
}
