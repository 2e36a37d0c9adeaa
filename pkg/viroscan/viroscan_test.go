package viroscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.fna")
	require.NoError(t, os.WriteFile(path,
		[]byte(">ref polyomavirus fragment\nATGCGTA\nCGTTAGC\n"), 0o644))

	ref, err := LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, "ATGCGTACGTTAGC", ref.Bases)

	query, err := NewSequence("atgcgtacgttagc")
	require.NoError(t, err)

	result := Screen(ref, query, nil)

	assert.Equal(t, 100.0, result.Similarity)
	assert.False(t, result.Infected)
	assert.Equal(t, 14.0, result.Global.Score)
	assert.Equal(t, 14.0, result.Local.Score)
}

func TestFacade(t *testing.T) {
	a, err := NewSequence("ATGC")
	require.NoError(t, err)
	b, err := NewSequence("ATGG")
	require.NoError(t, err)

	t.Run("similarity", func(t *testing.T) {
		assert.InDelta(t, 75.0, Similarity(a, b), 0.001)
	})

	t.Run("classify", func(t *testing.T) {
		assert.True(t, Classify(75.0, DefaultThreshold))
		assert.False(t, Classify(90.0, DefaultThreshold))
	})

	t.Run("align", func(t *testing.T) {
		assert.Equal(t, 3.0, AlignGlobal(a, b, nil).Score)
		assert.Equal(t, 3.0, AlignLocal(a, b, nil).Score)
	})

	t.Run("info", func(t *testing.T) {
		assert.Contains(t, Info(), Version)
	})
}
