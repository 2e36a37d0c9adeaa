package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiRecord = `>seq1 first record
ATGC
GTAC
>seq2
TTAA
`

func TestParse(t *testing.T) {
	t.Run("multiple records", func(t *testing.T) {
		sequences, err := Parse(strings.NewReader(multiRecord))
		require.NoError(t, err)
		require.Len(t, sequences, 2)

		assert.Equal(t, "seq1", sequences[0].ID)
		assert.Equal(t, "first record", sequences[0].Description)
		assert.Equal(t, "ATGCGTAC", sequences[0].Bases)

		assert.Equal(t, "seq2", sequences[1].ID)
		assert.Equal(t, "TTAA", sequences[1].Bases)
	})

	t.Run("blank lines ignored", func(t *testing.T) {
		sequences, err := Parse(strings.NewReader(">s\n\nAT\n\nGC\n"))
		require.NoError(t, err)
		require.Len(t, sequences, 1)
		assert.Equal(t, "ATGC", sequences[0].Bases)
	})

	t.Run("invalid base surfaces", func(t *testing.T) {
		_, err := Parse(strings.NewReader(">s\nATXC\n"))
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		sequences, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, sequences)
	})
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ref.fna")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReference(t *testing.T) {
	t.Run("concatenates everything below headers", func(t *testing.T) {
		path := writeTemp(t, ">virus genome\nATGC\nGTAC\n>extra record\nTTAA\n")

		ref, err := LoadReference(path)
		require.NoError(t, err)
		assert.Equal(t, "ATGCGTACTTAA", ref.Bases)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReference(filepath.Join(t.TempDir(), "nope.fna"))
		require.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeTemp(t, ">virus genome\n")

		_, err := LoadReference(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no sequence data")
	})

	t.Run("invalid base surfaces", func(t *testing.T) {
		path := writeTemp(t, ">virus\nATNC\n")

		_, err := LoadReference(path)
		require.Error(t, err)
	})
}

func TestRead(t *testing.T) {
	path := writeTemp(t, multiRecord)

	sequences, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, sequences, 2)
}
