package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScreenHandler(t *testing.T) {
	t.Run("matching sample", func(t *testing.T) {
		rec := post(t, ScreenHandler,
			`{"reference": "ATGCGTACGTTAGC", "query": "ATGCGTACGTTAGC"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ScreenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.Equal(t, 100.0, resp.Similarity)
		assert.False(t, resp.Infected)
		assert.Equal(t, 90.0, resp.Threshold)
		assert.Equal(t, 14.0, resp.Global.Score)
		assert.Equal(t, "14M", resp.Global.CIGAR)
	})

	t.Run("divergent sample", func(t *testing.T) {
		rec := post(t, ScreenHandler,
			`{"reference": "ATGCGTACGTTAGC", "query": "TTTT"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ScreenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Infected)
	})

	t.Run("custom threshold", func(t *testing.T) {
		rec := post(t, ScreenHandler,
			`{"reference": "ATGCATGC", "query": "ATGCATGG", "threshold": 80}`)

		var resp ScreenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.InDelta(t, 87.5, resp.Similarity, 0.001)
		assert.False(t, resp.Infected)
	})

	t.Run("invalid base rejected", func(t *testing.T) {
		rec := post(t, ScreenHandler,
			`{"reference": "ATGC", "query": "ATXC"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "query")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(t, ScreenHandler, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSimilarityHandler(t *testing.T) {
	rec := post(t, SimilarityHandler,
		`{"sequence1": "ATGC", "sequence2": "ATGG"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimilarityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 75.0, resp.Similarity, 0.001)
}

func TestGlobalAlignHandler(t *testing.T) {
	t.Run("default scoring", func(t *testing.T) {
		rec := post(t, GlobalAlignHandler,
			`{"sequence1": "ATGC", "sequence2": "ATGG"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AlignmentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.Equal(t, 3.0, resp.Score)
		assert.Equal(t, "ATGC", resp.AlignedSeq1)
		assert.Equal(t, "ATGG", resp.AlignedSeq2)
		assert.Equal(t, 3, resp.Matches)
		assert.Equal(t, 1, resp.Mismatches)
	})

	t.Run("custom scoring", func(t *testing.T) {
		rec := post(t, GlobalAlignHandler,
			`{"sequence1": "ATGC", "sequence2": "AGC",
			  "scoring": {"match": 1, "mismatch": -2, "gap_open": -1}}`)

		var resp AlignmentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2.0, resp.Score)
		assert.Equal(t, "A-GC", resp.AlignedSeq2)
	})
}

func TestLocalAlignHandler(t *testing.T) {
	rec := post(t, LocalAlignHandler,
		`{"sequence1": "AAATGCAAA", "sequence2": "TGC"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AlignmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, 3.0, resp.Score)
	assert.Equal(t, "TGC", resp.AlignedSeq1)
	assert.Equal(t, 3, resp.Start1)
	assert.Equal(t, 6, resp.End1)
}

func TestSequenceInfoHandler(t *testing.T) {
	rec := post(t, SequenceInfoHandler, `{"sequence": "AATGCGC"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SequenceInfoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, 7, resp.Length)
	assert.Equal(t, 2, resp.A)
	assert.Equal(t, 1, resp.T)
	assert.InDelta(t, 4.0/7.0, resp.GCContent, 0.0001)
}

func TestValidateHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rec := post(t, ValidateHandler, `{"sequence": "atgc"}`)

		var resp ValidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Valid)
	})

	t.Run("invalid is still 200", func(t *testing.T) {
		rec := post(t, ValidateHandler, `{"sequence": "ATZC"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ValidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Error, "position 2")
	})
}
