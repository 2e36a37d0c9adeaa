// Package handlers implements the JSON endpoints of the viroscan API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// ScreenRequest is a request to screen a query against a reference.
type ScreenRequest struct {
	Reference string   `json:"reference"`
	Query     string   `json:"query"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// ScreenResponse is the outcome of one screening run.
type ScreenResponse struct {
	Similarity float64           `json:"similarity"`
	Infected   bool              `json:"infected"`
	Threshold  float64           `json:"threshold"`
	Global     AlignmentResponse `json:"global"`
	Local      AlignmentResponse `json:"local"`
}

// ScreenHandler handles full screening requests.
func ScreenHandler(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	ref, err := viroscan.NewSequence(req.Reference)
	if err != nil {
		http.Error(w, `{"error": "reference: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	query, err := viroscan.NewSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	opts := &viroscan.ScreenOptions{
		Threshold: viroscan.DefaultThreshold,
		Scheme:    viroscan.DefaultScheme(),
	}
	if req.Threshold != nil {
		opts.Threshold = *req.Threshold
	}

	result := viroscan.Screen(ref, query, opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScreenResponse{
		Similarity: result.Similarity,
		Infected:   result.Infected,
		Threshold:  result.Threshold,
		Global:     newAlignmentResponse(result.Global),
		Local:      newAlignmentResponse(result.Local),
	})
}

// SimilarityRequest is a request to score two sequences.
type SimilarityRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// SimilarityResponse carries the block-matching similarity percentage.
type SimilarityResponse struct {
	Similarity float64 `json:"similarity"`
}

// SimilarityHandler handles similarity scoring requests.
func SimilarityHandler(w http.ResponseWriter, r *http.Request) {
	var req SimilarityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, err := viroscan.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	seq2, err := viroscan.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SimilarityResponse{
		Similarity: viroscan.Similarity(seq1, seq2),
	})
}
