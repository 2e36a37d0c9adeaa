package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// SequenceRequest carries one raw sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// SequenceInfoResponse summarizes one sequence.
type SequenceInfoResponse struct {
	Length    int     `json:"length"`
	GCContent float64 `json:"gc_content"`
	ATContent float64 `json:"at_content"`
	A         int     `json:"a"`
	C         int     `json:"c"`
	G         int     `json:"g"`
	T         int     `json:"t"`
}

// SequenceInfoHandler handles sequence summary requests.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := viroscan.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	counts := seq.BaseCounts()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SequenceInfoResponse{
		Length:    seq.Len(),
		GCContent: seq.GCContent(),
		ATContent: seq.ATContent(),
		A:         counts.A,
		C:         counts.C,
		G:         counts.G,
		T:         counts.T,
	})
}

// ValidateResponse reports whether a sequence passed validation.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateHandler handles validation requests. Invalid bases are a valid
// question to ask, so the response is 200 either way.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{Valid: true}
	if _, err := viroscan.NewSequence(req.Sequence); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
