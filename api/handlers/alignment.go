package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/viroscan/viroscan-go/pkg/viroscan"
)

// AlignmentRequest is a request to align two sequences. The scoring
// fields are optional; leaving them out selects identity-only scoring.
type AlignmentRequest struct {
	Sequence1 string         `json:"sequence1"`
	Sequence2 string         `json:"sequence2"`
	Scoring   *SchemeRequest `json:"scoring,omitempty"`
}

// SchemeRequest is a custom scoring scheme.
type SchemeRequest struct {
	Match     float64 `json:"match"`
	Mismatch  float64 `json:"mismatch"`
	GapOpen   float64 `json:"gap_open"`
	GapExtend float64 `json:"gap_extend"`
}

// AlignmentResponse is one aligned pair.
type AlignmentResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       float64 `json:"score"`
	Start1      int     `json:"start1"`
	End1        int     `json:"end1"`
	Start2      int     `json:"start2"`
	End2        int     `json:"end2"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
}

func newAlignmentResponse(pair *viroscan.AlignedPair) AlignmentResponse {
	return AlignmentResponse{
		AlignedSeq1: pair.AlignedSeq1,
		AlignedSeq2: pair.AlignedSeq2,
		Score:       pair.Score,
		Start1:      pair.Start1,
		End1:        pair.End1,
		Start2:      pair.Start2,
		End2:        pair.End2,
		Identity:    pair.Identity,
		CIGAR:       pair.ToCIGAR(),
		Matches:     pair.MatchCount(),
		Mismatches:  pair.MismatchCount(),
		Gaps:        pair.GapCount(),
	}
}

func decodeAlignmentRequest(w http.ResponseWriter, r *http.Request) (*viroscan.Sequence, *viroscan.Sequence, *viroscan.Scheme, bool) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return nil, nil, nil, false
	}

	seq1, err := viroscan.NewSequence(req.Sequence1)
	if err != nil {
		http.Error(w, `{"error": "sequence1: `+err.Error()+`"}`, http.StatusBadRequest)
		return nil, nil, nil, false
	}

	seq2, err := viroscan.NewSequence(req.Sequence2)
	if err != nil {
		http.Error(w, `{"error": "sequence2: `+err.Error()+`"}`, http.StatusBadRequest)
		return nil, nil, nil, false
	}

	var scheme *viroscan.Scheme
	if req.Scoring != nil {
		scheme = &viroscan.Scheme{
			Match:     req.Scoring.Match,
			Mismatch:  req.Scoring.Mismatch,
			GapOpen:   req.Scoring.GapOpen,
			GapExtend: req.Scoring.GapExtend,
		}
	}

	return seq1, seq2, scheme, true
}

// GlobalAlignHandler handles Needleman-Wunsch alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, scheme, ok := decodeAlignmentRequest(w, r)
	if !ok {
		return
	}

	pair := viroscan.AlignGlobal(seq1, seq2, scheme)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newAlignmentResponse(pair))
}

// LocalAlignHandler handles Smith-Waterman alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, scheme, ok := decodeAlignmentRequest(w, r)
	if !ok {
		return
	}

	pair := viroscan.AlignLocal(seq1, seq2, scheme)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newAlignmentResponse(pair))
}
