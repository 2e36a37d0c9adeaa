package alignment

// direction encodes one traceback move through the score matrix.
type direction byte

const (
	// dirStop marks the end of a local alignment (a zero-valued cell)
	dirStop direction = iota
	// dirDiag consumes a base from both sequences (match or mismatch)
	dirDiag
	// dirUp consumes a base from the first sequence against a gap
	dirUp
	// dirLeft consumes a base from the second sequence against a gap
	dirLeft
)

// dpMatrix is the (m+1) x (n+1) dynamic-programming arena. Scores and
// traceback directions live in flat slices indexed i*cols+j so a long
// genomic comparison stays cache-friendly and allocates exactly twice.
type dpMatrix struct {
	rows, cols int
	score      []float64
	dir        []direction
}

func newDPMatrix(m, n int) *dpMatrix {
	rows, cols := m+1, n+1
	return &dpMatrix{
		rows:  rows,
		cols:  cols,
		score: make([]float64, rows*cols),
		dir:   make([]direction, rows*cols),
	}
}

func (d *dpMatrix) idx(i, j int) int {
	return i*d.cols + j
}

func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
