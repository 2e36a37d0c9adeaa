// Package similarity scores how alike two DNA sequences are using
// Ratcliff/Obershelp block matching.
//
// The score is 2*M/T, where M is the total length of all matching blocks
// and T the combined length of both inputs: the longest contiguous
// matching block is found first, then the procedure repeats on the
// unmatched pieces to its left and right. This is not edit distance and
// not position-wise identity; a single transposed run still earns most of
// its length back.
//
// Ties between equally long blocks resolve to the earliest start in the
// first sequence, then the earliest start in the second. The resolution is
// arbitrary but fixed, so repeated runs return identical results.
package similarity

// Percent returns the block-matching similarity of a and b as a
// percentage in [0,100]. Two empty sequences are identical by convention
// and score 100.
func Percent(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100.0
	}

	return 2.0 * float64(matchedTotal(a, b)) / float64(total) * 100.0
}

// Ratio is Percent scaled to [0,1].
func Ratio(a, b string) float64 {
	return Percent(a, b) / 100.0
}

// span is an unmatched region pair still to be searched.
type span struct {
	alo, ahi, blo, bhi int
}

// matchedTotal sums the lengths of all matching blocks. Regions are
// processed from an explicit work stack, so deeply fragmented inputs
// (highly repetitive sequences) cannot blow the call stack.
func matchedTotal(a, b string) int {
	// positions of each base in b, ascending
	b2j := make(map[byte][]int, 4)
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	matched := 0
	stack := []span{{0, len(a), 0, len(b)}}

	for len(stack) > 0 {
		region := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestMatch(a, b2j, region)
		if size == 0 {
			continue
		}
		matched += size

		if region.alo < i && region.blo < j {
			stack = append(stack, span{region.alo, i, region.blo, j})
		}
		if i+size < region.ahi && j+size < region.bhi {
			stack = append(stack, span{i + size, region.ahi, j + size, region.bhi})
		}
	}

	return matched
}

// longestMatch finds the longest block where a[i:i+size] == b[j:j+size]
// within the given region. Scanning i then j in ascending order and only
// accepting strictly longer blocks yields the earliest-start tie-break.
func longestMatch(a string, b2j map[byte][]int, region span) (besti, bestj, bestsize int) {
	besti, bestj = region.alo, region.blo

	// j2len[j] is the length of the match ending at (i-1, j-1)
	j2len := map[int]int{}
	for i := region.alo; i < region.ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < region.blo {
				continue
			}
			if j >= region.bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
