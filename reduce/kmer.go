package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The k-mer (n-gram) constructors build sliding-window reductions over a
// sequence of positions: window i covers positions [i, i+k). Each output
// format gets its own constructor, so the choice is a compile-time branch
// rather than a runtime format switch.

// KmerMatrix returns the (seqLength-k+1)×seqLength banded matrix whose row i
// marks positions [i, i+k) with 1 (or 1/k when averaging).
func KmerMatrix(k, seqLength int, average bool) (*mat.Dense, error) {
	if err := validateKmer(k, seqLength); err != nil {
		return nil, err
	}

	w := 1.0
	if average {
		w = 1 / float64(k)
	}
	out := mat.NewDense(seqLength-k+1, seqLength, nil)
	for i := 0; i < seqLength-k+1; i++ {
		for j := i; j < i+k; j++ {
			out.Set(i, j, w)
		}
	}

	return out, nil
}

// KmerLinear wraps the banded k-mer matrix in a LinearReduce.
func KmerLinear(k, seqLength int, average bool) (*LinearReduce, error) {
	m, err := KmerMatrix(k, seqLength, average)
	if err != nil {
		return nil, err
	}

	return NewLinearReduce(m)
}

// KmerIndices returns the sliding windows as an index block: row i holds the
// positions [i, i+k).
func KmerIndices(k, seqLength int) (IndexBlock, error) {
	if err := validateKmer(k, seqLength); err != nil {
		return nil, err
	}

	block := make(IndexBlock, seqLength-k+1)
	for i := range block {
		row := make([]int, k)
		for j := range row {
			row[j] = i + j
		}
		block[i] = row
	}

	return block, nil
}

// KmerSparse wraps the sliding-window index block in a SparseReduce.
func KmerSparse(k, seqLength int, average bool) (*SparseReduce, error) {
	block, err := KmerIndices(k, seqLength)
	if err != nil {
		return nil, err
	}

	return NewSparseReduceMax([]IndexBlock{block}, average, seqLength-1)
}

func validateKmer(k, seqLength int) error {
	if k <= 1 || seqLength <= 1 || seqLength < k {
		return fmt.Errorf("%w: k=%d, seq length=%d", ErrKmerParams, k, seqLength)
	}

	return nil
}
