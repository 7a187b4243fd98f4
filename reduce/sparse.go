package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ Linearizable = (*SparseReduce)(nil)

// SparseReduce aggregates named groups of input rows into output rows.
// Its blocks are consumed in order; within a block, every index row yields
// one output row holding the sum (or mean) of the referenced input rows.
// Width-zero index rows emit all-zero output rows (padding).
type SparseReduce struct {
	blocks  []IndexBlock
	average bool
	maxIdx  int
	outLen  int
}

// NewSparseReduce builds a SparseReduce, inferring the maximum referenced
// input index from blocks. Returns ErrSparseNoIndices when no block
// references any index (use NewSparseReduceMax instead), ErrRaggedBlock or
// ErrBadIndex on malformed blocks.
func NewSparseReduce(blocks []IndexBlock, average bool) (*SparseReduce, error) {
	maxIdx := -1
	for _, b := range blocks {
		if m, ok := b.maxIndex(); ok && m > maxIdx {
			maxIdx = m
		}
	}
	if maxIdx < 0 {
		return nil, ErrSparseNoIndices
	}

	return NewSparseReduceMax(blocks, average, maxIdx)
}

// NewSparseReduceMax builds a SparseReduce with an explicit maximum input
// index, covering blocks made purely of padding rows.
func NewSparseReduceMax(blocks []IndexBlock, average bool, maxIdx int) (*SparseReduce, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}
	if maxIdx < 0 {
		return nil, ErrBadIndex
	}
	outLen := 0
	for _, b := range blocks {
		if err := b.validate(); err != nil {
			return nil, err
		}
		if m, ok := b.maxIndex(); ok && m > maxIdx {
			return nil, fmt.Errorf("%w: block references index %d beyond max %d", ErrBadIndex, m, maxIdx)
		}
		outLen += len(b)
	}

	return &SparseReduce{blocks: blocks, average: average, maxIdx: maxIdx, outLen: outLen}, nil
}

// Average reports whether groups are averaged rather than summed.
func (s *SparseReduce) Average() bool { return s.average }

// MaxIdx returns the largest input-row index the reduction references.
func (s *SparseReduce) MaxIdx() int { return s.maxIdx }

// Blocks returns the index blocks in application order.
func (s *SparseReduce) Blocks() []IndexBlock { return s.blocks }

// Apply gathers and aggregates the grouped rows of m.
// Returns ErrShortInput when m has fewer than MaxIdx()+1 rows.
//
// Complexity: O(Σ group sizes · cols).
func (s *SparseReduce) Apply(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if s.maxIdx+1 > r {
		return nil, fmt.Errorf("%w: need %d rows, have %d", ErrShortInput, s.maxIdx+1, r)
	}

	out := mat.NewDense(s.outLen, c, nil)
	acc := make([]float64, c)
	row := make([]float64, c)
	outRow := 0
	for _, b := range s.blocks {
		for _, group := range b {
			if len(group) == 0 {
				outRow++ // padding row stays zero

				continue
			}
			for j := range acc {
				acc[j] = 0
			}
			for _, idx := range group {
				mat.Row(row, idx, m)
				floats.Add(acc, row)
			}
			if s.average {
				floats.Scale(1/float64(len(group)), acc)
			}
			out.SetRow(outRow, acc)
			outRow++
		}
	}

	return out, nil
}

// NewLen reports the total output row count across all blocks.
// Returns ErrShortInput when originalLen cannot hold the referenced indices.
func (s *SparseReduce) NewLen(originalLen int) (int, error) {
	if s.maxIdx+1 > originalLen {
		return 0, fmt.Errorf("%w: need %d rows, have %d", ErrShortInput, s.maxIdx+1, originalLen)
	}

	return s.outLen, nil
}

// LinMap builds the explicit 0/weight matrix of the reduction: entry
// (outputRow, inputRow) is 1/groupSize when averaging (1 when summing) for
// every input row referenced by that output row's group.
// Returns ErrShapeMismatch unless inputLen equals MaxIdx()+1.
func (s *SparseReduce) LinMap(inputLen int) (*mat.Dense, error) {
	if inputLen != s.maxIdx+1 {
		return nil, fmt.Errorf("%w: linear map requires input length %d, got %d", ErrShapeMismatch, s.maxIdx+1, inputLen)
	}

	lm := mat.NewDense(s.outLen, inputLen, nil)
	outRow := 0
	for _, b := range s.blocks {
		for _, group := range b {
			w := 1.0
			if s.average && len(group) > 0 {
				w = 1 / float64(len(group))
			}
			for _, idx := range group {
				lm.Set(outRow, idx, w)
			}
			outRow++
		}
	}

	return lm, nil
}
