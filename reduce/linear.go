package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var _ Linearizable = (*LinearReduce)(nil)

// LinearReduce applies a reduction given directly as a matrix: Apply is the
// literal left-multiplication of the input by the stored matrix.
type LinearReduce struct {
	m    *mat.Dense
	rows int
	cols int
}

// NewLinearReduce builds a LinearReduce from its matrix form. The matrix is
// copied; later mutation of m does not affect the reduction.
func NewLinearReduce(m mat.Matrix) (*LinearReduce, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyInput
	}

	return &LinearReduce{m: mat.DenseCopyOf(m), rows: r, cols: c}, nil
}

// Matrix returns a copy of the stored matrix form.
func (l *LinearReduce) Matrix() *mat.Dense { return mat.DenseCopyOf(l.m) }

// Apply left-multiplies m by the stored matrix.
// Returns ErrShapeMismatch unless rows(m) equals the stored column count.
//
// Complexity: O(out·rows·cols) dense multiplication.
func (l *LinearReduce) Apply(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, _ := m.Dims()
	if r != l.cols {
		return nil, fmt.Errorf("%w: linear reduce takes %d rows, got %d", ErrShapeMismatch, l.cols, r)
	}

	var out mat.Dense
	out.Mul(l.m, m)

	return &out, nil
}

// NewLen reports the stored matrix's row count.
func (l *LinearReduce) NewLen(originalLen int) (int, error) {
	if originalLen != l.cols {
		return 0, fmt.Errorf("%w: linear reduce takes %d rows, got %d", ErrShapeMismatch, l.cols, originalLen)
	}

	return l.rows, nil
}

// LinMap returns the stored matrix form.
func (l *LinearReduce) LinMap(inputLen int) (*mat.Dense, error) {
	if inputLen != l.cols {
		return nil, fmt.Errorf("%w: linear reduce takes %d rows, got %d", ErrShapeMismatch, l.cols, inputLen)
	}

	return l.Matrix(), nil
}
