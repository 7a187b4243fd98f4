package reduce

import "gonum.org/v1/gonum/mat"

// Compile-time interface conformance checks.
var (
	_ Linearizable = Identity{}
	_ Reducer      = NoReduce{}
	_ Linearizable = Sum{}
	_ Linearizable = Mean{}
)

// Identity passes the input through unchanged.
type Identity struct{}

// Apply returns an independent copy of m.
//
// Complexity: O(rows·cols).
func (Identity) Apply(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return mat.DenseCopyOf(m), nil
}

// NewLen reports the unchanged row count.
func (Identity) NewLen(originalLen int) (int, error) {
	return originalLen, nil
}

// LinMap returns the inputLen×inputLen identity matrix.
func (Identity) LinMap(inputLen int) (*mat.Dense, error) {
	if inputLen < 1 {
		return nil, ErrEmptyInput
	}
	eye := mat.NewDense(inputLen, inputLen, nil)
	for i := 0; i < inputLen; i++ {
		eye.Set(i, i, 1)
	}

	return eye, nil
}

// NoReduce is the structural placeholder meaning "do not aggregate".
// It behaves like Identity under Apply and NewLen, but signals intent:
// a combination vector carrying NoReduce concatenates its members instead
// of folding them.
type NoReduce struct{}

// Apply returns an independent copy of m.
func (NoReduce) Apply(m mat.Matrix) (*mat.Dense, error) {
	return Identity{}.Apply(m)
}

// NewLen reports the unchanged row count.
func (NoReduce) NewLen(originalLen int) (int, error) {
	return originalLen, nil
}

// Sum folds every row of the input into a single row of column sums.
type Sum struct{}

// Apply returns the 1×cols matrix of column sums.
//
// Complexity: O(rows·cols).
func (Sum) Apply(m mat.Matrix) (*mat.Dense, error) {
	return foldRows(m, false)
}

// NewLen reports 1 for any non-empty input.
func (Sum) NewLen(originalLen int) (int, error) {
	if originalLen < 1 {
		return 0, ErrEmptyInput
	}

	return 1, nil
}

// LinMap returns the 1×inputLen all-ones row.
func (Sum) LinMap(inputLen int) (*mat.Dense, error) {
	return foldMap(inputLen, false)
}

// Mean folds every row of the input into a single row of column means.
type Mean struct{}

// Apply returns the 1×cols matrix of column means.
//
// Complexity: O(rows·cols).
func (Mean) Apply(m mat.Matrix) (*mat.Dense, error) {
	return foldRows(m, true)
}

// NewLen reports 1 for any non-empty input.
func (Mean) NewLen(originalLen int) (int, error) {
	if originalLen < 1 {
		return 0, ErrEmptyInput
	}

	return 1, nil
}

// LinMap returns the 1×inputLen row with every entry 1/inputLen.
func (Mean) LinMap(inputLen int) (*mat.Dense, error) {
	return foldMap(inputLen, true)
}

// foldRows sums (or averages) all rows of m into one output row.
func foldRows(m mat.Matrix, average bool) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyInput
	}

	acc := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc[j] += m.At(i, j)
		}
	}
	if average {
		inv := 1 / float64(r)
		for j := range acc {
			acc[j] *= inv
		}
	}

	return mat.NewDense(1, c, acc), nil
}

// foldMap builds the 1×inputLen linear form of Sum/Mean.
func foldMap(inputLen int, average bool) (*mat.Dense, error) {
	if inputLen < 1 {
		return nil, ErrEmptyInput
	}
	w := 1.0
	if average {
		w = 1 / float64(inputLen)
	}
	row := make([]float64, inputLen)
	for j := range row {
		row[j] = w
	}

	return mat.NewDense(1, inputLen, row), nil
}
