package rkhsvec

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/reduce"
)

// Dot computes the matrix of RKHS inner products between every element of
// the row vector a and every element of the column vector b.
//
// Contracts:
//   - a must be a row vector and b a column vector (ErrOrientation —
//     row·row and column·column never return a wrong-shaped result).
//   - Both vectors must share one kernel (ErrKernelMismatch).
//
// The kernel's raw Gram matrix between the two point sets is computed once;
// b's pending reduction is applied to the transposed Gram, the result is
// transposed back, and a's pending reduction is applied.
//
// Complexity: one cross-covariance of the two point sets plus two
// reduction applications.
func Dot(a, b *Vec) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilVec
	}
	if !a.IsRowVec() || !b.IsColVec() {
		return nil, ErrOrientation
	}
	if !a.k.Equal(b.k) {
		return nil, ErrKernelMismatch
	}

	return rowGram(a, b)
}

// Tensor computes the outer product of the column vector a and the row
// vector b: the summed tensor-product vector Σᵢ aᵢ⊗bᵢ, represented lazily
// as a ProductVec with a Sum reduction. Requires equal sizes and kernels.
func Tensor(a, b *Vec) (*Vec, error) {
	if a == nil || b == nil {
		return nil, ErrNilVec
	}
	if !a.IsColVec() || !b.IsRowVec() {
		return nil, ErrOrientation
	}
	if a.Size() != b.Size() {
		return nil, ErrSizeMismatch
	}

	return NewCombinationVec(OpMul, reduce.Sum{}, a, b)
}

// Sum returns a vector whose single element is the sum of v's elements,
// realized by chaining a Sum reduction in front of the pending one.
func (v *Vec) Sum() (*Vec, error) {
	return PreReduce(reduce.Sum{}, v)
}

// Mean returns a vector whose single element is the mean of v's elements.
func (v *Vec) Mean() (*Vec, error) {
	return PreReduce(reduce.Mean{}, v)
}

// Add returns the deferred element-wise sum of v and other.
func (v *Vec) Add(other *Vec) (*Vec, error) {
	if other == nil {
		return nil, ErrNilVec
	}

	return NewSumVec(v, other)
}

// Mul returns the deferred element-wise product of v and other.
func (v *Vec) Mul(other *Vec) (*Vec, error) {
	if other == nil {
		return nil, ErrNilVec
	}

	return NewProductVec(v, other)
}

// PreReduce chains r in front of v's pending reduction, leaving inspection
// points and kernel untouched: the returned vector aggregates v's elements
// through r.
func PreReduce(r reduce.Reducer, v *Vec) (*Vec, error) {
	if v == nil {
		return nil, ErrNilVec
	}
	if r == nil {
		return nil, reduce.ErrNilReducer
	}
	chained, err := reduce.Compose(r, v.red)
	if err != nil {
		return nil, err
	}

	return v.withReducer(chained)
}
