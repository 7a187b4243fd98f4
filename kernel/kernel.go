package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kernel is the collaborator contract of the RKHS algebra: a positive
// definite covariance function over point sets.
type Kernel interface {
	// CrossCovariance returns the Gram matrix between the rows of a and the
	// rows of b: rows(a)×rows(b), entry (i,j) = k(a_i, b_j).
	CrossCovariance(a, b mat.Matrix) (*mat.Dense, error)

	// Equal reports whether other denotes the same covariance function with
	// identical parameters. Vectors interoperate only over equal kernels.
	Equal(other Kernel) bool
}

// pointwise fills the Gram matrix from a scalar covariance of two points.
func pointwise(a, b mat.Matrix, k func(x, y []float64) float64) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilPoints
	}
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != cb {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimMismatch, ca, cb)
	}

	out := mat.NewDense(ra, rb, nil)
	x := make([]float64, ca)
	y := make([]float64, cb)
	for i := 0; i < ra; i++ {
		mat.Row(x, i, a)
		for j := 0; j < rb; j++ {
			mat.Row(y, j, b)
			out.Set(i, j, k(x, y))
		}
	}

	return out, nil
}

// euclidean computes ‖x−y‖ with scaled accumulation to avoid overflow and
// underflow in the squares. Assumes equal lengths.
func euclidean(x, y []float64) float64 {
	scale := 0.0
	sumSquares := 1.0
	for i, xi := range x {
		v := xi - y[i]
		if v == 0 {
			continue
		}
		absv := math.Abs(v)
		if scale < absv {
			sumSquares = 1 + sumSquares*(scale/absv)*(scale/absv)
			scale = absv
		} else {
			sumSquares += (absv / scale) * (absv / scale)
		}
	}

	return scale * math.Sqrt(sumSquares)
}

func validateParams(variance, lengthscale float64) error {
	if variance <= 0 || lengthscale <= 0 {
		return fmt.Errorf("%w: variance=%g, lengthscale=%g", ErrKernelParam, variance, lengthscale)
	}

	return nil
}
