package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

var _ Kernel = (*RBF)(nil)

// RBF is the squared-exponential (Gaussian) kernel
// k(x,y) = σ²·exp(−‖x−y‖² / (2ℓ²)), the default covariance of the library.
type RBF struct {
	variance    float64
	lengthscale float64
}

// NewRBF builds an RBF kernel with the given variance σ² and lengthscale ℓ.
// Returns ErrKernelParam unless both are strictly positive.
func NewRBF(variance, lengthscale float64) (*RBF, error) {
	if err := validateParams(variance, lengthscale); err != nil {
		return nil, err
	}

	return &RBF{variance: variance, lengthscale: lengthscale}, nil
}

// Variance returns σ².
func (k *RBF) Variance() float64 { return k.variance }

// Lengthscale returns ℓ.
func (k *RBF) Lengthscale() float64 { return k.lengthscale }

// CrossCovariance returns the rows(a)×rows(b) Gram matrix.
//
// Complexity: O(rows(a)·rows(b)·dim).
func (k *RBF) CrossCovariance(a, b mat.Matrix) (*mat.Dense, error) {
	inv := 1 / (2 * k.lengthscale * k.lengthscale)

	return pointwise(a, b, func(x, y []float64) float64 {
		d := euclidean(x, y)

		return k.variance * math.Exp(-d*d*inv)
	})
}

// Equal reports parameter-wise equality with another RBF kernel.
func (k *RBF) Equal(other Kernel) bool {
	o, ok := other.(*RBF)

	return ok && o.variance == k.variance && o.lengthscale == k.lengthscale
}

// InitParams exposes the trainable hyperparameters for initialisation.
func (k *RBF) InitParams() map[string]float64 {
	return map[string]float64{"variance": k.variance, "lengthscale": k.lengthscale}
}
