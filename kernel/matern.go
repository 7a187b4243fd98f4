package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

var _ Kernel = (*Matern12)(nil)

// Matern12 is the Matérn kernel with smoothness ν = 1/2 (the exponential
// kernel): k(x,y) = σ²·exp(−‖x−y‖/ℓ). It induces rough, non-differentiable
// sample paths.
type Matern12 struct {
	variance    float64
	lengthscale float64
}

// NewMatern12 builds a Matérn-1/2 kernel.
// Returns ErrKernelParam unless both parameters are strictly positive.
func NewMatern12(variance, lengthscale float64) (*Matern12, error) {
	if err := validateParams(variance, lengthscale); err != nil {
		return nil, err
	}

	return &Matern12{variance: variance, lengthscale: lengthscale}, nil
}

// Variance returns σ².
func (k *Matern12) Variance() float64 { return k.variance }

// Lengthscale returns ℓ.
func (k *Matern12) Lengthscale() float64 { return k.lengthscale }

// CrossCovariance returns the rows(a)×rows(b) Gram matrix.
func (k *Matern12) CrossCovariance(a, b mat.Matrix) (*mat.Dense, error) {
	inv := 1 / k.lengthscale

	return pointwise(a, b, func(x, y []float64) float64 {
		return k.variance * math.Exp(-euclidean(x, y)*inv)
	})
}

// Equal reports parameter-wise equality with another Matérn-1/2 kernel.
func (k *Matern12) Equal(other Kernel) bool {
	o, ok := other.(*Matern12)

	return ok && o.variance == k.variance && o.lengthscale == k.lengthscale
}

// InitParams exposes the trainable hyperparameters for initialisation.
func (k *Matern12) InitParams() map[string]float64 {
	return map[string]float64{"variance": k.variance, "lengthscale": k.lengthscale}
}
