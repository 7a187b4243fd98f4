package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ Kernel = (*Linear)(nil)

// Linear is the dot-product kernel k(x,y) = σ²·⟨x,y⟩.
type Linear struct {
	variance float64
}

// NewLinear builds a Linear kernel with variance σ².
// Returns ErrKernelParam unless σ² is strictly positive.
func NewLinear(variance float64) (*Linear, error) {
	if variance <= 0 {
		return nil, fmt.Errorf("%w: variance=%g", ErrKernelParam, variance)
	}

	return &Linear{variance: variance}, nil
}

// Variance returns σ².
func (k *Linear) Variance() float64 { return k.variance }

// CrossCovariance returns the rows(a)×rows(b) Gram matrix.
func (k *Linear) CrossCovariance(a, b mat.Matrix) (*mat.Dense, error) {
	return pointwise(a, b, func(x, y []float64) float64 {
		return k.variance * floats.Dot(x, y)
	})
}

// Equal reports parameter-wise equality with another Linear kernel.
func (k *Linear) Equal(other Kernel) bool {
	o, ok := other.(*Linear)

	return ok && o.variance == k.variance
}

// InitParams exposes the trainable hyperparameters for initialisation.
func (k *Linear) InitParams() map[string]float64 {
	return map[string]float64{"variance": k.variance}
}
