package kernel

import "errors"

var (
	// ErrNilPoints indicates a nil point-set matrix.
	ErrNilPoints = errors.New("kernel: point sets must be non-nil")
	// ErrDimMismatch indicates point sets whose point dimensions differ.
	ErrDimMismatch = errors.New("kernel: point dimensions do not match")
	// ErrKernelParam indicates a non-positive variance or lengthscale.
	ErrKernelParam = errors.New("kernel: variance and lengthscale must be positive")
)
