package rkhsvec

import "errors"

var (
	// ErrNilVec indicates a nil vector operand.
	ErrNilVec = errors.New("rkhsvec: vector must be non-nil")
	// ErrNilKernel indicates a vector built without a kernel.
	ErrNilKernel = errors.New("rkhsvec: kernel must be non-nil")
	// ErrNilPoints indicates a vector built without inspection points.
	ErrNilPoints = errors.New("rkhsvec: inspection points must be non-nil")
	// ErrNoPoints indicates an inspection-point matrix with no rows.
	ErrNoPoints = errors.New("rkhsvec: inspection points must contain at least one point")
	// ErrKernelMismatch indicates an operation between vectors of different
	// RKHSs (their kernels are not equal).
	ErrKernelMismatch = errors.New("rkhsvec: kernels do not match")
	// ErrOrientation indicates an operation between vectors whose row/column
	// orientations are incompatible.
	ErrOrientation = errors.New("rkhsvec: incompatible vector orientations")
	// ErrSizeMismatch indicates vectors of different lengths where equal
	// lengths are required.
	ErrSizeMismatch = errors.New("rkhsvec: vector lengths do not match")
	// ErrEmptyCombination indicates a combination built with no members.
	ErrEmptyCombination = errors.New("rkhsvec: combination needs at least one member")
	// ErrSpaceMismatch indicates an inner product between elements of
	// different tensor spaces (e.g. a tensor-product vector against a plain
	// vector, or product combinations of different rank).
	ErrSpaceMismatch = errors.New("rkhsvec: vectors live in different tensor spaces")
	// ErrBadOp indicates an unknown combination operator.
	ErrBadOp = errors.New("rkhsvec: unknown combination operator")
)
