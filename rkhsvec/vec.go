package rkhsvec

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rkhs/kernel"
	"github.com/katalvlaran/rkhs/reduce"
)

// CombineOp is the element-wise operator of a combination vector.
type CombineOp int

const (
	// OpNone marks a plain (non-combination) vector.
	OpNone CombineOp = iota
	// OpAdd combines members by element-wise addition.
	OpAdd
	// OpMul combines members by element-wise multiplication.
	OpMul
)

// Vec is a lazy RKHS vector: inspection points embedded by a kernel, with a
// pending reduction that is only applied when a dot product is evaluated.
//
// A Vec is either plain (backed by a matrix of atoms, one point per row) or
// a combination (backed by member vectors and an element-wise operator).
// Both forms are immutable after construction.
type Vec struct {
	atoms      *mat.Dense // plain vectors only
	members    []*Vec     // combination vectors only
	op         CombineOp
	k          kernel.Kernel
	red        reduce.Reducer
	transposed bool
	size       int
}

// NewVec builds a column vector of the kernel embeddings of atoms (one
// inspection point per row) with the identity reduction pending.
func NewVec(atoms mat.Matrix, k kernel.Kernel) (*Vec, error) {
	return NewVecReduced(atoms, k, reduce.Identity{})
}

// NewVecReduced builds a column vector with an explicit pending reduction.
// The reduction's output length for the given point count becomes the
// vector's size; incompatible combinations fail here, not later.
func NewVecReduced(atoms mat.Matrix, k kernel.Kernel, r reduce.Reducer) (*Vec, error) {
	if atoms == nil {
		return nil, ErrNilPoints
	}
	if k == nil {
		return nil, ErrNilKernel
	}
	if r == nil {
		return nil, reduce.ErrNilReducer
	}
	n, _ := atoms.Dims()
	if n == 0 {
		return nil, ErrNoPoints
	}
	size, err := r.NewLen(n)
	if err != nil {
		return nil, err
	}

	return &Vec{atoms: mat.DenseCopyOf(atoms), k: k, red: r, size: size}, nil
}

// Kernel returns the vector's kernel.
func (v *Vec) Kernel() kernel.Kernel { return v.k }

// Reducer returns the pending reduction.
func (v *Vec) Reducer() reduce.Reducer { return v.red }

// IsCombination reports whether the vector is a deferred combination.
func (v *Vec) IsCombination() bool { return v.members != nil }

// Op returns the combination operator (OpNone for a plain vector).
func (v *Vec) Op() CombineOp { return v.op }

// Members returns the combination's member vectors (nil for a plain vector).
func (v *Vec) Members() []*Vec { return v.members }

// Size returns the number of (aggregated) elements of the vector,
// independent of orientation.
func (v *Vec) Size() int { return v.size }

// Len returns the leading dimension: 1 for a row vector, Size otherwise.
func (v *Vec) Len() int {
	if v.transposed {
		return 1
	}

	return v.size
}

// Shape returns (Size,1) for a column vector and (1,Size) for a row vector.
func (v *Vec) Shape() (rows, cols int) {
	if v.transposed {
		return 1, v.size
	}

	return v.size, 1
}

// IsColVec reports column orientation (the default).
func (v *Vec) IsColVec() bool { return !v.transposed }

// IsRowVec reports row orientation.
func (v *Vec) IsRowVec() bool { return v.transposed }

// T returns a new vector with flipped orientation; all other fields are
// shared, not copied.
func (v *Vec) T() *Vec {
	flipped := *v
	flipped.transposed = !v.transposed

	return &flipped
}

// NumPoints returns the raw inspection-point count, before any reduction.
func (v *Vec) NumPoints() int {
	if v.members == nil {
		n, _ := v.atoms.Dims()

		return n
	}
	total := 0
	for _, m := range v.members {
		total += m.NumPoints()
	}

	return total
}

// InspectionPoints returns the raw inspection points: the atom matrix for a
// plain vector, the vertical concatenation of member points for a
// combination.
func (v *Vec) InspectionPoints() (*mat.Dense, error) {
	if v.members == nil {
		return mat.DenseCopyOf(v.atoms), nil
	}
	parts := make([]*mat.Dense, len(v.members))
	for i, m := range v.members {
		p, err := m.InspectionPoints()
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	return vstack(parts)
}

// baseLen returns the element count the pending reduction acts on: the raw
// point count for a plain vector, the combined member length for a
// combination (sum of member sizes under OpAdd, the shared member size
// under OpMul).
func (v *Vec) baseLen() int {
	if v.members == nil {
		n, _ := v.atoms.Dims()

		return n
	}
	if v.op == OpMul {
		return v.members[0].Size()
	}
	total := 0
	for _, m := range v.members {
		total += m.Size()
	}

	return total
}

// withReducer returns a copy of v carrying red, with its size rederived.
func (v *Vec) withReducer(red reduce.Reducer) (*Vec, error) {
	size, err := red.NewLen(v.baseLen())
	if err != nil {
		return nil, err
	}
	next := *v
	next.red = red
	next.size = size

	return &next, nil
}
