package rkhsvec

import "github.com/katalvlaran/rkhs/reduce"

// NewCombinationVec builds a deferred element-wise combination of member
// vectors. Members must share one kernel and one length; the combination
// operator is applied to member Gram blocks only when a dot product is
// evaluated. A nil reducer defaults to reduce.NoReduce, meaning "do not
// aggregate, just concatenate".
//
// The combination's size is the reducer's output length for the combined
// member length: the concatenated length under OpAdd, the shared member
// length under OpMul.
func NewCombinationVec(op CombineOp, red reduce.Reducer, members ...*Vec) (*Vec, error) {
	if len(members) == 0 {
		return nil, ErrEmptyCombination
	}
	if op != OpAdd && op != OpMul {
		return nil, ErrBadOp
	}
	if red == nil {
		red = reduce.NoReduce{}
	}

	first := members[0]
	if first == nil {
		return nil, ErrNilVec
	}
	norm := make([]*Vec, len(members))
	for i, m := range members {
		if m == nil {
			return nil, ErrNilVec
		}
		if !m.k.Equal(first.k) {
			return nil, ErrKernelMismatch
		}
		if m.Size() != first.Size() {
			return nil, ErrSizeMismatch
		}
		// Members are stored column-oriented; orientation is a property of
		// the combination itself.
		col := *m
		col.transposed = false
		norm[i] = &col
	}

	v := &Vec{members: norm, op: op, k: first.k, red: red}
	size, err := red.NewLen(v.baseLen())
	if err != nil {
		return nil, err
	}
	v.size = size

	return v, nil
}

// NewSumVec builds the deferred element-wise sum of members.
func NewSumVec(members ...*Vec) (*Vec, error) {
	return NewCombinationVec(OpAdd, nil, members...)
}

// NewProductVec builds the deferred element-wise product of members.
func NewProductVec(members ...*Vec) (*Vec, error) {
	return NewCombinationVec(OpMul, nil, members...)
}
