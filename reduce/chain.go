package reduce

import "gonum.org/v1/gonum/mat"

var _ Linearizable = (*Chained)(nil)

// Chained composes an ordered sequence of reductions into one. Members are
// applied LAST to FIRST, so Chain(a, b).Apply(m) equals a.Apply(b.Apply(m)):
// the chain reads like a matrix product a·b·m.
type Chained struct {
	reducers []Reducer
}

// Chain builds a Chained from its members in product order, flattening any
// nested chains. Returns ErrEmptyChain without members, ErrNilReducer on a
// nil member.
func Chain(reducers ...Reducer) (*Chained, error) {
	if len(reducers) == 0 {
		return nil, ErrEmptyChain
	}
	flat := make([]Reducer, 0, len(reducers))
	for _, r := range reducers {
		if r == nil {
			return nil, ErrNilReducer
		}
		if c, ok := r.(*Chained); ok {
			flat = append(flat, c.reducers...)

			continue
		}
		flat = append(flat, r)
	}

	return &Chained{reducers: flat}, nil
}

// Compose is the deferred-composition form of "apply a reduction to another
// reduction": it chains outer in front of inner without touching any data,
// so the composite plan can be reused across matrices.
func Compose(outer, inner Reducer) (*Chained, error) {
	return Chain(outer, inner)
}

// Reducers returns the chain members in product order.
func (c *Chained) Reducers() []Reducer { return c.reducers }

// Apply runs the member reductions over m from last to first.
func (c *Chained) Apply(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	var (
		cur mat.Matrix = m
		out *mat.Dense
		err error
	)
	for i := len(c.reducers) - 1; i >= 0; i-- {
		out, err = c.reducers[i].Apply(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}

	return out, nil
}

// NewLen threads the row count through the members from last to first.
func (c *Chained) NewLen(originalLen int) (int, error) {
	n := originalLen
	var err error
	for i := len(c.reducers) - 1; i >= 0; i-- {
		n, err = c.reducers[i].NewLen(n)
		if err != nil {
			return 0, err
		}
	}

	return n, nil
}

// LinMap returns the product of the member maps in matching order.
// Returns ErrNotLinearizable when any member lacks a linear-map form.
func (c *Chained) LinMap(inputLen int) (*mat.Dense, error) {
	var acc *mat.Dense
	n := inputLen
	for i := len(c.reducers) - 1; i >= 0; i-- {
		lin, ok := c.reducers[i].(Linearizable)
		if !ok {
			return nil, ErrNotLinearizable
		}
		step, err := lin.LinMap(n)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = step
		} else {
			var next mat.Dense
			next.Mul(step, acc)
			acc = &next
		}
		if n, err = c.reducers[i].NewLen(n); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
