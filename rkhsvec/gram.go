package rkhsvec

import "gonum.org/v1/gonum/mat"

// rowGram computes the reduced Gram matrix with a's elements as rows and
// b's elements as columns: both pending reductions are applied, and
// combination structure is resolved recursively. Orientation flags play no
// role here; callers validate them.
//
// Combination semantics:
//   - OpAdd members live in the same RKHS, so their Gram blocks concatenate
//     along the combination's axis (a downstream Sum reduction then
//     realizes "combine and fold").
//   - OpMul members form tensor-product elements, so inner products
//     multiply across PAIRWISE-ALIGNED member grams; both sides must be
//     product combinations of the same rank.
func rowGram(a, b *Vec) (*mat.Dense, error) {
	if a.members != nil && a.op == OpAdd {
		return sumRows(a, b)
	}
	if b.members != nil && b.op == OpAdd {
		// Resolve b's additive structure on the row side, transpose back.
		g, err := rowGram(b, a)
		if err != nil {
			return nil, err
		}

		return mat.DenseCopyOf(g.T()), nil
	}
	if a.members != nil {
		return productRows(a, b)
	}
	if b.members != nil {
		// Plain element against a tensor-product element.
		return nil, ErrSpaceMismatch
	}

	// Plain × plain: one raw Gram, then each side's reduction on its axis.
	raw, err := a.k.CrossCovariance(a.atoms, b.atoms)
	if err != nil {
		return nil, err
	}

	return reduceBoth(raw, a, b)
}

// sumRows resolves an additive combination on the row side: member Gram
// blocks stack vertically, then the combination's reduction applies.
func sumRows(a, b *Vec) (*mat.Dense, error) {
	blocks := make([]*mat.Dense, len(a.members))
	for i, m := range a.members {
		g, err := rowGram(m, b)
		if err != nil {
			return nil, err
		}
		blocks[i] = g
	}
	combined, err := vstack(blocks)
	if err != nil {
		return nil, err
	}

	return a.red.Apply(combined)
}

// productRows resolves a product combination on the row side. The other
// side must be a product combination of the same rank; member grams are
// contracted pairwise and multiplied element-wise, then both combination
// reductions apply to their axes.
func productRows(a, b *Vec) (*mat.Dense, error) {
	if b.members == nil || b.op != OpMul {
		return nil, ErrSpaceMismatch
	}
	if len(a.members) != len(b.members) {
		return nil, ErrSpaceMismatch
	}

	blocks := make([]*mat.Dense, len(a.members))
	for i, m := range a.members {
		g, err := rowGram(m, b.members[i])
		if err != nil {
			return nil, err
		}
		blocks[i] = g
	}
	combined, err := hadamard(blocks)
	if err != nil {
		return nil, err
	}

	return reduceBoth(combined, a, b)
}

// reduceBoth applies b's reduction to g's columns and a's reduction to the
// rows of the result.
func reduceBoth(g *mat.Dense, a, b *Vec) (*mat.Dense, error) {
	colReduced, err := b.red.Apply(g.T())
	if err != nil {
		return nil, err
	}

	return a.red.Apply(colReduced.T())
}

// vstack concatenates blocks vertically. All blocks must share one column
// count.
func vstack(blocks []*mat.Dense) (*mat.Dense, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyCombination
	}
	total, cols := blocks[0].Dims()
	for _, b := range blocks[1:] {
		r, c := b.Dims()
		if c != cols {
			return nil, ErrSizeMismatch
		}
		total += r
	}

	out := mat.NewDense(total, cols, nil)
	row := 0
	for _, b := range blocks {
		r, _ := b.Dims()
		out.Slice(row, row+r, 0, cols).(*mat.Dense).Copy(b)
		row += r
	}

	return out, nil
}

// hadamard multiplies blocks element-wise. All blocks must share one shape.
func hadamard(blocks []*mat.Dense) (*mat.Dense, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyCombination
	}
	rows, cols := blocks[0].Dims()
	out := mat.DenseCopyOf(blocks[0])
	for _, b := range blocks[1:] {
		r, c := b.Dims()
		if r != rows || c != cols {
			return nil, ErrSizeMismatch
		}
		out.MulElem(out, b)
	}

	return out, nil
}
