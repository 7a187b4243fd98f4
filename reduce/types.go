package reduce

import "gonum.org/v1/gonum/mat"

// Reducer aggregates the leading axis of a matrix into a new set of rows.
//
// Contracts:
//   - Apply never mutates its input and has no side effects.
//   - For every n-row matrix m accepted by Apply, the result has exactly
//     NewLen(n) rows. NewLen reports an error for row counts the reduction
//     cannot accept (and Apply fails identically on such inputs).
type Reducer interface {
	// Apply aggregates m along its leading axis and returns the result.
	Apply(m mat.Matrix) (*mat.Dense, error)

	// NewLen reports the row count Apply produces for an originalLen-row
	// input, or an error when that row count is incompatible.
	NewLen(originalLen int) (int, error)
}

// Linearizable is a Reducer expressible as left-multiplication by an
// explicit matrix, usable wherever reductions must enter ordinary linear
// algebra (e.g. gradient-friendly computations).
//
// Contract: r.Apply(m) equals LinMap(rows(m)) * m within floating-point
// tolerance for every accepted m.
type Linearizable interface {
	Reducer

	// LinMap returns the reduction's matrix form for an inputLen-row input.
	LinMap(inputLen int) (*mat.Dense, error)
}

// IndexBlock is a rectangular grid of input-row indices. Each row names the
// group of input rows aggregated into one output row; all rows share one
// width. A block with width zero produces all-zero output rows (padding).
type IndexBlock [][]int

// Width returns the shared row width of the block (0 for an empty block).
func (b IndexBlock) Width() int {
	if len(b) == 0 {
		return 0
	}

	return len(b[0])
}

// validate checks rectangularity and index signs.
func (b IndexBlock) validate() error {
	w := b.Width()
	for _, row := range b {
		if len(row) != w {
			return ErrRaggedBlock
		}
		for _, idx := range row {
			if idx < 0 {
				return ErrBadIndex
			}
		}
	}

	return nil
}

// maxIndex returns the largest index referenced by the block and whether the
// block references any index at all.
func (b IndexBlock) maxIndex() (int, bool) {
	found := false
	max := 0
	for _, row := range b {
		for _, idx := range row {
			if !found || idx > max {
				max = idx
				found = true
			}
		}
	}

	return max, found
}
