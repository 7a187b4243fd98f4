// Package reduce implements a composable algebra of row-aggregation
// operators ("reductions") over dense matrices, typically kernel Gram
// matrices.
//
// 🚀 What is a reduction?
//
//	A reduction is a pure operator that aggregates the leading axis of a
//	matrix into a new set of rows by a defined rule:
//	  • Identity  — pass rows through unchanged
//	  • Repeat    — concatenate N full copies of the input
//	  • TileView  — same layout as Repeat, but derivable as a no-copy view
//	    and expressible as an explicit linear map
//	  • SparseReduce — grouped sum/mean over named row indices
//	  • LinearReduce — literal left-multiplication by a stored matrix
//	  • Sum / Mean — fold every row into one
//	  • Chained   — right-to-left composition of the above
//
// ✨ Key properties:
//
//   - Plans, not data: reductions are built before any matrix exists and can
//     be reused across many Gram matrices of the same shape.
//   - Length contract: for every reduction r and n-row matrix m,
//     r.Apply(m) has exactly r.NewLen(n) rows. Violations are errors,
//     never silent misshapes.
//   - Linearizability: reductions that admit a matrix form expose it via
//     LinMap, so r.Apply(m) equals LinMap(rows(m)) * m within tolerance.
//   - Purity: Apply never mutates its input and has no observable side
//     effects, so any evaluation strategy of the numeric backend is safe.
//
// Construction algorithms:
//
//   - FromBlockLengths — aggregate contiguous runs of known lengths.
//   - FromUnique — cluster equal values of a 1-D slice into grouped
//     sum/mean blocks (⚠ output rows follow multiplicity-then-value order,
//     not input order; see the function's contract).
//   - Kmer* — sliding-window (n-gram) reductions in matrix, linear,
//     index or sparse form.
//
// Complexity: Apply is O(rows·cols) for every leaf except LinearReduce,
// which is a dense O(out·rows·cols) multiplication.
//
// See example_test.go for runnable examples.
package reduce
