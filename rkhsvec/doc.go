// Package rkhsvec implements lazy vectors over a reproducing-kernel
// Hilbert space (RKHS).
//
// 🚀 What is an RKHS vector?
//
//	A Vec represents a collection of kernel-embedded points together with a
//	PENDING reduction: the aggregation is never materialized eagerly.
//	Instead it is deferred until a dot product actually needs numbers, at
//	which point the kernel's raw Gram matrix is computed once and the
//	pending reductions of both sides are applied to its axes.
//
// Operations:
//
//   - Dot       — inner products between a row and a column vector,
//     yielding the matrix of pairwise RKHS inner products
//   - Tensor    — outer product of a column and a row vector of equal
//     length, represented lazily as a summed ProductVec
//   - Sum/Mean  — fold a vector into a single aggregated element by
//     chaining a reduction in front of the pending one
//   - Add/Mul   — element-wise combination, deferred via CombinationVec
//   - PreReduce — pre-compose an arbitrary reduction onto a vector
//
// Orientation: vectors are column-oriented by default; T() flips
// orientation without copying points. Inner products require row·column;
// any other pairing is an orientation error, never a silently wrong shape.
//
// Interoperability: two vectors combine only when their kernels are equal,
// and (for combination and tensor products) their lengths match.
//
// Everything is an immutable value object; lengths are derived once at
// construction, so Size and Len never fail after a vector exists.
package rkhsvec
