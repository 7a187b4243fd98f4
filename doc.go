// Package rkhs is your in-memory toolkit for kernel-method and
// Gaussian-process computations over reproducing-kernel Hilbert spaces —
// from a composable reduction algebra to lazy RKHS vectors.
//
// 🚀 What is rkhs?
//
//	A small, deterministic library that brings together:
//		• Reductions: composable row-aggregation operators over Gram matrices
//		  (repeat, tile, sparse grouped sum/mean, explicit linear maps, chains)
//		• Construction algorithms: block runs, unique-value clustering, k-mer windows
//		• Kernels: the cross-covariance contract plus RBF, Linear and Matérn-1/2
//		• RKHS vectors: lazy aggregated point collections with inner products,
//		  tensor products and deferred element-wise combination
//
// ✨ Why choose rkhs?
//
//   - Purely functional core – immutable value objects, no hidden state
//   - Plan once, apply many – compose reductions before any data exists
//   - Explicit errors – every contract violation surfaces as a sentinel
//   - gonum-backed – dense linear algebra via gonum.org/v1/gonum/mat
//
// Everything is organized under four subpackages:
//
//	reduce/  — the Reducer family, chaining, and sparse/k-mer constructors
//	kernel/  — the cross-covariance contract and concrete kernels
//	rkhsvec/ — lazy RKHS vectors and their combination algebra
//	params/  — hyperparameter initialisation for posterior variants
//
// Quick sketch:
//
//	points ──kernel──▶ Gram matrix ──reduce──▶ aggregated Gram / scalar
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/rkhs
package rkhs
