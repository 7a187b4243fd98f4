// Package kernel defines the cross-covariance contract consumed by the
// RKHS vector algebra, together with a small set of concrete kernels.
//
// A kernel maps two point sets (one point per matrix row) to their Gram
// matrix of pairwise covariances: CrossCovariance(a, b) has rows(a) rows
// and rows(b) columns. Kernels also support equality comparison, which the
// vector algebra uses to validate that two RKHS vectors live in the same
// space before combining them.
//
// Concrete kernels:
//
//   - RBF       — squared exponential, k(x,y) = σ²·exp(−‖x−y‖²/(2ℓ²))
//   - Linear    — dot product, k(x,y) = σ²·⟨x,y⟩
//   - Matern12  — exponential, k(x,y) = σ²·exp(−‖x−y‖/ℓ)
//
// All kernels are immutable value objects; constructors validate that
// variance and lengthscale are strictly positive.
package kernel
