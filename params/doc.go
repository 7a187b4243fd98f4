// Package params assembles trainable hyperparameter sets for Gaussian
// process posteriors.
//
// Hyperparameters are grouped by component: a Hyperparams value maps a
// component name ("kernel", "mean_function", "likelihood", ...) to that
// component's named scalar parameters. Groups from independent components
// are joined with Concat, which refuses duplicate component names; a
// partially trained set is overlaid on a freshly initialised one with Merge.
//
// Initialisation is driven by an explicit PosteriorKind switch. A Conjugate
// posterior needs only the component hyperparameters; a NonConjugate
// posterior additionally carries a zero-initialised latent vector, one entry
// per datum, returned alongside the hyperparameter groups.
//
// Any component that exposes InitParams() map[string]float64 — including
// every kernel in the kernel package — satisfies the Initialiser contract
// and can feed an InitSpec.
package params
