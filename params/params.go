package params

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PosteriorKind selects the initialisation strategy for a posterior.
type PosteriorKind int

const (
	// Conjugate marks a posterior with an analytically tractable
	// likelihood; no latent vector is required.
	Conjugate PosteriorKind = iota
	// NonConjugate marks a posterior whose likelihood requires an
	// explicit latent vector, one entry per datum.
	NonConjugate
)

// String returns the kind's name.
func (k PosteriorKind) String() string {
	switch k {
	case Conjugate:
		return "Conjugate"
	case NonConjugate:
		return "NonConjugate"
	default:
		return fmt.Sprintf("PosteriorKind(%d)", int(k))
	}
}

// Hyperparams maps a component name to that component's named scalar
// hyperparameters.
type Hyperparams map[string]map[string]float64

// Initialiser is implemented by any model component that can report its
// trainable hyperparameters at their initial values. Every kernel in the
// kernel package satisfies it.
type Initialiser interface {
	InitParams() map[string]float64
}

// InitSpec names the components whose hyperparameters seed a posterior.
// NData is consulted only for NonConjugate initialisation.
type InitSpec struct {
	Kernel     Initialiser
	Mean       Initialiser
	Likelihood Initialiser
	NData      int
}

// Concat joins hyperparameter sets that describe disjoint components.
// A component appearing in more than one set is an error.
func Concat(sets ...Hyperparams) (Hyperparams, error) {
	out := Hyperparams{}
	for _, set := range sets {
		for component, group := range set {
			if _, ok := out[component]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, component)
			}
			out[component] = cloneGroup(group)
		}
	}

	return out, nil
}

// Merge overlays b on a: components present in both keep b's values for
// the names b defines and a's values for the rest. Neither input is
// modified.
func Merge(a, b Hyperparams) Hyperparams {
	out := Hyperparams{}
	for component, group := range a {
		out[component] = cloneGroup(group)
	}
	for component, group := range b {
		merged, ok := out[component]
		if !ok {
			out[component] = cloneGroup(group)
			continue
		}
		for name, value := range group {
			merged[name] = value
		}
	}

	return out
}

// Initialise builds the full hyperparameter set for a posterior of the
// given kind. Conjugate posteriors return a nil latent vector; NonConjugate
// posteriors return a zero latent of length spec.NData alongside the
// hyperparameters.
func Initialise(kind PosteriorKind, spec InitSpec) (Hyperparams, *mat.VecDense, error) {
	if spec.Kernel == nil || spec.Mean == nil || spec.Likelihood == nil {
		return nil, nil, ErrNilInitialiser
	}
	hyps, err := Concat(
		Hyperparams{"kernel": spec.Kernel.InitParams()},
		Hyperparams{"mean_function": spec.Mean.InitParams()},
		Hyperparams{"likelihood": spec.Likelihood.InitParams()},
	)
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case Conjugate:
		return hyps, nil, nil
	case NonConjugate:
		if spec.NData < 1 {
			return nil, nil, fmt.Errorf("%w: got %d", ErrDataLen, spec.NData)
		}

		return hyps, mat.NewVecDense(spec.NData, nil), nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrBadKind, kind)
	}
}

// Complete fills in the hyperparameters a partially trained set is missing:
// the full set for the kind is initialised, then partial overlays it. The
// latent vector is returned untouched from initialisation; trained latents
// live outside the hyperparameter groups.
func Complete(partial Hyperparams, kind PosteriorKind, spec InitSpec) (Hyperparams, *mat.VecDense, error) {
	full, latent, err := Initialise(kind, spec)
	if err != nil {
		return nil, nil, err
	}

	return Merge(full, partial), latent, nil
}

func cloneGroup(group map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(group))
	for name, value := range group {
		out[name] = value
	}

	return out
}
