package params

import "errors"

var (
	// ErrDuplicateComponent indicates two hyperparameter sets that both
	// define the same component group.
	ErrDuplicateComponent = errors.New("params: duplicate component in concat")
	// ErrNilInitialiser indicates an InitSpec with a missing component.
	ErrNilInitialiser = errors.New("params: initialiser must be non-nil")
	// ErrBadKind indicates an unknown PosteriorKind.
	ErrBadKind = errors.New("params: unknown posterior kind")
	// ErrDataLen indicates a non-positive data count for a latent vector.
	ErrDataLen = errors.New("params: data count must be positive")
)
