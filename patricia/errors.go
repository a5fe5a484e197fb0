package patricia

import "errors"

var (
	// ErrInvalidTree signals that a structural invariant does not hold.
	// It is only ever produced by Check, never by regular operations.
	ErrInvalidTree = errors.New("patricia: invalid tree structure")
)
