package resultado

import "errors"

var (
	// ErrNonSuccessKind is wrapped by the panic raised when a failure-range
	// kind is assigned to a success result.
	ErrNonSuccessKind = errors.New("non-success kind on a success result")
	// ErrNonFailureKind is wrapped by the panic raised when a success-range
	// kind is assigned to a failure result.
	ErrNonFailureKind = errors.New("non-failure kind on a failure result")
)
