package pointer

import "errors"

var (
	// ErrUnsupportedExpression is wrapped by the panic raised when an
	// expression contains a node shape the resolver does not support.
	ErrUnsupportedExpression = errors.New("unsupported expression")
	// ErrRepresentationUnsupported is wrapped by the panic raised when a
	// pointer is rendered in a representation that is named but not
	// implemented.
	ErrRepresentationUnsupported = errors.New("unsupported pointer representation")
)
