package problem

import "errors"

// ErrNotAFailure is wrapped by the panic raised when a success result is
// handed to the problem-report adapter.
var ErrNotAFailure = errors.New("problem report requested for a non-failure result")
