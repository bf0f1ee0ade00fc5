package resultado

import (
	"encoding/json"
	"fmt"
)

// Kind classifies the outcome of an operation. The enumeration is ordered:
// every constant before KindError is a success category, every constant from
// KindError onward is a failure category. That ordering is the only thing the
// success/failure partition relies on, so new kinds must only ever be
// appended, never inserted.
type Kind int

const (
	// KindOk is the default success category.
	KindOk Kind = iota
	// KindCreated indicates a new resource or value came into existence.
	KindCreated
	// KindNoContent indicates success with no value to report.
	KindNoContent
	// KindAccepted indicates the operation was accepted for later processing.
	KindAccepted

	// KindError is the default failure category and the partition boundary:
	// every kind from here on is a failure kind.
	KindError
	// KindCritical indicates a failure severe enough to page someone.
	KindCritical
	// KindUnavailable indicates a dependency or the system itself is down.
	KindUnavailable
	// KindInvalid indicates the input failed validation. Failures built from
	// validation errors always carry this kind.
	KindInvalid
	// KindUnprocessable indicates well-formed input that cannot be acted on.
	KindUnprocessable
	// KindForbidden indicates the caller is known but not allowed.
	KindForbidden
	// KindUnauthorized indicates the caller is not authenticated.
	KindUnauthorized
	// KindConflict indicates the operation clashes with current state.
	KindConflict
	// KindNotFound indicates the target of the operation does not exist.
	KindNotFound
	// KindFailedDependency indicates an upstream operation already failed.
	KindFailedDependency
)

var kindNames = map[Kind]string{
	KindOk:               "ok",
	KindCreated:          "created",
	KindNoContent:        "no_content",
	KindAccepted:         "accepted",
	KindError:            "error",
	KindCritical:         "critical",
	KindUnavailable:      "unavailable",
	KindInvalid:          "invalid",
	KindUnprocessable:    "unprocessable",
	KindForbidden:        "forbidden",
	KindUnauthorized:     "unauthorized",
	KindConflict:         "conflict",
	KindNotFound:         "not_found",
	KindFailedDependency: "failed_dependency",
}

// kindStatuses is the fixed Kind-to-HTTP-status table consumed by the
// problem-report adapter.
var kindStatuses = map[Kind]int{
	KindOk:               200,
	KindCreated:          201,
	KindNoContent:        204,
	KindAccepted:         202,
	KindError:            500,
	KindCritical:         500,
	KindUnavailable:      503,
	KindInvalid:          400,
	KindUnprocessable:    422,
	KindForbidden:        403,
	KindUnauthorized:     401,
	KindConflict:         409,
	KindNotFound:         404,
	KindFailedDependency: 424,
}

// IsSuccess reports whether k lies in the success range of the enumeration.
func (k Kind) IsSuccess() bool {
	return k >= KindOk && k < KindError
}

// IsFailure reports whether k lies in the failure range of the enumeration.
func (k Kind) IsFailure() bool {
	return k >= KindError && k <= KindFailedDependency
}

// HTTPStatus returns the HTTP status code associated with k.
func (k Kind) HTTPStatus() int {
	if s, ok := kindStatuses[k]; ok {
		return s
	}
	return 500
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalJSON serializes the kind as its name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
