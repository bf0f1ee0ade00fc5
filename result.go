package resultado

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Success is the success variant of a Result. It carries an optional value,
// an optional message, and a kind constrained to the success range.
// The zero value is a plain KindOk success.
type Success[T any] struct {
	value   T
	message string
	kind    Kind
}

// Value returns the success payload.
func (s Success[T]) Value() T { return s.value }

// Message returns the optional human-readable message.
func (s Success[T]) Message() string { return s.message }

// Kind returns the success category.
func (s Success[T]) Kind() Kind { return s.kind }

// WithKind returns a copy of s carrying the given kind. It panics if kind is
// not in the success range; that is a defect in the calling code, not a
// recoverable condition.
func (s Success[T]) WithKind(kind Kind) Success[T] {
	mustSuccessKind(kind)
	s.kind = kind
	return s
}

// WithMessage returns a copy of s carrying the given message.
func (s Success[T]) WithMessage(message string) Success[T] {
	s.message = message
	return s
}

// MarshalJSON omits the message when absent.
func (s Success[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value   T      `json:"value"`
		Message string `json:"message,omitempty"`
		Kind    Kind   `json:"kind"`
	}{s.value, s.message, s.kind})
}

// Failure is the failure variant of a Result. It carries no success payload,
// so a single Failure value converts losslessly into a failed Result[T] for
// any T via Into.
type Failure struct {
	title            string
	detail           string
	errs             []string
	validationErrors []ValidationError
	traceID          string
	kind             Kind
}

// Title returns the short, category-level summary.
func (f Failure) Title() string { return f.title }

// Detail returns the optional longer description.
func (f Failure) Detail() string { return f.detail }

// TraceID returns the optional correlation identifier.
func (f Failure) TraceID() string { return f.traceID }

// Kind returns the failure category, defaulting to KindError.
func (f Failure) Kind() Kind {
	if f.kind == KindOk {
		return KindError
	}
	return f.kind
}

// ValidationErrors returns a copy of the structured errors.
func (f Failure) ValidationErrors() []ValidationError {
	if len(f.validationErrors) == 0 {
		return nil
	}
	out := make([]ValidationError, len(f.validationErrors))
	copy(out, f.validationErrors)
	return out
}

// Errors returns the plain-string view of the failure. Explicitly supplied
// strings win; otherwise the view is computed on every call as the
// projection of ValidationErrors onto their Detail field, so later
// copy-with-change of the validation errors is always reflected.
func (f Failure) Errors() []string {
	if len(f.errs) > 0 {
		out := make([]string, len(f.errs))
		copy(out, f.errs)
		return out
	}
	if len(f.validationErrors) == 0 {
		return nil
	}
	out := make([]string, len(f.validationErrors))
	for i, ve := range f.validationErrors {
		out[i] = ve.Detail
	}
	return out
}

// WithKind returns a copy of f carrying the given kind. It panics if kind is
// not in the failure range.
func (f Failure) WithKind(kind Kind) Failure {
	mustFailureKind(kind)
	f.kind = kind
	return f
}

// WithDetail returns a copy of f carrying the given detail.
func (f Failure) WithDetail(detail string) Failure {
	f.detail = detail
	return f
}

// WithTraceID returns a copy of f carrying the given trace identifier.
func (f Failure) WithTraceID(traceID string) Failure {
	f.traceID = traceID
	return f
}

// WithErrors returns a copy of f with the plain-string errors replaced.
func (f Failure) WithErrors(errs ...string) Failure {
	f.errs = append([]string(nil), errs...)
	return f
}

// WithValidationErrors returns a copy of f with the structured errors
// replaced. The kind is left untouched; only the FailValidation constructor
// forces KindInvalid.
func (f Failure) WithValidationErrors(errs ...ValidationError) Failure {
	f.validationErrors = append([]ValidationError(nil), errs...)
	return f
}

// Error implements the error interface so a Failure can travel through call
// sites that thread plain Go errors.
func (f Failure) Error() string {
	switch {
	case f.title != "" && f.detail != "":
		return f.title + ": " + f.detail
	case f.title != "":
		return f.title
	case f.detail != "":
		return f.detail
	default:
		return strings.Join(f.Errors(), "; ")
	}
}

// MarshalJSON omits detail and traceId when absent and serializes the
// projected error strings.
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title            string            `json:"title"`
		Detail           string            `json:"detail,omitempty"`
		Kind             Kind              `json:"kind"`
		Errors           []string          `json:"errors,omitempty"`
		ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
		TraceID          string            `json:"traceId,omitempty"`
	}{f.title, f.detail, f.Kind(), f.Errors(), f.validationErrors, f.traceID})
}

// Result is the outcome of an operation: exactly one of Success[T] or
// Failure. The zero value is an empty failure; no third state is
// constructible. Values are immutable and safe for unsynchronized sharing.
type Result[T any] struct {
	ok      bool
	success Success[T]
	failure Failure
}

// IsSuccess reports whether r holds the success variant.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether r holds the failure variant.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Kind returns the kind of whichever variant r holds.
func (r Result[T]) Kind() Kind {
	if r.ok {
		return r.success.Kind()
	}
	return r.failure.Kind()
}

// Success returns the success variant and whether r holds it.
func (r Result[T]) Success() (Success[T], bool) {
	if !r.ok {
		return Success[T]{}, false
	}
	return r.success, true
}

// Failure returns the failure variant and whether r holds it.
func (r Result[T]) Failure() (Failure, bool) {
	if r.ok {
		return Failure{}, false
	}
	return r.failure, true
}

// MarshalJSON serializes whichever variant r holds.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(r.success)
	}
	return json.Marshal(r.failure)
}

// Match dispatches exhaustively over the two variants of r.
func Match[T, R any](r Result[T], onSuccess func(Success[T]) R, onFailure func(Failure) R) R {
	if s, ok := r.Success(); ok {
		return onSuccess(s)
	}
	f, _ := r.Failure()
	return onFailure(f)
}

// Into converts a bare Failure into a failed Result[T] for any T. The
// conversion is total and lossless: every field of f is preserved exactly,
// and the absent success payload is the only thing a typed failure adds.
// It is a free function because Go methods cannot introduce type parameters.
func Into[T any](f Failure) Result[T] {
	return Result[T]{failure: f}
}

// Succeed builds a success result carrying value. The kind defaults to
// KindOk; WithSuccessKind panics on a failure-range kind.
func Succeed[T any](value T, opts ...SucceedOption) Result[T] {
	cfg := succeedConfig{kind: KindOk}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Result[T]{
		ok:      true,
		success: Success[T]{value: value, message: cfg.message, kind: cfg.kind},
	}
}

// Fail builds a failure with the given title. The kind defaults to KindError
// and is adjusted through options, which validate immediately.
func Fail(title string, opts ...FailOption) Failure {
	f := Failure{title: title, kind: KindError}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// FailErrors builds a failure from one or more plain error strings, stored
// verbatim. The title defaults to the empty string.
func FailErrors(errs ...string) Failure {
	return Failure{kind: KindError, errs: append([]string(nil), errs...)}
}

// FailValidation builds a failure from one or more structured validation
// errors. The kind is unconditionally KindInvalid: a validation failure is,
// by definition, an invalid-input outcome. Callers wanting a different kind
// must say so afterwards via WithKind.
func FailValidation(title string, errs ...ValidationError) Failure {
	return Failure{
		title:            title,
		kind:             KindInvalid,
		validationErrors: append([]ValidationError(nil), errs...),
	}
}

func mustSuccessKind(kind Kind) {
	if !kind.IsSuccess() {
		panic(fmt.Errorf("%w: %s", ErrNonSuccessKind, kind))
	}
}

func mustFailureKind(kind Kind) {
	if !kind.IsFailure() {
		panic(fmt.Errorf("%w: %s", ErrNonFailureKind, kind))
	}
}
