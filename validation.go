package resultado

import "strings"

// Severity is a bit-flag set describing how serious a validation error is.
// Zero or more flags may be combined on a single error.
type Severity uint8

const (
	// SeverityError marks a violation that invalidates the input.
	SeverityError Severity = 1 << iota
	// SeverityCritical marks a violation that should also alert an operator.
	SeverityCritical
	// SeverityWarning marks a suspicious but acceptable value.
	SeverityWarning
	// SeverityInfo marks purely informational feedback.
	SeverityInfo
)

var severityNames = []struct {
	flag Severity
	name string
}{
	{SeverityError, "error"},
	{SeverityCritical, "critical"},
	{SeverityWarning, "warning"},
	{SeverityInfo, "info"},
}

// Has reports whether every flag in s is set on the receiver.
func (s Severity) Has(flag Severity) bool {
	return s&flag == flag && flag != 0
}

func (s Severity) String() string {
	if s == 0 {
		return ""
	}
	var parts []string
	for _, sn := range severityNames {
		if s.Has(sn.flag) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ValidationError describes one field-level problem. It is a plain value:
// construct it once, copy it freely, never mutate it. Optional fields are
// omitted from serialized forms when absent.
type ValidationError struct {
	// Detail is the human-readable cause. Required.
	Detail string `json:"detail"`
	// Pointer identifies the offending field, RFC-6901 style. Usually
	// produced by pkg/pointer; may be supplied by hand.
	Pointer string `json:"pointer,omitempty"`
	// Severity defaults to SeverityError when built through
	// NewValidationError.
	Severity Severity `json:"severity,omitempty"`
	// Code is an optional domain-specific identifier.
	Code string `json:"code,omitempty"`
}

// ValidationErrorOption configures a ValidationError at construction time.
type ValidationErrorOption func(*ValidationError)

// WithPointer sets the field pointer.
func WithPointer(pointer string) ValidationErrorOption {
	return func(v *ValidationError) { v.Pointer = pointer }
}

// WithSeverity replaces the default SeverityError.
func WithSeverity(s Severity) ValidationErrorOption {
	return func(v *ValidationError) { v.Severity = s }
}

// WithCode sets the domain-specific error code.
func WithCode(code string) ValidationErrorOption {
	return func(v *ValidationError) { v.Code = code }
}

// NewValidationError builds a ValidationError with the given detail and a
// default severity of SeverityError.
func NewValidationError(detail string, opts ...ValidationErrorOption) ValidationError {
	v := ValidationError{Detail: detail, Severity: SeverityError}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
