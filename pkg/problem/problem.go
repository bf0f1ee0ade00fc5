// Package problem renders a failure as an RFC 7807 style problem report,
// ready to be serialized onto an HTTP response.
package problem

import (
	"encoding/json"
	"fmt"

	resultado "github.com/RickStanley/Resultado"
)

// TypeBase is the documentation-link base the default Type is built from:
// TypeBase plus the numeric status.
const TypeBase = "https://httpstatuses.io/"

// ErrorEntry is one structured validation error as it appears under the
// report's "errors" extension.
type ErrorEntry struct {
	Pointer string `json:"pointer,omitempty"`
	Detail  string `json:"detail"`
}

// Report is a transport-ready problem description. Extensions are flattened
// into the top-level JSON object alongside the standard members.
type Report struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	TraceID    string
	Extensions map[string]any
}

// Option overrides one member of the report being built.
type Option func(*Report)

// WithType overrides the default documentation-link type.
func WithType(typ string) Option {
	return func(r *Report) { r.Type = typ }
}

// WithTitle overrides the failure's title.
func WithTitle(title string) Option {
	return func(r *Report) { r.Title = title }
}

// WithStatus overrides the status derived from the failure's kind.
func WithStatus(status int) Option {
	return func(r *Report) { r.Status = status }
}

// WithDetail overrides the report detail.
func WithDetail(detail string) Option {
	return func(r *Report) { r.Detail = detail }
}

// WithInstance sets the URI of the specific occurrence.
func WithInstance(instance string) Option {
	return func(r *Report) { r.Instance = instance }
}

// WithExtension attaches an extension member to the report.
func WithExtension(key string, value any) Option {
	return func(r *Report) {
		if r.Extensions == nil {
			r.Extensions = map[string]any{}
		}
		r.Extensions[key] = value
	}
}

// FromResult builds a report from a failed result. Handing it a success is a
// defect in the calling code and panics with an error wrapping
// ErrNotAFailure.
func FromResult[T any](r resultado.Result[T], opts ...Option) Report {
	f, ok := r.Failure()
	if !ok {
		panic(fmt.Errorf("%w: kind %s", ErrNotAFailure, r.Kind()))
	}
	return FromFailure(f, opts...)
}

// FromFailure builds a report from a failure. Defaults: status from the
// kind's HTTP mapping, title from the failure's title, detail from the
// failure's detail or else its first plain error, type from TypeBase plus
// the status. Structured validation errors are attached under the "errors"
// extension as {pointer, detail} pairs. Options are applied last and win.
func FromFailure(f resultado.Failure, opts ...Option) Report {
	rep := Report{
		Title:   f.Title(),
		Status:  f.Kind().HTTPStatus(),
		Detail:  f.Detail(),
		TraceID: f.TraceID(),
	}
	if rep.Detail == "" {
		if errs := f.Errors(); len(errs) > 0 {
			rep.Detail = errs[0]
		}
	}
	if verrs := f.ValidationErrors(); len(verrs) > 0 {
		entries := make([]ErrorEntry, len(verrs))
		for i, ve := range verrs {
			entries[i] = ErrorEntry{Pointer: ve.Pointer, Detail: ve.Detail}
		}
		rep.Extensions = map[string]any{"errors": entries}
	}
	for _, opt := range opts {
		opt(&rep)
	}
	if rep.Type == "" {
		rep.Type = fmt.Sprintf("%s%d", TypeBase, rep.Status)
	}
	return rep
}

// MarshalJSON flattens extensions into the top-level object and omits absent
// optional members. Extension keys never shadow the standard members.
func (r Report) MarshalJSON() ([]byte, error) {
	obj := map[string]any{
		"type":   r.Type,
		"title":  r.Title,
		"status": r.Status,
	}
	for k, v := range r.Extensions {
		if _, taken := obj[k]; !taken {
			obj[k] = v
		}
	}
	if r.Detail != "" {
		obj["detail"] = r.Detail
	}
	if r.Instance != "" {
		obj["instance"] = r.Instance
	}
	if r.TraceID != "" {
		obj["traceId"] = r.TraceID
	}
	return json.Marshal(obj)
}
