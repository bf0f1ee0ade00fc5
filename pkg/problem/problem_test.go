package problem

import (
	"encoding/json"
	"errors"
	"testing"

	resultado "github.com/RickStanley/Resultado"
)

func TestFromFailure_Defaults(t *testing.T) {
	f := resultado.Fail("order not found",
		resultado.WithKind(resultado.KindNotFound),
		resultado.WithDetail("order 42 does not exist"),
		resultado.WithTraceID("trace-9"),
	)

	rep := FromFailure(f)
	if rep.Status != 404 {
		t.Fatalf("Status = %d, want 404", rep.Status)
	}
	if rep.Title != "order not found" {
		t.Fatalf("Title = %q", rep.Title)
	}
	if rep.Detail != "order 42 does not exist" {
		t.Fatalf("Detail = %q", rep.Detail)
	}
	if rep.Type != TypeBase+"404" {
		t.Fatalf("Type = %q", rep.Type)
	}
	if rep.TraceID != "trace-9" {
		t.Fatalf("TraceID = %q", rep.TraceID)
	}
}

func TestFromFailure_DetailFallsBackToFirstError(t *testing.T) {
	rep := FromFailure(resultado.FailErrors("first", "second"))
	if rep.Detail != "first" {
		t.Fatalf("Detail = %q, want %q", rep.Detail, "first")
	}
	if rep.Status != 500 {
		t.Fatalf("Status = %d, want 500", rep.Status)
	}
}

func TestFromFailure_ValidationErrorsExtension(t *testing.T) {
	f := resultado.FailValidation("invalid user",
		resultado.NewValidationError("email is malformed", resultado.WithPointer("/user/email")),
		resultado.NewValidationError("name is required"),
	)

	rep := FromFailure(f)
	if rep.Status != 400 {
		t.Fatalf("Status = %d, want 400", rep.Status)
	}
	raw, ok := rep.Extensions["errors"]
	if !ok {
		t.Fatalf("expected errors extension, got %v", rep.Extensions)
	}
	entries, ok := raw.([]ErrorEntry)
	if !ok || len(entries) != 2 {
		t.Fatalf("errors extension = %#v", raw)
	}
	if entries[0].Pointer != "/user/email" || entries[0].Detail != "email is malformed" {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	if entries[1].Pointer != "" || entries[1].Detail != "name is required" {
		t.Fatalf("entries[1] = %+v", entries[1])
	}
}

func TestFromFailure_Overrides(t *testing.T) {
	f := resultado.Fail("boom", resultado.WithDetail("original"))
	rep := FromFailure(f,
		WithStatus(418),
		WithTitle("overridden"),
		WithDetail("replaced"),
		WithInstance("/orders/42"),
		WithExtension("retryable", false),
	)
	if rep.Status != 418 {
		t.Fatalf("Status = %d", rep.Status)
	}
	if rep.Title != "overridden" || rep.Detail != "replaced" || rep.Instance != "/orders/42" {
		t.Fatalf("report = %+v", rep)
	}
	// The default type is computed after overrides, so it follows the
	// overridden status.
	if rep.Type != TypeBase+"418" {
		t.Fatalf("Type = %q", rep.Type)
	}
	if v, ok := rep.Extensions["retryable"]; !ok || v != false {
		t.Fatalf("Extensions = %v", rep.Extensions)
	}

	rep = FromFailure(f, WithType("https://example.com/problems/teapot"))
	if rep.Type != "https://example.com/problems/teapot" {
		t.Fatalf("Type = %q", rep.Type)
	}
}

func TestFromResult_PanicsOnSuccess(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotAFailure) {
			t.Fatalf("panic = %v, want error wrapping ErrNotAFailure", r)
		}
	}()
	FromResult(resultado.Succeed("fine"))
}

func TestFromResult_Failure(t *testing.T) {
	r := resultado.Into[string](resultado.Fail("boom", resultado.WithKind(resultado.KindConflict)))
	rep := FromResult(r)
	if rep.Status != 409 || rep.Title != "boom" {
		t.Fatalf("report = %+v", rep)
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	f := resultado.FailValidation("invalid user",
		resultado.NewValidationError("email is malformed", resultado.WithPointer("/user/email")),
	)
	b, err := json.Marshal(FromFailure(f, WithInstance("/users/7")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if obj["title"] != "invalid user" || obj["status"] != float64(400) {
		t.Fatalf("object = %v", obj)
	}
	if obj["instance"] != "/users/7" {
		t.Fatalf("instance = %v", obj["instance"])
	}
	if _, ok := obj["traceId"]; ok {
		t.Fatalf("expected traceId to be omitted")
	}
	// Extensions are flattened into the top-level object.
	entries, ok := obj["errors"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("errors = %#v", obj["errors"])
	}
	entry, ok := entries[0].(map[string]any)
	if !ok || entry["pointer"] != "/user/email" || entry["detail"] != "email is malformed" {
		t.Fatalf("entry = %#v", entries[0])
	}
}
