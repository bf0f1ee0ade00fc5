package resultado

import (
	"encoding/json"
	"testing"
)

var successKinds = []Kind{KindOk, KindCreated, KindNoContent, KindAccepted}

var failureKinds = []Kind{
	KindError, KindCritical, KindUnavailable, KindInvalid, KindUnprocessable,
	KindForbidden, KindUnauthorized, KindConflict, KindNotFound, KindFailedDependency,
}

func TestKind_Partition(t *testing.T) {
	for _, k := range successKinds {
		if !k.IsSuccess() {
			t.Fatalf("expected %s to be a success kind", k)
		}
		if k.IsFailure() {
			t.Fatalf("expected %s not to be a failure kind", k)
		}
	}
	for _, k := range failureKinds {
		if !k.IsFailure() {
			t.Fatalf("expected %s to be a failure kind", k)
		}
		if k.IsSuccess() {
			t.Fatalf("expected %s not to be a success kind", k)
		}
	}
}

func TestKind_BoundaryOrdering(t *testing.T) {
	// The partition relies solely on ordering against KindError; every
	// success kind must sort before it.
	for _, k := range successKinds {
		if k >= KindError {
			t.Fatalf("success kind %s does not precede the boundary", k)
		}
	}
	for _, k := range failureKinds {
		if k < KindError {
			t.Fatalf("failure kind %s precedes the boundary", k)
		}
	}
}

func TestKind_HTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindOk, 200},
		{KindCreated, 201},
		{KindNoContent, 204},
		{KindAccepted, 202},
		{KindError, 500},
		{KindCritical, 500},
		{KindUnavailable, 503},
		{KindInvalid, 400},
		{KindUnprocessable, 422},
		{KindForbidden, 403},
		{KindUnauthorized, 401},
		{KindConflict, 409},
		{KindNotFound, 404},
		{KindFailedDependency, 424},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.HTTPStatus(); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestKind_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(KindFailedDependency)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"failed_dependency"` {
		t.Fatalf("marshal = %s, want %q", b, "failed_dependency")
	}
}
