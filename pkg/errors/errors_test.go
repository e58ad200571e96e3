package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	if got := MetadataFor(Code("NO_SUCH_CODE")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(CodeConflict, cause, "brand name taken")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped error must unwrap to its cause")
	}
	if err.Code() != CodeConflict {
		t.Fatalf("unexpected code: %s", err.Code())
	}
	if err.Message() != "brand name taken" {
		t.Fatalf("unexpected message: %s", err.Message())
	}
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeInternal, nil, "no cause")
	if err.Unwrap() != nil {
		t.Fatal("nil cause must stay nil")
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	typed := New(CodeNotFound, "gone")
	wrapped := fmt.Errorf("outer: %w", typed)

	found := As(wrapped)
	if found == nil || found.Code() != CodeNotFound {
		t.Fatalf("expected typed error, got %v", found)
	}

	if As(fmt.Errorf("plain")) != nil {
		t.Fatal("plain error must not match")
	}
	if As(nil) != nil {
		t.Fatal("nil must not match")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "bad input").WithDetails(map[string]string{"field": "name"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["field"] != "name" {
		t.Fatalf("unexpected details: %v", err.Details())
	}
}
