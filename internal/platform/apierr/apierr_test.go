package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusFromCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Invalid("op", "title", "This field is required."), http.StatusBadRequest},
		{"not found", NotFound("op"), http.StatusNotFound},
		{"conflict", Conflict("op", "in use"), http.StatusMethodNotAllowed},
		{"wrapped conflict", fmt.Errorf("delete: %w", Conflict("op", "in use")), http.StatusMethodNotAllowed},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Fatalf("Status: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestWrapKeepsExistingCode(t *testing.T) {
	orig := NotFound("repo.get")
	if got := Wrap(CodeInternal, "svc", orig); !IsCode(got, CodeNotFound) {
		t.Fatalf("Wrap overrode code: %v", CodeOf(got))
	}
	cause := errors.New("disk full")
	wrapped := Wrap(CodeInternal, "svc", cause)
	if !IsCode(wrapped, CodeInternal) || !errors.Is(wrapped, cause) {
		t.Fatalf("Wrap lost cause or code: %v", wrapped)
	}
	if Wrap(CodeInternal, "svc", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestValidationErrorString(t *testing.T) {
	err := Validation("product.create", map[string][]string{
		"title":      {"This field is required."},
		"unit_price": {"Ensure this value is greater than or equal to 1."},
	})
	want := "product.create: title: This field is required., unit_price: Ensure this value is greater than or equal to 1. (validation)"
	if err.Error() != want {
		t.Fatalf("Error(): got=%q", err.Error())
	}
}
