package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndMessage(t *testing.T) {
	cause := errors.New("unexpected EOF")

	cases := []struct {
		name    string
		err     error
		status  int
		message string
		is      error
	}{
		{"auth", Auth("Invalid API key"), http.StatusForbidden, "Invalid API key", ErrAuth},
		{"bad request", BadRequest("Empty request body", nil), http.StatusBadRequest, "Empty request body", ErrBadRequest},
		{"bad request with cause", BadRequest("Invalid JSON: x", cause), http.StatusBadRequest, "Invalid JSON: x", cause},
		{"store", WrapStore(cause), http.StatusInternalServerError, StoreErrorMessage, cause},
		{"wrapped", fmt.Errorf("ingest: %w", Auth("Invalid API key")), http.StatusForbidden, "Invalid API key", ErrAuth},
		{"plain", cause, http.StatusInternalServerError, SystemErrorMessage, cause},
	}
	for _, c := range cases {
		if got := StatusOf(c.err); got != c.status {
			t.Errorf("%s: status = %d, want %d", c.name, got, c.status)
		}
		if got := MessageOf(c.err); got != c.message {
			t.Errorf("%s: message = %q, want %q", c.name, got, c.message)
		}
		if !errors.Is(c.err, c.is) {
			t.Errorf("%s: errors.Is(%v) = false", c.name, c.is)
		}
	}

	if WrapStore(nil) != nil {
		t.Error("WrapStore(nil) must be nil")
	}
}

func TestBadRequestKeepsBothSentinels(t *testing.T) {
	cause := errors.New("syntax")
	err := BadRequest("Invalid JSON: syntax", cause)
	if !errors.Is(err, ErrBadRequest) || !errors.Is(err, cause) {
		t.Fatalf("chain lost: %v", err)
	}
	var app *AppError
	if !errors.As(err, &app) || app.Status != http.StatusBadRequest {
		t.Fatalf("errors.As failed: %v", err)
	}
}
