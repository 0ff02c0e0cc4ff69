package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Op: "list players", StatusCode: 500, Body: "boom"}
	if got := err.Error(); got != "list players: unexpected status 500: boom" {
		t.Fatalf("unexpected error string %q", got)
	}

	noBody := &StatusError{Op: "delete player", StatusCode: 404}
	if got := noBody.Error(); got != "delete player: unexpected status 404" {
		t.Fatalf("unexpected error string %q", got)
	}
	if !noBody.NotFound() || err.NotFound() {
		t.Fatalf("unexpected NotFound classification")
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", &StatusError{Op: "list players", StatusCode: 502})
	statusErr, ok := AsStatusError(wrapped)
	if !ok || statusErr.StatusCode != 502 {
		t.Fatalf("expected to unwrap status error, got %v", statusErr)
	}

	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatalf("expected plain error to not unwrap")
	}
}
