package main

import (
	"context"
	"testing"
)

func TestUnavailableCompleter(t *testing.T) {
	out, err := unavailableCompleter{}.Complete(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("expected error when AI is not configured")
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
