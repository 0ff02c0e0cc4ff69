package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNonNegativeDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DUR_TEST", "0s")
	if got := nonNegativeDurationEnvOrDefault("DUR_TEST", time.Minute); got != 0 {
		t.Fatalf("expected zero to be accepted, got %s", got)
	}
	t.Setenv("DUR_TEST", "-5s")
	if got := nonNegativeDurationEnvOrDefault("DUR_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected negative to fall back, got %s", got)
	}
}
