package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(ErrValidation, "columns", "resolve", "no column matches", inner)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped inner error, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "mailer", "send", "timed out", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"configuration", Wrap(ErrConfiguration, "config", "load", "missing path", nil), true},
		{"validation", Wrap(ErrValidation, "columns", "resolve", "missing role", nil), true},
		{"locked", Wrap(ErrLocked, "campaign", "lock", "in use", nil), true},
		{"external", Wrap(ErrExternalTool, "generator", "generate", "http 500", nil), false},
		{"plain", errors.New("anything"), false},
	}
	for _, tc := range cases {
		if got := IsFatal(tc.err); got != tc.fatal {
			t.Errorf("%s: IsFatal = %v, want %v", tc.name, got, tc.fatal)
		}
	}
}
