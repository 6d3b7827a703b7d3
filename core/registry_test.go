package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinRegistry(t *testing.T) {
	r := BuiltinRegistry()

	if diff := cmp.Diff(BuiltinLevels(), r.Levels()); diff != "" {
		t.Errorf("Levels() mismatch (-want +got):\n%s", diff)
	}

	l, ok := r.Lookup("warn")
	if !ok || !l.Equal(WarnLevel) {
		t.Errorf("Lookup(warn) = %v, %v", l, ok)
	}

	if _, ok := r.Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}

	lowest, ok := r.Lowest()
	if !ok || !lowest.Equal(TraceLevel) {
		t.Errorf("Lowest() = %v, %v", lowest, ok)
	}
}

func TestRegistry_Define(t *testing.T) {
	r := BuiltinRegistry()

	audit, err := r.Define("Audit", 3)
	if err != nil {
		t.Fatalf("Define() error = %v", err)
	}

	got, ok := r.Lookup("AUDIT")
	if !ok || !got.Equal(audit) {
		t.Errorf("Lookup(AUDIT) = %v, %v", got, ok)
	}

	// Ordered by priority, after the existing tier-3 levels.
	levels := r.Levels()
	if !levels[6].Equal(audit) {
		t.Errorf("Levels()[6] = %v, want %v", levels[6], audit)
	}

	if _, err := r.Define("", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Define(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if len(r.Levels()) != len(levels) {
		t.Error("Failed Define() must not register anything")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry(InfoLevel)

	loud := MustDefineLevel("info", 9)
	if !r.Register(loud) {
		t.Fatal("Register() rejected a valid level")
	}
	if r.Register(Level{}) {
		t.Error("Register() accepted the zero Level")
	}

	levels := r.Levels()
	if len(levels) != 1 || !levels[0].Equal(loud) {
		t.Errorf("Levels() = %v, want [%v]", levels, loud)
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lowest(); ok {
		t.Error("Lowest() on empty registry should fail")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{"DEBUG", DebugLevel, true},
		{" info ", InfoLevel, true},
		{"todo", TodoLevel, true},
		{"fixme", FixmeLevel, true},
		{"warning", WarnLevel, true},
		{"xxx", XXXLevel, true},
		{"Error", ErrorLevel, true},
		{"FATAL", FatalLevel, true},
		{"loud", TraceLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if ok != tt.ok || !got.Equal(tt.want) {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
