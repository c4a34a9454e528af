package controls

import (
	"testing"
)

func TestDefaultBindings(t *testing.T) {
	b, err := NewBindings(DefaultKeyNames())
	if err != nil {
		t.Fatalf("NewBindings: %v", err)
	}

	tests := []struct {
		key  string
		want Action
	}{
		{"W", Forward},
		{"s", Back},
		{"Escape", Quit},
		{"q", Quit},
		{"Left Shift", Zoom},
		{"F12", Screenshot},
		{"P", None},
	}
	for _, tt := range tests {
		if got := b.Lookup(tt.key); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestBindingsRejectConflicts(t *testing.T) {
	_, err := NewBindings(map[string][]string{
		"forward": {"W"},
		"back":    {"w"},
	})
	if err == nil {
		t.Error("expected conflict error, got nil")
	}
}

func TestBindingsRejectUnknownAction(t *testing.T) {
	if _, err := NewBindings(map[string][]string{"jump": {"J"}}); err == nil {
		t.Error("expected unknown action error, got nil")
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for a := Forward; a < actionCount; a++ {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a, err)
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v", a, got)
		}
	}
	if _, err := ParseAction("none"); err == nil {
		t.Error("none should not parse")
	}
}

func TestKeys(t *testing.T) {
	var k Keys
	k.Set(Forward, true)
	k.Set(None, true)

	if !k.Held(Forward) {
		t.Error("Forward should be held")
	}
	if k.Held(None) {
		t.Error("None is never held")
	}

	k.Set(Forward, false)
	if k.Held(Forward) {
		t.Error("Forward should be released")
	}

	k.Set(Thrust, true)
	k.Clear()
	if k.Held(Thrust) {
		t.Error("Clear should release everything")
	}
}
