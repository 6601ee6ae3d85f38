package validate

import "testing"

func TestValidatorCollectsFieldErrors(t *testing.T) {
	v := New()
	v.Require("name", "  ", "name is required")
	v.MinLen("contact", "abc", 5, "contact too short")
	v.Enum("status", "broken", "invalid status", "good", "bad")

	errs := v.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	if errs["name"] != "name is required" {
		t.Errorf("unexpected name error: %q", errs["name"])
	}
}

func TestValidatorFirstErrorPerFieldWins(t *testing.T) {
	v := New()
	v.Require("name", "", "name is required")
	v.MinLen("name", "", 2, "name too short")

	if got := v.Errors()["name"]; got != "name is required" {
		t.Errorf("expected first message to win, got %q", got)
	}
}

func TestMinLenCountsCharactersNotBytes(t *testing.T) {
	v := New()
	v.MinLen("name", "ñ", 2, "name too short")
	v.MinLen("contact", "ñññ", 5, "contact too short")

	errs := v.Errors()
	if errs["name"] == "" {
		t.Error("expected a one-character name to fail a 2-character minimum")
	}
	if errs["contact"] == "" {
		t.Error("expected a three-character contact to fail a 5-character minimum")
	}

	v = New()
	v.MinLen("name", "Ñé", 2, "name too short")
	if !v.Valid() {
		t.Errorf("expected a two-character accented name to pass, got %v", v.Errors())
	}
}

func TestValidatorValidInput(t *testing.T) {
	v := New()
	v.Require("name", "Ana", "name is required")
	v.Enum("status", "good", "invalid status", "good", "bad")

	if !v.Valid() {
		t.Errorf("expected valid, got errors: %v", v.Errors())
	}
	if v.Errors() != nil {
		t.Error("expected nil errors for valid input")
	}
}

func TestMerge(t *testing.T) {
	a := Errors{"name": "from a", "card": "card error"}
	b := Errors{"name": "from b", "file": "file error"}

	merged := Merge(a, b)
	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
	if merged["name"] != "from a" {
		t.Errorf("expected a's message to win, got %q", merged["name"])
	}

	if Merge(nil, nil) != nil {
		t.Error("expected nil for two empty maps")
	}
}
