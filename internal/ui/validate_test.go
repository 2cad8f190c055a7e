package ui

import (
	"strings"
	"testing"
	"time"
)

func TestRequired(t *testing.T) {
	loc := NewLocalization()
	validator := Required(loc)

	if err := validator(""); err == nil {
		t.Error("Expected error for empty input")
	}
	if err := validator("   "); err == nil {
		t.Error("Expected error for whitespace input")
	}
	if err := validator("value"); err != nil {
		t.Errorf("Expected no error for non-empty input, got %v", err)
	}
}

func TestMinLength(t *testing.T) {
	loc := NewLocalization()
	validator := MinLength(loc, 6)

	if err := validator("short"); err == nil {
		t.Error("Expected error for input shorter than minimum")
	}
	if err := validator("longenough"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	// Empty input passes so the rule composes with Required
	if err := validator(""); err != nil {
		t.Errorf("Expected empty input to pass, got %v", err)
	}
	// Characters, not bytes: three two-byte runes are still too short
	if err := validator("ááá"); err == nil {
		t.Error("Expected error for three accented characters against a 6-character minimum")
	}
	if err := validator("áéíóúñ"); err != nil {
		t.Errorf("Expected six accented characters to pass, got %v", err)
	}
}

func TestMaxLength(t *testing.T) {
	loc := NewLocalization()
	validator := MaxLength(loc, 100)

	if err := validator(strings.Repeat("x", 100)); err != nil {
		t.Errorf("Expected input at the limit to pass, got %v", err)
	}
	if err := validator(strings.Repeat("x", 101)); err == nil {
		t.Error("Expected error for input over the limit")
	}
	// Characters, not bytes: 100 accented characters stay within the limit
	if err := validator(strings.Repeat("á", 100)); err != nil {
		t.Errorf("Expected accented input at the limit to pass, got %v", err)
	}
	if err := validator(strings.Repeat("á", 101)); err == nil {
		t.Error("Expected error for accented input over the limit")
	}
}

func TestEmailFormat(t *testing.T) {
	loc := NewLocalization()
	validator := EmailFormat(loc)

	tests := []struct {
		input string
		valid bool
	}{
		{"a@example.com", true},
		{"a.b+c@sub.example.org", true},
		{"", true}, // composes with Required
		{"not-an-email", false},
		{"a@b", false},
		{"a b@example.com", false},
	}

	for _, test := range tests {
		err := validator(test.input)
		if test.valid && err != nil {
			t.Errorf("EmailFormat(%q) unexpected error: %v", test.input, err)
		}
		if !test.valid && err == nil {
			t.Errorf("EmailFormat(%q) expected error, got nil", test.input)
		}
	}
}

func TestDueDateNotPast(t *testing.T) {
	loc := NewLocalization()
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	validator := DueDateNotPast(loc, now)

	if err := validator("2024-06-14"); err == nil {
		t.Error("Expected error for yesterday")
	}
	if err := validator("2024-06-15"); err != nil {
		t.Errorf("Expected today to pass, got %v", err)
	}
	if err := validator("2024-06-16"); err != nil {
		t.Errorf("Expected tomorrow to pass, got %v", err)
	}
	// Unparseable dates are someone else's problem
	if err := validator("bad"); err != nil {
		t.Errorf("Expected unparseable date to pass, got %v", err)
	}
}

func TestChain(t *testing.T) {
	loc := NewLocalization()
	validator := Chain(Required(loc), MinLength(loc, 6))

	if err := validator(""); err == nil {
		t.Error("Expected required failure")
	}
	if err := validator("abc"); err == nil {
		t.Error("Expected min-length failure")
	}
	if err := validator("abcdef"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		level    int
	}{
		{"", StrengthNone},
		{"abc", StrengthWeak},
		{"abcdef", StrengthWeak},
		{"abcdef1", StrengthMedium},
		{"Abcdef12", StrengthMedium},
		{"Abcdef12345!", StrengthStrong},
	}

	for _, test := range tests {
		level, _ := PasswordStrength(test.password)
		if level != test.level {
			t.Errorf("PasswordStrength(%q) = %d, expected %d", test.password, level, test.level)
		}
	}
}
