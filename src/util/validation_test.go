package util

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"Foo@example.com", "foo@example.com"},
		{"  USER@EXAMPLE.COM  ", "user@example.com"},
		{"already@lower.io", "already@lower.io"},
	}

	for _, tt := range tests {
		got := NormalizeEmail(tt.email)
		if got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
		// A stored address must match itself when looked up again.
		if NormalizeEmail(got) != got {
			t.Errorf("NormalizeEmail(%q) is not idempotent", tt.email)
		}
		if !ValidateEmail(got) {
			t.Errorf("ValidateEmail(%q) = false after normalization", got)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"user_name%x@example.io", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user@example.c", false},
		{"user @example.com", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"abc", true},
		{"a_long_but_acceptable_username", true},
		{"ab", false},
		{"", false},
		{"this_username_is_way_too_long_to_pass", false},
	}

	for _, tt := range tests {
		if got := ValidateUsername(tt.username); got != tt.want {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcdef1!", true},
		{"too short", "Ab1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no uppercase", "abcdef1!", false},
		{"no digit", "Abcdefg!", false},
		{"no special", "Abcdefg1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{1, true},
		{3, true},
		{5, true},
		{0, false},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := ValidateRating(tt.rating); got != tt.want {
			t.Errorf("ValidateRating(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}
