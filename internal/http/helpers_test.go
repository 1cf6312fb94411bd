package http

import (
	"strings"
	"testing"

	"tinocontrol/internal/core"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"tab\tok", "tab\tok"},
		{"ctrl\x00\x01chars", "ctrlchars"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Fatalf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := formatShortDate(core.NewDate(2024, 3, 5)); got != "05/03/2024" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if !strings.HasPrefix(a, "req_") || a == b {
		t.Fatalf("ids: %q %q", a, b)
	}
}
