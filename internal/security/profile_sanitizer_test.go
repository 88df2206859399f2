package security

import "testing"

func TestSanitizeField(t *testing.T) {
	sanitizer := NewProfileSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Ann Example", "Ann Example"},
		{"empty string", "", ""},
		{"strips tags keeps text", "Ann <b>Example</b>", "Ann Example"},
		{"removes script entirely", `<script>alert("x")</script>Ann`, "Ann"},
		{"strips img tag", `Ann<img src="x" onerror="alert(1)">`, "Ann"},
		{"trims whitespace", "  Ann Example  ", "Ann Example"},
		{"email preserved", "ann@example.com", "ann@example.com"},
		{"url preserved", "https://example.com/photo.jpg", "https://example.com/photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizer.SanitizeField(tt.input); got != tt.want {
				t.Errorf("SanitizeField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeField_Idempotent(t *testing.T) {
	sanitizer := NewProfileSanitizer()

	input := "Ann <b>Example</b>"
	once := sanitizer.SanitizeField(input)
	twice := sanitizer.SanitizeField(once)

	if once != twice {
		t.Errorf("sanitize not idempotent: first %q, second %q", once, twice)
	}
}
