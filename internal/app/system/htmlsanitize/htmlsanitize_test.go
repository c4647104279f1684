package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/schoolhub/internal/app/system/htmlsanitize"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Picture day is Friday", "Picture day is Friday"},
		{"bold stripped", "<b>Important</b> notice", "Important notice"},
		{"nested markup", "<p>School closes <em>early</em></p>", "School closes early"},
		{"script removed with body", "Hello<script>alert('x')</script>", "Hello"},
		{"link text kept", `See <a href="https://example.com">the calendar</a>`, "See the calendar"},
		{"ampersand round-trips", "Juniors & Seniors", "Juniors & Seniors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Strip(tt.input)
			if got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
