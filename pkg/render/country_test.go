package render

import (
	"strings"
	"testing"
)

func TestCountry(t *testing.T) {
	tests := []struct {
		code     string
		contains string
	}{
		{"zm", "Zambia"},
		{"de", "Germany"},
		{"CA", "Canada"},
	}

	for _, tt := range tests {
		got := Country(tt.code)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("Country(%q) = %q, want it to contain %q", tt.code, got, tt.contains)
		}
	}
}

func TestCountryInvalid(t *testing.T) {
	for _, code := range []string{"", "d", "deu", "zz9", "1a"} {
		if got := Country(code); got != "" {
			t.Errorf("Country(%q) = %q, want empty string", code, got)
		}
	}
}

func TestFlagEmoji(t *testing.T) {
	if got := flagEmoji("DE"); got != "\U0001F1E9\U0001F1EA" {
		t.Errorf("flagEmoji(DE) = %q", got)
	}
	if got := flagEmoji("d1"); got != "" {
		t.Errorf("flagEmoji(d1) = %q, want empty string", got)
	}
}
