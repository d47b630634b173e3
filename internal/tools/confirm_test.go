package tools

import (
	"io"
	"strings"
	"testing"
)

func TestStdinConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"yes", "yes\n", true},
		{"empty defaults to yes", "\n", true},
		{"padded yes", "  yes  \n", true},
		{"n", "n\n", false},
		{"anything else", "nah\n", false},
		{"closed input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewStdinConfirmer(strings.NewReader(tt.input), io.Discard)
			if got := c.Confirm("ok? "); got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStdinConfirmer_PrintsPrompt(t *testing.T) {
	var out strings.Builder
	c := NewStdinConfirmer(strings.NewReader("y\n"), &out)
	c.Confirm("Save to f.txt? (Y/n) ")
	if out.String() != "Save to f.txt? (Y/n) " {
		t.Errorf("prompt = %q", out.String())
	}
}
