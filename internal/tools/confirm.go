package tools

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers yes/no prompts before a side-effecting action runs.
// Implementations must treat empty input as affirmative.
type Confirmer interface {
	Confirm(prompt string) bool
}

// StdinConfirmer reads one answer line per prompt from an input stream.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer builds a confirmer that prints prompts to out and
// reads answers from in.
func NewStdinConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt and reads one line. Empty input, "y" and
// "yes" (case-insensitive) are affirmative; anything else, including a
// read failure with no input, is a decline.
func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	}
	return false
}

// Fixed always answers the same way. Used by tests and non-interactive
// callers.
type Fixed bool

// Confirm returns the fixed answer.
func (f Fixed) Confirm(string) bool { return bool(f) }
