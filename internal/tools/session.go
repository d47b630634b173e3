// Package tools executes the actions embedded in assistant messages:
// fenced code blocks, inline shell and interpreter commands, and file
// load/save directives. Every side-effecting action is gated behind a
// confirmation prompt, and every outcome is reported as a system message.
package tools

import (
	"fmt"
	"io"
	"os"
)

const abortedReply = "Aborted, user chose not to run command."

// Session executes actions against a persistent evaluation environment.
// Each session owns its own environment; execution within a session is
// single-threaded, so concurrent callers need one session each.
type Session struct {
	interp  *Interp
	confirm Confirmer
	out     io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithConfirmer sets the confirmation gate. Defaults to reading stdin.
func WithConfirmer(c Confirmer) Option {
	return func(s *Session) { s.confirm = c }
}

// WithOutput sets the terminal writer for previews, prompts and
// diagnostics. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// NewSession builds an execution session with a fresh evaluation
// environment.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	if s.confirm == nil {
		s.confirm = NewStdinConfirmer(os.Stdin, s.out)
	}
	interp, err := NewInterp(s.out)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize interpreter: %w", err)
	}
	s.interp = interp
	return s, nil
}

func (s *Session) printPreview() {
	fmt.Fprintln(s.out, previewStyle.Render("Preview"))
}
