package tools

import (
	"context"
	"fmt"
	"iter"
	"os"
	"strings"

	"gomate/internal/message"
)

const fenceMarker = "```"

// ExecuteMessage scans an assistant message for embedded actions and
// yields one system reply per action, in the order the actions appear in
// the text. The sequence is lazy and non-restartable: a later action is
// not examined until the replies (and confirmation prompts) of the
// earlier ones have been consumed. Messages from other roles yield
// nothing. An unterminated fenced block at end of text yields nothing.
func (s *Session) ExecuteMessage(ctx context.Context, msg message.Message) iter.Seq[message.Message] {
	return func(yield func(message.Message) bool) {
		if msg.Role != message.RoleAssistant {
			return
		}

		// pending accumulates the open fenced block; prev remembers the
		// most recently completed one, because a save directive appears
		// after the block it refers to.
		var pending, prev string

		for line := range strings.Lines(msg.Content) {
			line = strings.TrimSuffix(line, "\n")
			trimmed := strings.TrimSpace(line)

			if strings.HasPrefix(trimmed, "// save:") {
				path := strings.TrimSpace(strings.TrimPrefix(trimmed, "// save:"))
				if !yield(s.ExecuteSave(path, prev)) {
					return
				}
			}

			// Inline commands dispatch regardless of fence state.
			if reply, ok := s.executeLine(ctx, line); ok {
				if !yield(reply) {
					return
				}
			}

			isFence := strings.HasPrefix(line, fenceMarker)
			if isFence || pending != "" {
				pending += line + "\n"
				// A line that opens with the marker and, trimmed, also
				// ends with it closes the block. This handles single-line
				// and multi-line fences uniformly.
				if isFence && strings.HasSuffix(trimmed, fenceMarker) {
					prev = pending
					pending = ""
					if reply, ok := s.executeCodeblock(ctx, prev); ok {
						if !yield(reply) {
							return
						}
					}
				}
			}
		}
	}
}

// executeLine dispatches a single inline command line, if the line is one.
func (s *Session) executeLine(ctx context.Context, line string) (message.Message, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "terminal: "):
		return s.ExecuteShell(ctx, strings.TrimPrefix(line, "terminal: "), true), true
	case strings.HasPrefix(line, "js: "):
		return s.ExecuteCode(ctx, strings.TrimPrefix(line, "js: "), true), true
	case strings.HasPrefix(trimmed, "// load:"):
		return s.ExecuteLoad(strings.TrimSpace(strings.TrimPrefix(trimmed, "// load:"))), true
	case strings.HasPrefix(trimmed, "load:"):
		return s.ExecuteLoad(strings.TrimSpace(strings.TrimPrefix(trimmed, "load:"))), true
	}
	return message.Message{}, false
}

// executeCodeblock strips the fences and routes the block by its language
// tag. Unknown tags are reported on the terminal and skipped.
func (s *Session) executeCodeblock(ctx context.Context, block string) (message.Message, bool) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	lang := strings.TrimSpace(strings.TrimPrefix(lines[0], fenceMarker))
	var body string
	if len(lines) > 2 {
		body = strings.Join(lines[1:len(lines)-1], "\n")
	}

	switch lang {
	case "js", "javascript":
		return s.ExecuteCode(ctx, body, true), true
	case "terminal", "bash", "sh":
		return s.ExecuteShell(ctx, body, true), true
	default:
		fmt.Fprintln(s.out, dimStyle.Render(fmt.Sprintf("Skipping codeblock with unknown language tag %q", lang)))
		return message.Message{}, false
	}
}

// ExecuteLoad reads a file into a reply. A missing path is reported
// without prompting.
func (s *Session) ExecuteLoad(path string) message.Message {
	if _, err := os.Stat(path); err != nil {
		return message.New(message.RoleSystem,
			fmt.Sprintf("Tried to load file '%s', but it does not exist.", path))
	}
	if !s.confirm.Confirm("Load from " + path + "? (Y/n) ") {
		return message.New(message.RoleSystem, abortedReply)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return message.New(message.RoleSystem,
			fmt.Sprintf("Failed to load file '%s': %v", path, err))
	}
	return message.New(message.RoleSystem, fmt.Sprintf("# filename: %s\n\n%s", path, data))
}

// ExecuteSave writes the previously completed codeblock, fences stripped,
// to path after a preview and confirmation.
func (s *Session) ExecuteSave(path, block string) message.Message {
	if block == "" {
		return message.New(message.RoleSystem, "No codeblock to save.")
	}

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	var content string
	if len(lines) > 2 {
		content = strings.Join(lines[1:len(lines)-1], "\n")
	}

	s.printPreview()
	fmt.Fprintln(s.out, "# filename: "+path)
	fmt.Fprintln(s.out, indent(content, "> "))
	if !s.confirm.Confirm("Save to " + path + "? (Y/n) ") {
		return message.New(message.RoleSystem, abortedReply)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return message.New(message.RoleSystem,
			fmt.Sprintf("Failed to save to %s: %v", path, err))
	}
	return message.New(message.RoleSystem, "Saved to "+path)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
