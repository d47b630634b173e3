package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"gomate/internal/message"
)

// ExecuteShell runs a command through the shell and returns one system
// reply reporting stdout, stderr and the exit status. The command blocks
// until the child exits or ctx is cancelled.
func (s *Session) ExecuteShell(ctx context.Context, cmd string, ask bool) message.Message {
	cmd = strings.TrimSpace(cmd)
	cmd = strings.TrimPrefix(cmd, "$ ")

	if ask {
		s.printPreview()
		fmt.Fprintln(s.out, "$ "+codeStyle.Render(cmd))
		if !s.confirm.Confirm(warnStyle.Render("Execute command in terminal? (Y/n) ")) {
			return message.New(message.RoleSystem, abortedReply)
		}
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	exitCode := 0
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return message.New(message.RoleSystem,
				fmt.Sprintf("Failed to run command:\n```bash\n%s\n```\n\n%v", cmd, err))
		}
	}

	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	var b strings.Builder
	fmt.Fprintf(&b, "Ran command:\n```bash\n%s\n```\n\n", cmd)
	if out != "" {
		fmt.Fprintf(&b, "Output:\n\n```bash\n%s\n```\n\n", out)
	}
	if errOut != "" {
		fmt.Fprintf(&b, "Error:\n\n```bash\n%s\n```\n\n", errOut)
	}
	if out == "" && errOut == "" {
		b.WriteString("No output\n\n")
	}
	if exitCode != 0 {
		fmt.Fprintf(&b, "Return code: %d", exitCode)
	} else {
		b.WriteString("Ran successfully")
	}
	return message.New(message.RoleSystem, b.String())
}
