package tools

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteShell_Success(t *testing.T) {
	s := newTestSession(t, true)
	got := s.ExecuteShell(context.Background(), "$ echo hello", false)

	want := "Ran command:\n```bash\necho hello\n```\n\n" +
		"Output:\n\n```bash\nhello\n```\n\n" +
		"Ran successfully"
	if got.Content != want {
		t.Errorf("report = %q, want %q", got.Content, want)
	}
}

func TestExecuteShell_NonzeroExitWithStderr(t *testing.T) {
	s := newTestSession(t, true)
	got := s.ExecuteShell(context.Background(), "echo oops >&2; exit 3", false)

	if strings.Contains(got.Content, "Output:") {
		t.Errorf("report %q has a stdout section for empty stdout", got.Content)
	}
	if !strings.Contains(got.Content, "Error:\n\n```bash\noops\n```") {
		t.Errorf("report %q missing stderr section", got.Content)
	}
	if !strings.HasSuffix(got.Content, "Return code: 3") {
		t.Errorf("report %q missing exit code line", got.Content)
	}
}

func TestExecuteShell_NoOutput(t *testing.T) {
	s := newTestSession(t, true)
	got := s.ExecuteShell(context.Background(), "true", false)

	if !strings.Contains(got.Content, "No output") {
		t.Errorf("report %q missing no-output marker", got.Content)
	}
	if !strings.HasSuffix(got.Content, "Ran successfully") {
		t.Errorf("report %q missing success line", got.Content)
	}
}

func TestExecuteShell_Declined(t *testing.T) {
	s := newTestSession(t, false)
	got := s.ExecuteShell(context.Background(), "echo hi", true)

	if got.Content != abortedReply {
		t.Errorf("content = %q, want %q", got.Content, abortedReply)
	}
}
