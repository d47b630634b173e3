package chat

import (
	"os"
	"path/filepath"
	"testing"

	"gomate/internal/message"
)

func TestLogManager_AppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")

	lm, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	msgs := []message.Message{
		message.New(message.RoleSystem, "hello"),
		message.New(message.RoleUser, "hi\nthere"),
	}
	for _, m := range msgs {
		if err := lm.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Messages()
	if len(got) != len(msgs) {
		t.Fatalf("reloaded %d messages, want %d", len(got), len(msgs))
	}
	for i := range msgs {
		if got[i] != msgs[i] {
			t.Errorf("message %d = %v, want %v", i, got[i], msgs[i])
		}
	}
}

func TestLogManager_Undo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")

	lm, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := lm.Append(message.New(message.RoleUser, "keep")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := lm.Append(message.New(message.RoleUser, "drop")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := lm.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Messages()
	if len(got) != 1 || got[0].Content != "keep" {
		t.Errorf("after undo log = %v, want only the kept message", got)
	}
}

func TestLogManager_UndoEmptyLog(t *testing.T) {
	lm, err := Load(filepath.Join(t.TempDir(), "chat.log"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := lm.Undo(); err != nil {
		t.Errorf("Undo on empty log: %v", err)
	}
}

func TestLogManager_ToleratesTruncatedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")
	content := `{"role":"user","content":"ok"}` + "\n" + `{"role":"user","con`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lm, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := lm.Messages(); len(got) != 1 || got[0].Content != "ok" {
		t.Errorf("log = %v, want only the intact message", got)
	}
}

func TestLogManager_AppendWriteFailureLeavesMemoryUnchanged(t *testing.T) {
	// A path inside a directory that does not exist makes the file write
	// fail, so the message must not reach the in-memory log either.
	path := filepath.Join(t.TempDir(), "missing", "chat.log")
	lm, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := lm.Append(message.New(message.RoleUser, "lost")); err == nil {
		t.Fatal("Append into missing directory succeeded")
	}
	if got := lm.Messages(); len(got) != 0 {
		t.Errorf("log = %v, want empty after failed append", got)
	}
}

func TestLogManager_SessionIDsDiffer(t *testing.T) {
	dir := t.TempDir()
	a, err := Load(filepath.Join(dir, "a.log"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := Load(filepath.Join(dir, "b.log"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.SessionID() == b.SessionID() {
		t.Errorf("sessions share an ID")
	}
}
