package chat

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"gomate/internal/message"
)

// LogManager persists the conversation as one JSON message per line and
// supports undoing the most recent entry.
type LogManager struct {
	path      string
	sessionID string
	log       []message.Message
}

// Load reads an existing log file; a missing file starts an empty log.
func Load(path string) (*LogManager, error) {
	lm := &LogManager{path: path, sessionID: uuid.New().String()}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lm, nil
		}
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var m message.Message
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			// Tolerate a truncated trailing line from a crashed run.
			continue
		}
		lm.log = append(lm.log, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	return lm, nil
}

// SessionID identifies this process's run of the conversation.
func (lm *LogManager) SessionID() string { return lm.sessionID }

// Messages returns the current conversation. The caller must not mutate
// the returned slice.
func (lm *LogManager) Messages() []message.Message { return lm.log }

// Append persists a message and then adds it to the in-memory log, so a
// write failure leaves memory and disk in agreement.
func (lm *LogManager) Append(m message.Message) error {
	f, err := os.OpenFile(lm.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to append to log %s: %w", lm.path, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("failed to append to log %s: %w", lm.path, err)
	}
	lm.log = append(lm.log, m)
	return nil
}

// Undo removes the most recent message and rewrites the file.
func (lm *LogManager) Undo() error {
	if len(lm.log) == 0 {
		return nil
	}
	lm.log = lm.log[:len(lm.log)-1]
	return lm.rewrite()
}

// rewrite persists the whole log with an atomic rename.
func (lm *LogManager) rewrite() error {
	tmp := lm.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to rewrite log %s: %w", lm.path, err)
	}
	enc := json.NewEncoder(f)
	for _, m := range lm.log {
		if err := enc.Encode(m); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("failed to rewrite log %s: %w", lm.path, err)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rewrite log %s: %w", lm.path, err)
	}
	return os.Rename(tmp, lm.path)
}

// Print renders the conversation with per-role colors.
func (lm *LogManager) Print(w io.Writer) {
	for _, m := range lm.log {
		fmt.Fprintf(w, "%s: %s\n", roleStyle(m.Role).Render(roleLabel(m.Role)), m.Content)
	}
}
