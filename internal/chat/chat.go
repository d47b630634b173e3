// Package chat runs the interactive conversation loop: user input, model
// replies, and execution of the actions those replies carry.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gomate/internal/message"
	"gomate/internal/summary"
	"gomate/internal/tools"
)

// Config holds the chat loop configuration.
type Config struct {
	// LogsDir is the folder where conversation logs are stored.
	LogsDir string

	// Command, when non-empty, is handled as a single user turn after
	// which the loop exits.
	Command string

	// In and Out default to stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// Chat wires the provider, the tool session, the summarizer and the log.
type Chat struct {
	cfg      Config
	provider Provider
	session  *tools.Session
	summ     *summary.Summarizer
	logm     *LogManager
	in       *bufio.Reader
	out      io.Writer
}

// New opens (or creates) today's conversation log under cfg.LogsDir and
// builds the loop.
func New(cfg Config, provider Provider, session *tools.Session, summ *summary.Summarizer) (*Chat, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	logPath := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
	logm, err := Load(logPath)
	if err != nil {
		return nil, err
	}
	return &Chat{
		cfg:      cfg,
		provider: provider,
		session:  session,
		summ:     summ,
		logm:     logm,
		in:       bufio.NewReader(cfg.In),
		out:      cfg.Out,
	}, nil
}

// Run drives the conversation until exit, EOF or error.
func (c *Chat) Run(ctx context.Context) error {
	if len(c.logm.Messages()) == 0 {
		for _, m := range InitialPrompt() {
			if err := c.logm.Append(m); err != nil {
				return err
			}
		}
	}
	c.logm.Print(c.out)
	fmt.Fprintln(c.out, dimStyle.Render("--- ^^^ past messages ^^^ ---"))
	fmt.Fprintln(c.out, dimStyle.Render("Session "+c.logm.SessionID()))

	// If the last message came from the assistant, a previous run may
	// have been interrupted before its actions ran; run them now. A run
	// that already executed them gets prompted again, and the
	// confirmation gate lets the user skip the replay.
	if msgs := c.logm.Messages(); len(msgs) > 0 && msgs[len(msgs)-1].Role == message.RoleAssistant {
		if err := c.executeReplies(ctx, msgs[len(msgs)-1]); err != nil {
			return err
		}
	}

	oneShot := c.cfg.Command != ""
	for {
		var inquiry string
		if oneShot {
			inquiry = strings.TrimSpace(c.cfg.Command)
			fmt.Fprintf(c.out, "%s: %s\n", userStyle.Render("User"), inquiry)
		} else {
			fmt.Fprint(c.out, userStyle.Render("User")+": ")
			line, err := c.in.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("failed to read input: %w", err)
			}
			inquiry = strings.TrimSpace(line)
			if inquiry == "" {
				continue
			}
		}

		if strings.HasPrefix(inquiry, ".") {
			quit, err := c.handleCommand(ctx, inquiry)
			if err != nil {
				return err
			}
			if quit || oneShot {
				return nil
			}
			continue
		}

		if err := c.logm.Append(message.New(message.RoleUser, inquiry)); err != nil {
			return err
		}

		reply, err := c.provider.Reply(ctx, c.logm.Messages())
		if err != nil {
			return fmt.Errorf("reply from %s failed: %w", c.provider.Name(), err)
		}
		fmt.Fprintf(c.out, "%s: %s\n", assistantStyle.Render("Assistant"), reply.Content)
		if err := c.logm.Append(reply); err != nil {
			return err
		}
		if err := c.executeReplies(ctx, reply); err != nil {
			return err
		}

		if oneShot {
			return nil
		}
	}
}

// executeReplies runs the actions embedded in an assistant message and
// logs every reply they produce.
func (c *Chat) executeReplies(ctx context.Context, msg message.Message) error {
	for reply := range c.session.ExecuteMessage(ctx, msg) {
		if err := c.appendReply(reply); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chat) appendReply(reply message.Message) error {
	fmt.Fprintf(c.out, "%s: %s\n", systemStyle.Render("System"), reply.Content)
	return c.logm.Append(reply)
}

// handleCommand runs a dot-command. It reports whether the loop should
// exit.
func (c *Chat) handleCommand(ctx context.Context, cmd string) (bool, error) {
	name, rest, _ := strings.Cut(strings.TrimPrefix(cmd, "."), " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "shell", "sh", "bash":
		return false, c.appendReply(c.session.ExecuteShell(ctx, rest, false))
	case "js":
		return false, c.appendReply(c.session.ExecuteCode(ctx, rest, false))
	case "load":
		return false, c.appendReply(c.session.ExecuteLoad(rest))
	case "summarize":
		return false, c.summarize(ctx)
	case "undo":
		return false, c.logm.Undo()
	case "exit":
		return true, nil
	case "help":
		c.printHelp()
		return false, nil
	default:
		fmt.Fprintf(c.out, "Unknown command %q\n", name)
		c.printHelp()
		return false, nil
	}
}

// summarize condenses the conversation so far into one system message.
func (c *Chat) summarize(ctx context.Context) error {
	if c.summ == nil {
		fmt.Fprintln(c.out, dimStyle.Render("Summarizer is not configured."))
		return nil
	}
	var b strings.Builder
	for _, m := range c.logm.Messages() {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	msg, err := c.summ.Summarize(ctx, message.New(message.RoleSystem, b.String()))
	if err != nil {
		fmt.Fprintf(c.out, "Failed to summarize: %v\n", err)
		return nil
	}
	return c.appendReply(msg)
}

func (c *Chat) printHelp() {
	fmt.Fprint(c.out, `Available commands:
  .shell <cmd>   Execute a shell command
  .js <code>     Execute code in the interpreter
  .load <file>   Load a file into the conversation
  .summarize     Summarize the conversation so far
  .undo          Undo the last message
  .help          Show this help message
  .exit          Exit the program
`)
}
