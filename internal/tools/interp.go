package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"

	"gomate/internal/message"
)

// Interp executes ECMAScript one top-level statement at a time against a
// persistent environment. Bindings created by executed code survive
// across Run calls, so a session behaves like a REPL with memory between
// turns.
type Interp struct {
	vm   *goja.Runtime
	sink *printSink
	term io.Writer
}

// printSink is the write target bound to print and console.log. During an
// effect statement it points at a capture buffer owned by the current Run
// call; otherwise it points at the session terminal.
type printSink struct {
	w io.Writer
}

func (s *printSink) Write(p []byte) (int, error) { return s.w.Write(p) }

// NewInterp creates an interpreter whose print output outside capture
// scopes goes to term.
func NewInterp(term io.Writer) (*Interp, error) {
	i := &Interp{vm: goja.New(), sink: &printSink{w: term}, term: term}

	printFn := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for n, arg := range call.Arguments {
			parts[n] = arg.String()
		}
		fmt.Fprintln(i.sink, strings.Join(parts, " "))
		return goja.Undefined()
	}
	if err := i.vm.Set("print", printFn); err != nil {
		return nil, fmt.Errorf("failed to set print: %w", err)
	}
	console := i.vm.NewObject()
	if err := console.Set("log", printFn); err != nil {
		return nil, fmt.Errorf("failed to set console.log: %w", err)
	}
	if err := i.vm.Set("console", console); err != nil {
		return nil, fmt.Errorf("failed to set console: %w", err)
	}
	return i, nil
}

// Run executes source as an ordered sequence of top-level statements and
// returns the accumulated transcript. A parse failure returns a
// SyntaxError transcript without executing anything. The first statement
// failure is reported inline and stops execution. Given the same source
// and the same prior environment state the transcript is byte-identical.
func (i *Interp) Run(ctx context.Context, src string) string {
	src = strings.TrimSpace(src)

	prog, err := parser.ParseFile(nil, "", src, 0)
	if err != nil {
		return fmt.Sprintf("SyntaxError: %v", err)
	}

	stop := i.interruptOn(ctx)
	defer stop()

	var out strings.Builder
	for _, stmt := range prog.Body {
		text := renderStatement(src, stmt)
		out.WriteString(">>> " + text + "\n")

		var failure error
		if classify(stmt) == stmtEffect {
			captured, err := i.capture(func() error {
				_, err := i.vm.RunString(text)
				return err
			})
			if err != nil {
				failure = err
			} else if trimmed := strings.TrimSpace(captured); trimmed != "" {
				out.WriteString(trimmed + "\n")
			}
		} else {
			val, err := i.vm.RunString(text)
			if err != nil {
				failure = err
			} else if rendered := formatValue(val); rendered != "" {
				out.WriteString(rendered + "\n")
			}
		}

		if failure != nil {
			out.WriteString(errorLine(failure) + "\n")
			out.WriteString("Error during execution, aborting.")
			break
		}
	}
	return out.String()
}

// capture redirects print output into a buffer owned by this call and
// returns whatever the statement wrote.
func (i *Interp) capture(fn func() error) (string, error) {
	var buf bytes.Buffer
	prev := i.sink.w
	i.sink.w = &buf
	err := fn()
	i.sink.w = prev
	return buf.String(), err
}

// interruptOn aborts the running statement when ctx is cancelled. The
// returned stop function must be called before the next Run.
func (i *Interp) interruptOn(ctx context.Context) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			i.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()
	return func() {
		close(done)
		i.vm.ClearInterrupt()
	}
}

type stmtKind int

const (
	// stmtEffect statements run for their side effect on the environment.
	stmtEffect stmtKind = iota
	// stmtExpression statements are evaluated for a displayable value.
	stmtExpression
)

// classify tags a top-level statement by its grammatical shape alone;
// execution never influences the tag. Declarations, control flow and
// assignments are effects; everything else is an expression.
func classify(stmt ast.Statement) stmtKind {
	expr, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return stmtEffect
	}
	if _, assign := expr.Expression.(*ast.AssignExpression); assign {
		return stmtEffect
	}
	return stmtExpression
}

// renderStatement slices the statement's span out of the original source.
func renderStatement(src string, stmt ast.Statement) string {
	from, to := int(stmt.Idx0())-1, int(stmt.Idx1())-1
	if from < 0 || to > len(src) || from > to {
		return strings.TrimSpace(src)
	}
	text := strings.TrimSpace(src[from:to])
	return strings.TrimSpace(strings.TrimSuffix(text, ";"))
}

// formatValue renders an expression result for the transcript. Undefined,
// null and empty values render as "" and contribute no line.
func formatValue(val goja.Value) string {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return ""
	}
	switch v := val.Export().(type) {
	case string:
		if v == "" {
			return ""
		}
		return fmt.Sprintf("%q", v)
	case []any:
		items := make([]string, len(v))
		for n, item := range v {
			items[n] = fmt.Sprintf("%v", item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// errorLine renders a statement failure as "<ErrorKind>: <message>".
func errorLine(err error) string {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		line, _, _ := strings.Cut(ex.Value().String(), "\n")
		return line
	}
	line, _, _ := strings.Cut(err.Error(), "\n")
	return line
}

// ExecuteCode runs a block of source in the session's interpreter and
// returns one system reply carrying the full transcript.
func (s *Session) ExecuteCode(ctx context.Context, code string, ask bool) message.Message {
	code = strings.TrimSpace(code)
	if ask {
		s.printPreview()
		fmt.Fprintln(s.out, ">>> "+codeStyle.Render(code))
		if !s.confirm.Confirm(warnStyle.Render("Execute code? (Y/n) ")) {
			return message.New(message.RoleSystem, abortedReply)
		}
	}
	return message.New(message.RoleSystem, s.interp.Run(ctx, code))
}
