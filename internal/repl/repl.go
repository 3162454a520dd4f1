package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/operation"
	"github.com/spf13/cast"
)

const (
	width  = 50
	prompt = ">>> Enter command: "
)

// Executor runs a calculator command
type Executor interface {
	ExecuteCommand(command string, args ...float64) calculator.Result
}

// REPL reads commands line by line and prints their results
type REPL struct {
	executor Executor
	in       *bufio.Scanner
	out      io.Writer
}

// New creates a REPL reading from in and writing to out
func New(executor Executor, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		executor: executor,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run processes commands until exit, end of input, or ctx is cancelled
func (r *REPL) Run(ctx context.Context) error {
	r.header("Welcome to the Interactive Calculator!")
	fmt.Fprintln(r.out, center("Type 'help' for a list of commands.")+"\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(r.out)
			return nil
		}

		if done := r.handle(r.in.Text()); done {
			return nil
		}
	}
}

// handle processes one input line and reports whether the session is over
func (r *REPL) handle(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	command := fields[0]
	args, err := parseArgs(fields[1:])
	if err != nil {
		slog.Debug("Rejected input", "line", line, "error", err)
		r.header("Error: Invalid input.")
		fmt.Fprintln(r.out, center("Please ensure all arguments are numbers.")+"\n")
		return false
	}

	result := r.executor.ExecuteCommand(command, args...)
	switch result.Kind {
	case calculator.ResultValue:
		r.header(fmt.Sprintf("Result: %v", result.Value))
	case calculator.ResultHistory:
		r.header("History:")
		for _, description := range result.Descriptions() {
			fmt.Fprintln(r.out, center(description))
		}
		fmt.Fprintln(r.out, strings.Repeat("=", width)+"\n")
	case calculator.ResultExit:
		r.header(result.Message)
		return true
	default:
		r.header(result.Message)
	}
	return false
}

func (r *REPL) header(text string) {
	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", width))
	fmt.Fprintln(r.out, center(text))
	fmt.Fprintln(r.out, strings.Repeat("=", width)+"\n")
}

// parseArgs converts operand tokens. "inf" and "nan" parse as floats but are rejected.
func parseArgs(tokens []string) ([]float64, error) {
	args := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		value, err := cast.ToFloat64E(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", operation.ErrInvalidOperand, err)
		}
		if err := operation.CheckFinite(value); err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return args, nil
}

// center pads text with spaces to the display width
func center(text string) string {
	padding := width - len(text)
	if padding <= 0 {
		return text
	}
	left := padding / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}
