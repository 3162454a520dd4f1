package calculator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculation"
	"github.com/averycrespi/calc-mcp/internal/history"
	"github.com/averycrespi/calc-mcp/internal/operation"
)

var (
	// ErrInvalidArgumentCount is returned when an arithmetic command does not get exactly two operands
	ErrInvalidArgumentCount = errors.New("invalid number of arguments")
	// ErrUnknownCommand is returned for commands outside the command table
	ErrUnknownCommand = errors.New("unknown command")
)

// Command names
const (
	CommandAdd      = "add"
	CommandSubtract = "subtract"
	CommandMultiply = "multiply"
	CommandDivide   = "divide"
	CommandHistory  = "history"
	CommandUndo     = "undo"
	CommandClear    = "clear"
	CommandSave     = "save"
	CommandLoad     = "load"
	CommandHelp     = "help"
	CommandExit     = "exit"
	CommandQuit     = "quit"
)

var operations = map[string]operation.Operation{
	CommandAdd:      operation.Addition,
	CommandSubtract: operation.Subtraction,
	CommandMultiply: operation.Multiplication,
	CommandDivide:   operation.Division,
}

const helpText = `Available commands:

Operation Commands:
- add: Add two numbers
- subtract: Subtract the second number from the first
- multiply: Multiply two numbers
- divide: Divide the first number by the second

History Commands:
- undo: Undo the last calculation
- clear: Clear the calculation history
- history: Read the calculation history

File Commands:
- save: Save the current history to a file
- load: Load history from a file

General Commands:
- help: Display this help message
- exit/quit: Exit the calculator`

const exitMessage = "Exiting the calculator. Goodbye!"

// Calculator routes commands to operations and history actions
type Calculator struct {
	history     *history.History
	historyFile string
	logger      *slog.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithHistory uses an existing history instead of an empty one
func WithHistory(h *history.History) Option {
	return func(c *Calculator) {
		c.history = h
	}
}

// WithHistoryFile sets the file used by the save and load commands
func WithHistoryFile(path string) Option {
	return func(c *Calculator) {
		if path != "" {
			c.historyFile = path
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a calculator with an empty history that shares the calculator's logger
func New(opts ...Option) *Calculator {
	c := &Calculator{
		historyFile: history.DefaultFile,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = history.New(history.WithLogger(c.logger))
	}
	return c
}

// History returns the calculator's history
func (c *Calculator) History() *history.History {
	return c.history
}

// HistoryFile returns the file used by save and load
func (c *Calculator) HistoryFile() string {
	return c.historyFile
}

// Help returns the command reference
func (c *Calculator) Help() string {
	return helpText
}

// IsOperation reports whether command is an arithmetic command
func IsOperation(command string) bool {
	_, ok := operations[command]
	return ok
}

// ExecuteCommand runs command with the given operands. Failures are reported
// through the returned Result and never as panics.
func (c *Calculator) ExecuteCommand(command string, args ...float64) Result {
	c.logger.Debug("Executing command", "command", command, "args", args)

	if op, ok := operations[command]; ok {
		if len(args) != 2 {
			return errorResult(fmt.Errorf("%w: %s expects 2, got %d", ErrInvalidArgumentCount, command, len(args)))
		}
		return c.evaluate(op, args[0], args[1])
	}

	switch command {
	case CommandHistory:
		return Result{Kind: ResultHistory, History: c.history.List()}
	case CommandUndo:
		return messageResult(c.history.Undo())
	case CommandClear:
		return messageResult(c.history.Clear())
	case CommandSave:
		return c.save(c.historyFile)
	case CommandLoad:
		return c.load(c.historyFile)
	case CommandHelp:
		return messageResult(helpText)
	case CommandExit, CommandQuit:
		return Result{Kind: ResultExit, Message: exitMessage}
	default:
		return errorResult(fmt.Errorf("%w: %q", ErrUnknownCommand, command))
	}
}

// Evaluate runs an arithmetic command on untyped operands, as received from
// JSON front ends. Non-numeric operands produce an invalid input error.
func (c *Calculator) Evaluate(command string, a, b any) Result {
	op, ok := operations[command]
	if !ok {
		return errorResult(fmt.Errorf("%w: %q", ErrUnknownCommand, command))
	}
	return c.evaluate(op, a, b)
}

// evaluate validates the operands, then runs op and records the calculation on success
func (c *Calculator) evaluate(op operation.Operation, a, b any) Result {
	x, y, err := operation.ToNumbers(a, b)
	if err != nil {
		c.logger.Debug("Rejected operands", "operation", op.Name(), "error", err)
		return errorResult(err)
	}

	calc := calculation.New(op, x, y)
	value, err := calc.Execute()
	if err != nil {
		c.logger.Debug("Calculation failed", "operation", op.Name(), "a", x, "b", y, "error", err)
		return errorResult(err)
	}

	c.history.Add(calc)
	return valueResult(calc, value)
}

func (c *Calculator) save(path string) Result {
	if err := c.history.Write(path); err != nil {
		return Result{Kind: ResultError, Message: history.SaveErrorMessage(path), Err: err}
	}
	return messageResult(history.SavedMessage(path))
}

func (c *Calculator) load(path string) Result {
	if err := c.history.Read(path); err != nil {
		return Result{Kind: ResultError, Message: history.LoadErrorMessage(path, err), Err: err}
	}
	return messageResult(history.LoadedMessage(path))
}

// ErrorMessage converts a dispatch or operation error into the text shown to users
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, operation.ErrDivisionByZero):
		return "Error: Division by zero is undefined."
	case errors.Is(err, operation.ErrInvalidOperand):
		return "Error: Invalid input. Please ensure all arguments are numbers."
	case errors.Is(err, ErrInvalidArgumentCount):
		return "Error: Invalid number of arguments. Please provide two numbers."
	case errors.Is(err, ErrUnknownCommand):
		return "Error: Unknown command."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
