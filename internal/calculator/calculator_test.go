package calculator

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/history"
	"github.com/averycrespi/calc-mcp/internal/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		name            string
		command         string
		args            []float64
		expectedKind    ResultKind
		expectedValue   float64
		expectedMessage string
	}{
		{name: "add", command: "add", args: []float64{1, 2}, expectedKind: ResultValue, expectedValue: 3},
		{name: "subtract", command: "subtract", args: []float64{5, 3}, expectedKind: ResultValue, expectedValue: 2},
		{name: "multiply", command: "multiply", args: []float64{2, 4}, expectedKind: ResultValue, expectedValue: 8},
		{name: "divide", command: "divide", args: []float64{8, 2}, expectedKind: ResultValue, expectedValue: 4},
		{
			name:            "divide by zero",
			command:         "divide",
			args:            []float64{1, 0},
			expectedKind:    ResultError,
			expectedMessage: "Error: Division by zero is undefined.",
		},
		{
			name:            "unknown command",
			command:         "unknown",
			args:            []float64{1, 2},
			expectedKind:    ResultError,
			expectedMessage: "Error: Unknown command.",
		},
		{
			name:            "commands are case sensitive",
			command:         "ADD",
			args:            []float64{1, 2},
			expectedKind:    ResultError,
			expectedMessage: "Error: Unknown command.",
		},
		{
			name:            "one argument",
			command:         "add",
			args:            []float64{1},
			expectedKind:    ResultError,
			expectedMessage: "Error: Invalid number of arguments. Please provide two numbers.",
		},
		{
			name:            "no arguments",
			command:         "multiply",
			expectedKind:    ResultError,
			expectedMessage: "Error: Invalid number of arguments. Please provide two numbers.",
		},
		{
			name:            "three arguments",
			command:         "subtract",
			args:            []float64{1, 2, 3},
			expectedKind:    ResultError,
			expectedMessage: "Error: Invalid number of arguments. Please provide two numbers.",
		},
		{
			name:            "exit",
			command:         "exit",
			expectedKind:    ResultExit,
			expectedMessage: "Exiting the calculator. Goodbye!",
		},
		{
			name:            "quit",
			command:         "quit",
			expectedKind:    ResultExit,
			expectedMessage: "Exiting the calculator. Goodbye!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New()
			result := calc.ExecuteCommand(tt.command, tt.args...)

			assert.Equal(t, tt.expectedKind, result.Kind)
			if tt.expectedKind == ResultValue {
				assert.Equal(t, tt.expectedValue, result.Value)
			} else {
				assert.Equal(t, tt.expectedMessage, result.Message)
				assert.Equal(t, tt.expectedMessage, result.String())
			}
		})
	}
}

func TestExecuteCommandErrors(t *testing.T) {
	calc := New()

	assert.ErrorIs(t, calc.ExecuteCommand("divide", 1, 0).Err, operation.ErrDivisionByZero)
	assert.ErrorIs(t, calc.ExecuteCommand("add", 1).Err, ErrInvalidArgumentCount)
	assert.ErrorIs(t, calc.ExecuteCommand("foo").Err, ErrUnknownCommand)
	assert.Zero(t, calc.History().Len(), "failed commands are not recorded")
}

func TestAddScenario(t *testing.T) {
	calc := New()

	result := calc.ExecuteCommand("add", 5, 3)

	require.Equal(t, ResultValue, result.Kind)
	require.NotNil(t, result.Calculation)
	assert.Equal(t, "5 addition 3 = 8", result.Calculation.Describe())
	assert.Equal(t, "8", result.String())
}

func TestDivideIsFloat(t *testing.T) {
	result := New().ExecuteCommand("divide", 1, 4)
	assert.Equal(t, 0.25, result.Value)
}

func TestReadHistory(t *testing.T) {
	calc := New()
	calc.ExecuteCommand("add", 5, 3)
	calc.ExecuteCommand("subtract", 10, 4)
	calc.ExecuteCommand("multiply", 2, 3)

	result := calc.ExecuteCommand("history")

	require.Equal(t, ResultHistory, result.Kind)
	assert.Equal(t, []string{
		"5 addition 3 = 8",
		"10 subtraction 4 = 6",
		"2 multiplication 3 = 6",
	}, result.Descriptions())
	assert.Equal(t, "5 addition 3 = 8\n10 subtraction 4 = 6\n2 multiplication 3 = 6", result.String())
}

func TestUndoAndClear(t *testing.T) {
	calc := New()
	calc.ExecuteCommand("add", 5, 3)
	calc.ExecuteCommand("divide", 9, 3)

	result := calc.ExecuteCommand("undo")
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "Undone: 9 division 3 = 3", result.Message)
	assert.Equal(t, 1, calc.History().Len())

	result = calc.ExecuteCommand("clear")
	assert.Equal(t, "History cleared.", result.Message)
	assert.Zero(t, calc.History().Len())

	result = calc.ExecuteCommand("undo")
	assert.Equal(t, "No history to undo.", result.Message)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	calc := New(WithHistoryFile(path))
	calc.ExecuteCommand("add", 5, 3)
	calc.ExecuteCommand("multiply", 2, 3)

	result := calc.ExecuteCommand("save")
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "History saved to "+path+".", result.Message)

	calc.ExecuteCommand("clear")
	result = calc.ExecuteCommand("load")
	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, "History loaded from "+path+".", result.Message)
	assert.Equal(t, []string{"5 addition 3 = 8", "2 multiplication 3 = 6"}, calc.ExecuteCommand("history").Descriptions())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	calc := New(WithHistoryFile(path))

	result := calc.ExecuteCommand("load")

	assert.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "Error: "+path+" not found.", result.Message)
	assert.ErrorIs(t, result.Err, history.ErrFileNotFound)
}

func TestSaveFailureCarriesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "calc.json")
	calc := New(WithHistoryFile(path))

	result := calc.ExecuteCommand("save")

	assert.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "Error: Could not save history to "+path+".", result.Message)
	assert.ErrorIs(t, result.Err, history.ErrIOFailure)
}

func TestNonFiniteOperandsKeepHistorySaveable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	calc := New(WithHistoryFile(path))
	calc.ExecuteCommand("add", 1, 2)

	for _, args := range [][]float64{
		{math.Inf(1), 1},
		{1, math.Inf(-1)},
		{math.NaN(), 2},
	} {
		result := calc.ExecuteCommand("add", args...)
		assert.Equal(t, ResultError, result.Kind)
		assert.Equal(t, "Error: Invalid input. Please ensure all arguments are numbers.", result.Message)
		assert.ErrorIs(t, result.Err, operation.ErrInvalidOperand)
	}

	result := calc.Evaluate("multiply", math.Inf(1), 2)
	assert.ErrorIs(t, result.Err, operation.ErrInvalidOperand)

	assert.Equal(t, 1, calc.History().Len())
	assert.Equal(t, "History saved to "+path+".", calc.ExecuteCommand("save").Message)
}

func TestHelp(t *testing.T) {
	calc := New()
	result := calc.ExecuteCommand("help")

	assert.Equal(t, ResultMessage, result.Kind)
	assert.Equal(t, calc.Help(), result.Message)
	assert.Contains(t, result.Message, "- divide: Divide the first number by the second")
	assert.Contains(t, result.Message, "- exit/quit: Exit the calculator")
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name            string
		command         string
		a, b            any
		expectedKind    ResultKind
		expectedValue   float64
		expectedMessage string
	}{
		{name: "ints", command: "add", a: 1, b: 2, expectedKind: ResultValue, expectedValue: 3},
		{name: "floats", command: "divide", a: 1.0, b: 8.0, expectedKind: ResultValue, expectedValue: 0.125},
		{
			name:            "string operand",
			command:         "add",
			a:               "1",
			b:               2,
			expectedKind:    ResultError,
			expectedMessage: "Error: Invalid input. Please ensure all arguments are numbers.",
		},
		{
			name:            "nil operand",
			command:         "multiply",
			a:               2,
			b:               nil,
			expectedKind:    ResultError,
			expectedMessage: "Error: Invalid input. Please ensure all arguments are numbers.",
		},
		{
			name:            "division by zero",
			command:         "divide",
			a:               1,
			b:               0,
			expectedKind:    ResultError,
			expectedMessage: "Error: Division by zero is undefined.",
		},
		{
			name:            "history is not arithmetic",
			command:         "history",
			a:               1,
			b:               2,
			expectedKind:    ResultError,
			expectedMessage: "Error: Unknown command.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().Evaluate(tt.command, tt.a, tt.b)

			assert.Equal(t, tt.expectedKind, result.Kind)
			if tt.expectedKind == ResultValue {
				assert.Equal(t, tt.expectedValue, result.Value)
			} else {
				assert.Equal(t, tt.expectedMessage, result.Message)
			}
		})
	}
}

func TestEvaluateInvalidOperandError(t *testing.T) {
	result := New().Evaluate("subtract", 1, "x")
	assert.ErrorIs(t, result.Err, operation.ErrInvalidOperand)
}

func TestOptions(t *testing.T) {
	h := history.New()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	calc := New(WithHistory(h), WithHistoryFile(""), WithLogger(logger))
	calc.ExecuteCommand("add", 1, 1)

	assert.Same(t, h, calc.History())
	assert.Equal(t, history.DefaultFile, calc.HistoryFile())
	assert.Equal(t, 1, h.Len())
	assert.Contains(t, buf.String(), "command=add")
}

func TestLoggerReachesDefaultHistory(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	calc := New(WithLogger(logger))
	calc.ExecuteCommand("add", 1, 1)
	calc.ExecuteCommand("undo")

	assert.Contains(t, buf.String(), "Removed calculation from history")
}

func TestSaveUsesWorkingDirectoryByDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	calc := New()
	calc.ExecuteCommand("add", 1, 1)
	assert.Equal(t, "History saved to history.json.", calc.ExecuteCommand("save").Message)

	_, err = os.Stat(filepath.Join(dir, history.DefaultFile))
	assert.NoError(t, err)
}

func TestIsOperation(t *testing.T) {
	assert.True(t, IsOperation("add"))
	assert.True(t, IsOperation("divide"))
	assert.False(t, IsOperation("undo"))
	assert.False(t, IsOperation("Add"))
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "value", ResultValue.String())
	assert.Equal(t, "exit", ResultExit.String())
	assert.Equal(t, "ResultKind(42)", ResultKind(42).String())
}
