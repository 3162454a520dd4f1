package calculator

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculation"
)

// ResultKind identifies what a Result carries
type ResultKind int

const (
	ResultValue   ResultKind = iota // arithmetic result
	ResultHistory                   // history listing
	ResultMessage                   // informational text
	ResultError                     // user-facing error text
	ResultExit                      // the session should end
)

func (k ResultKind) String() string {
	switch k {
	case ResultValue:
		return "value"
	case ResultHistory:
		return "history"
	case ResultMessage:
		return "message"
	case ResultError:
		return "error"
	case ResultExit:
		return "exit"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of a dispatched command
type Result struct {
	Kind ResultKind

	// Set for ResultValue
	Value       float64
	Calculation *calculation.Calculation

	// Set for ResultHistory
	History []*calculation.Calculation

	// Set for ResultMessage, ResultError and ResultExit
	Message string
	// Underlying error for ResultError, for callers that branch with errors.Is
	Err error
}

// IsError reports whether the command failed
func (r Result) IsError() bool {
	return r.Kind == ResultError
}

// Descriptions renders each history entry
func (r Result) Descriptions() []string {
	descriptions := make([]string, 0, len(r.History))
	for _, calc := range r.History {
		descriptions = append(descriptions, calc.Describe())
	}
	return descriptions
}

func (r Result) String() string {
	switch r.Kind {
	case ResultValue:
		return fmt.Sprintf("%v", r.Value)
	case ResultHistory:
		return strings.Join(r.Descriptions(), "\n")
	default:
		return r.Message
	}
}

func valueResult(calc *calculation.Calculation, value float64) Result {
	return Result{Kind: ResultValue, Value: value, Calculation: calc}
}

func messageResult(message string) Result {
	return Result{Kind: ResultMessage, Message: message}
}

func errorResult(err error) Result {
	return Result{Kind: ResultError, Message: ErrorMessage(err), Err: err}
}
