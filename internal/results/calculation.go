package results

import (
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculation"
)

// CalculationEntry represents a single calculation in tool results
type CalculationEntry struct {
	Operand1    float64  `json:"operand1"`
	Operand2    float64  `json:"operand2"`
	Operation   string   `json:"operation"`
	Result      *float64 `json:"result,omitempty"`
	Description string   `json:"description"`
}

// NewCalculationEntry converts a calculation into its result form
func NewCalculationEntry(calc *calculation.Calculation) CalculationEntry {
	entry := CalculationEntry{
		Operand1:    calc.Operand1(),
		Operand2:    calc.Operand2(),
		Operation:   strings.ToLower(calc.Operation().Name()),
		Description: calc.Describe(),
	}
	if result, ok := calc.Result(); ok {
		entry.Result = &result
	}
	return entry
}

// CalculateToolArgs represents the arguments of an arithmetic tool
type CalculateToolArgs struct {
	A any `json:"a"`
	B any `json:"b"`
}

// CalculateToolResult represents the result of an arithmetic tool
type CalculateToolResult struct {
	Arguments   CalculateToolArgs `json:"arguments"`
	Result      float64           `json:"result"`
	Calculation CalculationEntry  `json:"calculation"`
}
