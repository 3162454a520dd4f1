package results

import "github.com/averycrespi/calc-mcp/internal/calculation"

// HistoryToolResult represents the result of the history tool
type HistoryToolResult struct {
	Message      string             `json:"message"`
	Count        int                `json:"count"`
	Calculations []CalculationEntry `json:"calculations"`
}

// NewHistoryToolResult lists calculations in chronological order
func NewHistoryToolResult(entries []*calculation.Calculation) HistoryToolResult {
	result := HistoryToolResult{
		Count:        len(entries),
		Calculations: make([]CalculationEntry, 0, len(entries)),
	}
	for _, calc := range entries {
		result.Calculations = append(result.Calculations, NewCalculationEntry(calc))
	}
	return result
}

// HistoryActionToolResult represents the result of undo, clear, save and load
type HistoryActionToolResult struct {
	Action  string `json:"action"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
