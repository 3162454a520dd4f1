package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool lists the recorded calculations
type HistoryTool struct {
	calc Calculator
}

// NewHistoryTool creates a new history tool
func NewHistoryTool(calc Calculator) *HistoryTool {
	return &HistoryTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolHistory,
		mcp.WithDescription("List the calculation history in chronological order"),
	)
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := t.calc.ExecuteCommand(calculator.CommandHistory)

	toolResult := results.NewHistoryToolResult(result.History)
	if toolResult.Count == 0 {
		toolResult.Message = "No calculations in history."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d calculations in history.", toolResult.Count)
	}
	return jsonResult(toolResult)
}

// UndoTool removes the most recent calculation
type UndoTool struct {
	calc Calculator
}

// NewUndoTool creates a new undo tool
func NewUndoTool(calc Calculator) *UndoTool {
	return &UndoTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *UndoTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolUndo,
		mcp.WithDescription("Undo the last calculation"),
	)
}

// Handle processes the tool request
func (t *UndoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := t.calc.ExecuteCommand(calculator.CommandUndo)
	return jsonResult(results.HistoryActionToolResult{
		Action:  calculator.CommandUndo,
		Message: result.Message,
		Count:   t.calc.History().Len(),
	})
}

// ClearTool empties the history
type ClearTool struct {
	calc Calculator
}

// NewClearTool creates a new clear tool
func NewClearTool(calc Calculator) *ClearTool {
	return &ClearTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Clear the calculation history"),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := t.calc.ExecuteCommand(calculator.CommandClear)
	return jsonResult(results.HistoryActionToolResult{
		Action:  calculator.CommandClear,
		Message: result.Message,
		Count:   t.calc.History().Len(),
	})
}
