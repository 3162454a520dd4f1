package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/history"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolAdd      = ToolPrefix + calculator.CommandAdd
	ToolSubtract = ToolPrefix + calculator.CommandSubtract
	ToolMultiply = ToolPrefix + calculator.CommandMultiply
	ToolDivide   = ToolPrefix + calculator.CommandDivide
	ToolHistory  = ToolPrefix + calculator.CommandHistory
	ToolUndo     = ToolPrefix + calculator.CommandUndo
	ToolClear    = ToolPrefix + calculator.CommandClear
	ToolSave     = ToolPrefix + calculator.CommandSave
	ToolLoad     = ToolPrefix + calculator.CommandLoad
)

// Calculator is the subset of calculator.Calculator the tools depend on
type Calculator interface {
	Evaluate(command string, a, b any) calculator.Result
	ExecuteCommand(command string, args ...float64) calculator.Result
	History() *history.History
	HistoryFile() string
}

// Tool is an MCP tool definition with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool
func All(calc Calculator) []Tool {
	return []Tool{
		NewCalculateTool(calc, calculator.CommandAdd, "Add two numbers"),
		NewCalculateTool(calc, calculator.CommandSubtract, "Subtract the second number from the first"),
		NewCalculateTool(calc, calculator.CommandMultiply, "Multiply two numbers"),
		NewCalculateTool(calc, calculator.CommandDivide, "Divide the first number by the second"),
		NewHistoryTool(calc),
		NewUndoTool(calc),
		NewClearTool(calc),
		NewSaveTool(calc),
		NewLoadTool(calc),
	}
}

// jsonResult marshals a tool result document
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
