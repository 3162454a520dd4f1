package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles one of the arithmetic commands
type CalculateTool struct {
	calc        Calculator
	command     string
	description string
}

// NewCalculateTool creates a tool for an arithmetic command
func NewCalculateTool(calc Calculator, command string, description string) *CalculateTool {
	return &CalculateTool{
		calc:        calc,
		command:     command,
		description: description,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPrefix+t.command,
		mcp.WithDescription(t.description+" and record the calculation in the history"),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	a, okA := args["a"]
	b, okB := args["b"]
	if !okA || !okB {
		return mcp.NewToolResultError(calculator.ErrorMessage(calculator.ErrInvalidArgumentCount)), nil
	}

	result := t.calc.Evaluate(t.command, a, b)
	if result.IsError() {
		return mcp.NewToolResultError(result.Message), nil
	}

	return jsonResult(results.CalculateToolResult{
		Arguments:   results.CalculateToolArgs{A: a, B: b},
		Result:      result.Value,
		Calculation: results.NewCalculationEntry(result.Calculation),
	})
}
