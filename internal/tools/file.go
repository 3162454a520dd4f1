package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/history"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// SaveTool writes the history to a file
type SaveTool struct {
	calc Calculator
}

// NewSaveTool creates a new save tool
func NewSaveTool(calc Calculator) *SaveTool {
	return &SaveTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *SaveTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSave,
		mcp.WithDescription("Save the current history to a JSON file, overwriting it"),
		mcp.WithString("path", mcp.Description("Path of the history file (defaults to the configured history file)")),
	)
}

// Handle processes the tool request
func (t *SaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := historyPath(req, t.calc)
	if err := t.calc.History().Write(path); err != nil {
		return mcp.NewToolResultError(history.SaveErrorMessage(path)), nil
	}
	return fileResult(calculator.CommandSave, path, history.SavedMessage(path), t.calc.History().Len())
}

// LoadTool replaces the history with the contents of a file
type LoadTool struct {
	calc Calculator
}

// NewLoadTool creates a new load tool
func NewLoadTool(calc Calculator) *LoadTool {
	return &LoadTool{calc: calc}
}

// GetTool returns the MCP tool definition
func (t *LoadTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolLoad,
		mcp.WithDescription("Replace the history with the calculations stored in a JSON file"),
		mcp.WithString("path", mcp.Description("Path of the history file (defaults to the configured history file)")),
	)
}

// Handle processes the tool request
func (t *LoadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := historyPath(req, t.calc)
	if err := t.calc.History().Read(path); err != nil {
		return mcp.NewToolResultError(history.LoadErrorMessage(path, err)), nil
	}
	return fileResult(calculator.CommandLoad, path, history.LoadedMessage(path), t.calc.History().Len())
}

func fileResult(action string, path string, message string, count int) (*mcp.CallToolResult, error) {
	return jsonResult(results.HistoryActionToolResult{
		Action:  action,
		Path:    path,
		Message: message,
		Count:   count,
	})
}

// historyPath returns the requested path, falling back to the configured history file
func historyPath(req mcp.CallToolRequest, calc Calculator) string {
	if path := mcp.ParseString(req, "path", ""); path != "" {
		return path
	}
	return calc.HistoryFile()
}
