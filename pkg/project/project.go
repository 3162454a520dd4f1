package project

// Project metadata reported by the CLI and the MCP server
const (
	Name    = "calc-mcp"
	Version = "0.1.0"
)
