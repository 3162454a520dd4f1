package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer exposes a calculator as MCP tools
type CalcServer struct {
	mcpServer *server.MCPServer
	calc      *calculator.Calculator
	config    types.Config
	tools     []mcp.Tool
	in        io.Reader
	out       io.Writer

	// The calculator is single-threaded; tool calls are serialized through mu
	mu sync.Mutex
}

// Option configures a CalcServer
type Option func(*CalcServer)

// WithIO replaces stdin and stdout as the transport streams
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *CalcServer) {
		s.in = in
		s.out = out
	}
}

// NewCalcServer creates a new MCP server backed by calc
func NewCalcServer(calc *calculator.Calculator, config types.Config, opts ...Option) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
	)

	s := &CalcServer{
		mcpServer: mcpServer,
		calc:      calc,
		config:    config,
		in:        os.Stdin,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// Serve serves MCP over the configured streams until ctx is done or input ends
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server", "history_file", s.calc.HistoryFile(), "log_level", s.config.LogLevel, "tools", len(s.tools))

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, s.in, s.out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

// Tools returns the definitions of the registered tools
func (s *CalcServer) Tools() []mcp.Tool {
	return s.tools
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.All(s.calc) {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, s.serialize(definition.Name, tool.Handle))
		s.tools = append(s.tools, definition)
	}
}

// serialize wraps a handler so only one tool call touches the calculator at a time
func (s *CalcServer) serialize(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		slog.Debug("Handling tool call", "tool", name)
		return handler(ctx, req)
	}
}
