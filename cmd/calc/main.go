package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/repl"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	historyFile string
	logLevel    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Interactive calculator with operation history",
		Version:      project.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, _, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return repl.New(calc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.historyFile, "history-file", types.DefaultHistoryFile, "File used by the save and load commands")
	flags.StringVar(&opts.logLevel, "log-level", types.DefaultLogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(newMCPCommand(opts))
	return root
}

func newMCPCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, config, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			mcpServer := server.NewCalcServer(calc, config, server.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()))
			if err := mcpServer.Serve(cmd.Context()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			slog.Info("Server stopped")
			return nil
		},
	}
}

// loadConfig merges the config file (if any) with explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (types.Config, error) {
	config := types.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := types.LoadConfigFile(opts.configPath)
		if err != nil {
			return types.Config{}, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("history-file") || opts.configPath == "" {
		config.HistoryFile = opts.historyFile
	}
	if flags.Changed("log-level") || opts.configPath == "" {
		config.LogLevel = opts.logLevel
	}

	if err := config.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func setup(cmd *cobra.Command, opts *options) (*calculator.Calculator, types.Config, error) {
	config, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, types.Config{}, err
	}

	logger := newLogger(cmd.ErrOrStderr(), config)
	slog.SetDefault(logger)
	logger.Debug("Loaded configuration", "config", fmt.Sprintf("%+v", config))

	return calculator.New(
		calculator.WithHistoryFile(config.HistoryFile),
		calculator.WithLogger(logger),
	), config, nil
}

func newLogger(w io.Writer, config types.Config) *slog.Logger {
	level, err := config.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
