// ABOUTME: Cobra root command: flags, config loading and the interactive chat
// ABOUTME: Execute is the entry point used by cmd/infoflow

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/infoflow/internal/client"
	"github.com/harper/infoflow/internal/config"
	apperrors "github.com/harper/infoflow/internal/errors"
	"github.com/harper/infoflow/internal/logger"
	"github.com/harper/infoflow/internal/tui"
	"github.com/harper/infoflow/internal/xdg"
	"github.com/spf13/cobra"
)

// Version info (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	configPath string
	endpoint   string
	theme      string
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "infoflow",
		Short: "Terminal chat client for the InfoFlow AI ask service",
		Long: `infoflow sends questions to the InfoFlow AI ask endpoint and shows the
conversation as a scrolling transcript.

Examples:
  infoflow                              Start interactive chat
  infoflow ask "What is RAG?"           Ask a single question
  echo "What is RAG?" | infoflow ask    Read the question from stdin
  infoflow --theme dark                 Start with the dark theme`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.endpoint, "endpoint", "", "ask endpoint URL")
	flags.StringVar(&opts.theme, "theme", "", "initial theme: light or dark")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newAskCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, action := range apperrors.Actions(err) {
		fmt.Fprintf(w, "  - %s\n", action)
	}
}

// load reads the config file and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if o.endpoint != "" {
		cfg.Endpoint.URL = o.endpoint
	}
	if o.theme != "" {
		cfg.UI.Theme = o.theme
	}
	cfg.Validate()

	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("set log level: %w", err)
	}
	logger.SetVerbose(o.verbose)

	return cfg, nil
}

// runChat runs the full-screen chat. Logs go to the configured file while the
// UI owns the terminal; the in-flight request is abandoned on exit.
func runChat(parent context.Context, cfg *config.Config) error {
	if err := xdg.EnsureParent("XDG_DATA_HOME", cfg.Logging.File); err != nil {
		return err
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	logger.SetOutput(f)
	defer logger.SetOutput(nil)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	logger.Info("starting chat against %s", cfg.Endpoint.URL)

	model := tui.NewModel(ctx, cfg, client.NewAskClient(cfg.Endpoint.URL))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chat: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "infoflow %s (built %s)\n", Version, BuildTime)
		},
	}
}
