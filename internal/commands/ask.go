// ABOUTME: One-shot ask command that drives the conversation with a single query
// ABOUTME: Prints the answer, or the error entry and a non-zero exit

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harper/infoflow/internal/client"
	"github.com/harper/infoflow/internal/config"
	"github.com/harper/infoflow/internal/conversation"
	apperrors "github.com/harper/infoflow/internal/errors"
	"github.com/harper/infoflow/internal/logger"
	"github.com/harper/infoflow/internal/render"
	"github.com/spf13/cobra"
)

var errEmptyQuery = errors.New("query is empty")

func newAskCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Ask a single question and print the answer",
		Long: `Ask sends one question to the ask endpoint and prints the answer.
Without an argument the question is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(cmd.ErrOrStderr())

			cfg, err := opts.load()
			if err != nil {
				return err
			}

			query, err := readQuery(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			transport := client.NewAskClient(cfg.Endpoint.URL)
			return runAsk(cmd, cfg, transport, query, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the answer without markdown rendering")
	return cmd
}

func readQuery(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if f, ok := stdin.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errEmptyQuery
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// runAsk submits query through the same transitions the chat uses and prints
// the entry that settles it.
func runAsk(cmd *cobra.Command, cfg *config.Config, transport conversation.Transport, query string, raw bool) error {
	state := conversation.New(cfg.Dark()).UpdateDraft(query)
	state, req := state.Submit()
	if req == nil {
		return errEmptyQuery
	}

	outcome := req.Run(cmd.Context(), transport)
	state = state.Resolve(req.ID, outcome)

	entry, _ := state.Last()
	if entry.Role == conversation.RoleError {
		fmt.Fprintln(cmd.ErrOrStderr(), entry.Text)
		return outcomeError(outcome, cfg.Endpoint.URL)
	}

	text := entry.Text
	if !raw && cfg.UI.Markdown {
		text = render.MarkdownOrPlain(text, render.DefaultOptions().WithStyle(cfg.UI.Theme))
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// outcomeError returns the typed error behind a failed outcome.
func outcomeError(o conversation.Outcome, endpoint string) error {
	switch o := o.(type) {
	case conversation.Rejected:
		return apperrors.NewRemoteError(o.Status, endpoint, o.Message)
	case conversation.Unreachable:
		if o.Err != nil {
			return o.Err
		}
	}
	return apperrors.NewTransportError("post", endpoint, apperrors.ErrUnreachable)
}
