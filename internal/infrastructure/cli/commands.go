package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/linara-sh/linara/internal/app"
	"github.com/linara-sh/linara/internal/domain"
)

func newTranslateCommand(container *app.Container) *cobra.Command {
	var (
		execute bool
		debug   bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate [natural language]",
		Short: "Translate a request into a shell command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			req := domain.TranslationRequest{
				Context: ctx,
				ID:      uuid.NewString(),
				Input:   strings.Join(args, " "),
				Debug:   debug,
			}
			result, err := container.Translator.Translate(req)
			if err != nil {
				return err
			}

			RenderResult(cmd.OutOrStdout(), result, debug)

			if execute {
				execResult, execErr := container.Executor.Execute(ctx, result.Command)
				RenderExecution(cmd.OutOrStdout(), execResult)
				return execErr
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&execute, "exec", "x", false, "Run the translated command after printing it")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print source and timing details")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the translation (e.g. 10s)")
	return cmd
}

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := container.HistoryStore
			if store == nil {
				return fmt.Errorf("history is disabled in the configuration")
			}
			records, err := store.Records(limit, search)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s | %-11s | %s => %s\n",
					rec.Timestamp.Format(time.RFC3339),
					rec.Source,
					rec.Prompt,
					rec.Command)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by prompt or command substring")
	return cmd
}
