package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauselab/smartclause/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath   string
	ClauseID string
}

// HistoryEntry is one audit-log row in the JSON payload.
type HistoryEntry struct {
	ID             string  `json:"id"`
	ClauseID       string  `json:"clauseId"`
	EvaluatedAt    string  `json:"evaluatedAt"`
	GoodsValue     string  `json:"goodsValue"`
	DelayHours     float64 `json:"delayHours"`
	Periods        int64   `json:"periods"`
	AppliedPercent string  `json:"appliedPercent"`
	PenaltyAmount  string  `json:"penaltyAmount"`
	MayTerminate   bool    `json:"mayTerminate"`
	ForceMajeure   bool    `json:"forceMajeure"`
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Count   int            `json:"count"`
	Entries []HistoryEntry `json:"entries"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List decisions from the audit log",
		Long: `List decisions previously appended to an audit log database by
trigger --db, newest first.

Example:
  smartclause history --db decisions.db --clause clause-281`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "audit log database path (required)")
	cmd.Flags().StringVar(&opts.ClauseID, "clause", "", "only show decisions for this clause id")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening audit log", err)
	}
	defer st.Close()

	records, err := st.List(cmd.Context(), opts.ClauseID)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading audit log", err)
	}

	if formatter.Format == "json" {
		result := HistoryResult{Count: len(records), Entries: make([]HistoryEntry, 0, len(records))}
		for _, rec := range records {
			result.Entries = append(result.Entries, HistoryEntry{
				ID:             rec.ID,
				ClauseID:       rec.ClauseID,
				EvaluatedAt:    rec.EvaluatedAt.Format(time.RFC3339Nano),
				GoodsValue:     rec.GoodsValue.String(),
				DelayHours:     rec.DelayHours,
				Periods:        rec.Periods,
				AppliedPercent: rec.AppliedPercent.String(),
				PenaltyAmount:  rec.PenaltyAmount.String(),
				MayTerminate:   rec.MayTerminate,
				ForceMajeure:   rec.ForceMajeure,
			})
		}
		return formatter.Success(result)
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "No decisions logged")
		return nil
	}

	for _, rec := range records {
		terminate := ""
		if rec.MayTerminate {
			terminate = "  [may terminate]"
		}
		if rec.ForceMajeure {
			terminate = "  [force majeure]"
		}
		fmt.Fprintf(formatter.Writer, "%s  %-16s penalty %s (%s%%)%s\n",
			rec.EvaluatedAt.Format(time.RFC3339),
			rec.ClauseID,
			formatAmount(rec.PenaltyAmount),
			rec.AppliedPercent,
			terminate,
		)
	}
	fmt.Fprintf(formatter.Writer, "%d decision(s)\n", len(records))
	return nil
}
