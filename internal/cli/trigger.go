package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauselab/smartclause/internal/clause"
	"github.com/clauselab/smartclause/internal/store"
)

// TriggerOptions holds flags for the trigger command.
type TriggerOptions struct {
	*RootOptions
	DBPath string

	// clock is swapped in tests for deterministic EvaluatedAt values.
	clock clause.Clock
}

// TriggerResult is the JSON payload of a successful trigger.
type TriggerResult struct {
	Template string          `json:"template"`
	ClauseID string          `json:"clauseId,omitempty"`
	Decision clause.Decision `json:"decision"`
	LogID    string          `json:"logId,omitempty"`
}

// NewTriggerCommand creates the trigger command.
func NewTriggerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TriggerOptions{RootOptions: rootOpts, clock: clause.SystemClock{}}

	cmd := &cobra.Command{
		Use:   "trigger <template-dir> <params.json> <request.json>",
		Short: "Evaluate a runtime request against the clause",
		Long: `Evaluate a runtime request against the clause's penalty rule.

Validates both documents against the template's model, runs the
clause-level validation, and prints the resulting decision: penalty
amount, applied percentage, and termination eligibility.

Example:
  smartclause trigger ./templates/latedelivery data.json request.json`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrigger(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "append the decision to an audit log database")

	return cmd
}

func runTrigger(opts *TriggerOptions, templateDir, paramsPath, requestPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	tpl, err := LoadTemplate(templateDir)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded template %q (version %s)", tpl.Metadata.Name, tpl.Metadata.Version)

	params, err := LoadParameters(tpl, paramsPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	req, err := LoadRequest(tpl, requestPath)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	decision := clause.Evaluate(params, req, opts.clock)

	result := TriggerResult{
		Template: tpl.Metadata.Name,
		ClauseID: params.ClauseID,
		Decision: decision,
	}

	if opts.DBPath != "" {
		rec, err := appendToLog(cmd, opts.DBPath, params, req, decision)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "appending to audit log", err)
		}
		result.LogID = rec.ID
		formatter.VerboseLog("Logged decision %s to %s", rec.ID, opts.DBPath)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	printDecision(formatter, result)
	return nil
}

func appendToLog(cmd *cobra.Command, path string, params *clause.Parameters, req *clause.Request, dec clause.Decision) (store.DecisionRecord, error) {
	st, err := store.Open(path)
	if err != nil {
		return store.DecisionRecord{}, err
	}
	defer st.Close()
	return st.Append(cmd.Context(), params, req, dec)
}

func printDecision(formatter *OutputFormatter, result TriggerResult) {
	w := formatter.Writer

	fmt.Fprintf(w, "Template:        %s\n", result.Template)
	if result.ClauseID != "" {
		fmt.Fprintf(w, "Clause:          %s\n", result.ClauseID)
	}
	fmt.Fprintf(w, "Penalty:         %s\n", formatAmount(result.Decision.PenaltyAmount))
	fmt.Fprintf(w, "Applied percent: %s%%\n", result.Decision.AppliedPercent)
	fmt.Fprintf(w, "Periods accrued: %d\n", result.Decision.Periods)
	if result.Decision.BuyerMayTerminate {
		fmt.Fprintln(w, "Termination:     buyer may terminate")
	} else {
		fmt.Fprintln(w, "Termination:     not available")
	}
	fmt.Fprintf(w, "Evaluated at:    %s\n", result.Decision.EvaluatedAt.Format(time.RFC3339))
	if result.LogID != "" {
		fmt.Fprintf(w, "Log entry:       %s\n", result.LogID)
	}
}
