package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Checks []string `json:"checks,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <template-dir> <params.json> [request.json]",
		Short: "Validate data files without drafting or evaluating",
		Long: `Validate a parameter document (and optionally a request document)
against a template without drafting text or evaluating the clause.

Runs both the template's model validation and the clause-level
invariant checks. Faster feedback than draft/trigger when authoring
data files.`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			requestPath := ""
			if len(args) == 3 {
				requestPath = args[2]
			}
			return runValidate(rootOpts, args[0], args[1], requestPath, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, templateDir, paramsPath, requestPath string, cmd *cobra.Command) error {
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

	checks := []string{"template"}

	if _, err := LoadParameters(tpl, paramsPath); err != nil {
		return outputLoadError(formatter, err)
	}
	checks = append(checks, "parameters")

	if requestPath != "" {
		if _, err := LoadRequest(tpl, requestPath); err != nil {
			return outputLoadError(formatter, err)
		}
		checks = append(checks, "request")
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Checks: checks})
	}

	fmt.Fprintln(formatter.Writer, "✓ All documents valid")
	return nil
}
