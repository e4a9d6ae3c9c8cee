package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DraftOptions holds flags for the draft command.
type DraftOptions struct {
	*RootOptions
	Output string
}

// DraftResult is the JSON payload of a successful draft.
type DraftResult struct {
	Template string `json:"template"`
	Version  string `json:"version,omitempty"`
	ClauseID string `json:"clauseId,omitempty"`
	Text     string `json:"text"`
}

// NewDraftCommand creates the draft command.
func NewDraftCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DraftOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "draft <template-dir> <params.json>",
		Short: "Bind clause parameters into contract text",
		Long: `Bind clause parameters into the template's contract prose.

Validates the parameter document against the template's model, runs
the clause-level validation, and renders the grammar as markdown.

Example:
  smartclause draft ./templates/latedelivery data.json -o contract.md`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraft(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write contract text to file instead of stdout")

	return cmd
}

func runDraft(opts *DraftOptions, templateDir, paramsPath string, cmd *cobra.Command) error {
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

	text, err := tpl.Draft(params)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "drafting contract text", err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(text), 0o644); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing contract text", err)
		}
		formatter.VerboseLog("Wrote contract text to %s", opts.Output)
		if opts.Format == "json" {
			return formatter.Success(DraftResult{
				Template: tpl.Metadata.Name,
				Version:  tpl.Metadata.Version,
				ClauseID: params.ClauseID,
			})
		}
		fmt.Fprintf(formatter.Writer, "Wrote %s\n", opts.Output)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(DraftResult{
			Template: tpl.Metadata.Name,
			Version:  tpl.Metadata.Version,
			ClauseID: params.ClauseID,
			Text:     text,
		})
	}

	fmt.Fprint(formatter.Writer, text)
	return nil
}
