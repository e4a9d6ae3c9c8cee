package template

import (
	"fmt"
	"strings"

	"github.com/clauselab/smartclause/internal/clause"
)

// grammarView is the set of names the grammar may reference. Values
// are pre-formatted so templates stay free of formatting logic.
type grammarView struct {
	ClauseID             string
	TemplateName         string
	TemplateVersion      string
	ForceMajeure         bool
	PenaltyDuration      string
	PenaltyRatePercent   string
	CapPercent           string
	TerminationThreshold string
	FractionalUnit       string
}

// Draft renders the contract prose for one validated parameter set.
func (t *Template) Draft(params *clause.Parameters) (string, error) {
	view := grammarView{
		ClauseID:             params.ClauseID,
		TemplateName:         t.Metadata.Name,
		TemplateVersion:      t.Metadata.Version,
		ForceMajeure:         params.ForceMajeureActive,
		PenaltyDuration:      formatPeriod(params.PenaltyDuration),
		PenaltyRatePercent:   params.PenaltyRatePercent.String(),
		CapPercent:           params.CapPercent.String(),
		TerminationThreshold: formatPeriod(params.TerminationThreshold),
		FractionalUnit:       singularUnit(params.FractionalUnit),
	}

	var buf strings.Builder
	if err := t.grammar.Execute(&buf, view); err != nil {
		return "", &LoadError{Code: ErrCodeBadGrammar, Message: fmt.Sprintf("rendering %s: %v", GrammarFile, err)}
	}
	return buf.String(), nil
}

// formatPeriod renders "1 days" as "1 day" and leaves plurals alone.
func formatPeriod(p clause.Period) string {
	if p.Amount == 1 {
		return fmt.Sprintf("1 %s", singularUnit(p.Unit))
	}
	return p.String()
}

func singularUnit(u clause.TimeUnit) string {
	return strings.TrimSuffix(string(u), "s")
}
