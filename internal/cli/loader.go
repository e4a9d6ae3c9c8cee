package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/clauselab/smartclause/internal/clause"
	"github.com/clauselab/smartclause/internal/template"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeReadFailed   = "E002" // File read error
	ErrCodeBadJSON      = "E003" // JSON decode error
	ErrCodeInvalidData  = "E004" // Clause-level validation failure
	ErrCodeTemplateLoad = "E005" // Template directory load failure
	ErrCodeSchemaReject = "E006" // Document rejected by template model
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodeStoreFailed  = "E008" // Audit log error
)

// LoadError represents an error that occurred while loading a
// template or data file.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadTemplate loads a template directory, mapping template-level
// error codes onto CLI error codes.
func LoadTemplate(dir string) (*template.Template, error) {
	tpl, err := template.Load(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeTemplateLoad, Message: err.Error()}
	}
	return tpl, nil
}

// LoadParameters reads a JSON parameter document, checks it against
// the template's model, and runs the clause-level validating
// constructor.
func LoadParameters(tpl *template.Template, path string) (*clause.Parameters, error) {
	raw, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	if err := tpl.ValidateParameters(raw); err != nil {
		return nil, schemaError(err)
	}

	var in clause.ParametersInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &LoadError{Code: ErrCodeBadJSON, Message: fmt.Sprintf("decoding %s: %v", path, err)}
	}

	params, err := clause.NewParameters(in)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidData, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return params, nil
}

// LoadRequest reads a JSON request document, checks it against the
// template's model, and runs the clause-level validating constructor.
func LoadRequest(tpl *template.Template, path string) (*clause.Request, error) {
	raw, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	if err := tpl.ValidateRequest(raw); err != nil {
		return nil, schemaError(err)
	}

	var in clause.RequestInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &LoadError{Code: ErrCodeBadJSON, Message: fmt.Sprintf("decoding %s: %v", path, err)}
	}

	req, err := clause.NewRequest(in)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidData, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return req, nil
}

func readDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return raw, nil
}

// schemaError maps template validation errors onto CLI codes,
// preserving the bad-JSON distinction.
func schemaError(err error) *LoadError {
	var tplErr *template.LoadError
	if errors.As(err, &tplErr) && tplErr.Code == template.ErrCodeBadJSON {
		return &LoadError{Code: ErrCodeBadJSON, Message: tplErr.Message}
	}
	return &LoadError{Code: ErrCodeSchemaReject, Message: err.Error()}
}

// exitCodeFor maps a load error to the right process exit code:
// data problems are validation failures (1), everything else is a
// command error (2).
func exitCodeFor(err error) int {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		switch loadErr.Code {
		case ErrCodeInvalidData, ErrCodeSchemaReject:
			return ExitFailure
		}
	}
	return ExitCommandError
}

// outputLoadError renders a load error and wraps it with its exit
// code.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(exitCodeFor(err), loadErr.Message, err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, err.Error(), err)
}
