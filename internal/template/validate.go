package template

import (
	"fmt"

	"cuelang.org/go/cue"
	cuejson "cuelang.org/go/encoding/json"
)

// ValidateParameters checks a raw JSON parameter document against the
// template's #Parameters definition. Returns nil when the document
// conforms.
func (t *Template) ValidateParameters(raw []byte) error {
	return t.validateAgainst(t.params, "#Parameters", raw)
}

// ValidateRequest checks a raw JSON request document against the
// template's #Request definition.
func (t *Template) ValidateRequest(raw []byte) error {
	return t.validateAgainst(t.request, "#Request", raw)
}

// validateAgainst unifies the JSON document with a schema definition
// and requires the result to be a concrete, valid value.
func (t *Template) validateAgainst(schema cue.Value, name string, raw []byte) error {
	expr, err := cuejson.Extract(name, raw)
	if err != nil {
		return &LoadError{Code: ErrCodeBadJSON, Message: fmt.Sprintf("document is not valid JSON: %v", err)}
	}

	data := schema.Context().BuildExpr(expr)
	if err := data.Err(); err != nil {
		return &LoadError{Code: ErrCodeBadJSON, Message: fmt.Sprintf("building document value: %v", err)}
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{Code: ErrCodeSchemaReject, Message: fmt.Sprintf("document does not conform to %s: %v", name, err)}
	}
	return nil
}
