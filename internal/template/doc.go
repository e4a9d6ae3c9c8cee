// Package template loads contract clause templates and drafts contract
// text from validated parameters.
//
// A template is a directory with three files:
//
//	metadata.yaml  name, version, description, author
//	model.cue      the typed parameter model as CUE definitions
//	               (#Parameters and #Request)
//	grammar.md     contract prose with Go text/template placeholders
//
// Raw JSON parameter and request documents are unified against the CUE
// model before the clause-level constructors run, so schema problems
// (missing fields, wrong types) are reported with the template's own
// vocabulary rather than as decode failures.
//
// Drafting substitutes the bound parameter values into the grammar and
// returns markdown text. The package never evaluates the clause; that
// belongs to internal/clause.
package template
