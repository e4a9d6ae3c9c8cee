package template

import (
	"fmt"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Well-known file names inside a template directory.
const (
	MetadataFile = "metadata.yaml"
	ModelFile    = "model.cue"
	GrammarFile  = "grammar.md"
)

// Error codes for template loading and data validation.
const (
	ErrCodeNotFound      = "T001" // Template directory or file missing
	ErrCodeBadMetadata   = "T002" // metadata.yaml unreadable or malformed
	ErrCodeBadModel      = "T003" // model.cue does not compile
	ErrCodeBadGrammar    = "T004" // grammar.md does not parse as a template
	ErrCodeMissingSchema = "T005" // model.cue lacks #Parameters or #Request
	ErrCodeSchemaReject  = "T006" // Data document rejected by the model
	ErrCodeBadJSON       = "T007" // Data document is not valid JSON
)

// LoadError is an error with a template error code.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Metadata describes a template, from metadata.yaml.
type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
}

// Template is a loaded clause template: metadata, the compiled CUE
// parameter model, and the parsed prose grammar.
type Template struct {
	Dir      string
	Metadata Metadata

	grammar *texttemplate.Template
	params  cue.Value // #Parameters definition
	request cue.Value // #Request definition
}

// Load reads and compiles a template directory.
func Load(dir string) (*Template, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("template directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing template directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	meta, err := loadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, err
	}

	paramsDef, requestDef, err := loadModel(filepath.Join(dir, ModelFile))
	if err != nil {
		return nil, err
	}

	grammar, err := loadGrammar(filepath.Join(dir, GrammarFile))
	if err != nil {
		return nil, err
	}

	return &Template{
		Dir:      dir,
		Metadata: meta,
		grammar:  grammar,
		params:   paramsDef,
		request:  requestDef,
	}, nil
}

func loadMetadata(path string) (Metadata, error) {
	var meta Metadata

	raw, err := os.ReadFile(path)
	if err != nil {
		return meta, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", MetadataFile, err)}
	}
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return meta, &LoadError{Code: ErrCodeBadMetadata, Message: fmt.Sprintf("parsing %s: %v", MetadataFile, err)}
	}
	if meta.Name == "" {
		return meta, &LoadError{Code: ErrCodeBadMetadata, Message: MetadataFile + ": name is required"}
	}
	return meta, nil
}

func loadModel(path string) (params, request cue.Value, err error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		err = &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", ModelFile, readErr)}
		return
	}

	ctx := cuecontext.New()
	model := ctx.CompileBytes(raw, cue.Filename(path))
	if cueErr := model.Err(); cueErr != nil {
		err = &LoadError{Code: ErrCodeBadModel, Message: fmt.Sprintf("compiling %s: %v", ModelFile, cueErr)}
		return
	}

	params = model.LookupPath(cue.ParsePath("#Parameters"))
	if !params.Exists() {
		err = &LoadError{Code: ErrCodeMissingSchema, Message: ModelFile + ": #Parameters definition is required"}
		return
	}
	request = model.LookupPath(cue.ParsePath("#Request"))
	if !request.Exists() {
		err = &LoadError{Code: ErrCodeMissingSchema, Message: ModelFile + ": #Request definition is required"}
		return
	}
	return params, request, nil
}

func loadGrammar(path string) (*texttemplate.Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", GrammarFile, err)}
	}

	tmpl, err := texttemplate.New(GrammarFile).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadGrammar, Message: fmt.Sprintf("parsing %s: %v", GrammarFile, err)}
	}
	return tmpl, nil
}
