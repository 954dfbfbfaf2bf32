package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/opencare-au/profileview/internal/profile"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeReadFailed  = "E002" // Snapshot file unreadable
	ErrCodeBadFormat   = "E003" // Unsupported snapshot extension
	ErrCodeParseFailed = "E004" // JSON/YAML decode failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeSchema      = "E006" // Snapshot violates the schema
)

// LoadError represents an error that occurred during snapshot loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSnapshot reads, validates and decodes a snapshot file.
//
// JSON (.json) and YAML (.yaml/.yml) snapshots are accepted. The file is
// validated against the embedded CUE schema before decoding; a snapshot
// that fails validation never reaches the derivation core. Returned errors
// carry stable codes; schema violations return one error per finding.
func LoadSnapshot(path string) (*profile.Data, []error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("snapshot not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading snapshot: %v", err)}}
	}

	jsonBytes, errs := toJSON(path, raw)
	if len(errs) > 0 {
		return nil, errs
	}

	if errs := validateSnapshot(path, jsonBytes); len(errs) > 0 {
		return nil, errs
	}

	var data profile.Data
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("decoding snapshot: %v", err)}}
	}
	return &data, nil
}

// toJSON normalizes the snapshot bytes to JSON based on file extension.
// YAML snapshots are decoded and re-encoded so that one validation and
// decode path serves both formats.
func toJSON(path string, raw []byte) ([]byte, []error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return raw, nil
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML: %v", err)}}
		}
		jsonBytes, err := json.Marshal(doc)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("converting YAML: %v", err)}}
		}
		return jsonBytes, nil
	default:
		return nil, []error{&LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("unsupported snapshot format %q: use .json, .yaml or .yml", filepath.Ext(path))}}
	}
}

// validateSnapshot checks the JSON document against the embedded CUE
// schema. JSON is a subset of CUE, so the document compiles directly and
// unifies with the #Snapshot definition.
func validateSnapshot(path string, jsonBytes []byte) []error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(snapshotSchema)
	if err := schema.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling snapshot schema: %v", err)}}
	}

	doc := ctx.CompileBytes(jsonBytes, cue.Filename(path))
	if err := doc.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing snapshot: %v", err)}}
	}

	unified := schema.LookupPath(cue.ParsePath("#Snapshot")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, &LoadError{Code: ErrCodeSchema, Message: e.Error()})
		}
		return errs
	}
	return nil
}
