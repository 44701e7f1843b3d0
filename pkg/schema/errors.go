package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes carried by validation failures.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeUnknownKey  = "unknown_key"
)

// Issue is a single field-level validation finding. Path is a JSON-pointer
// style location inside the validated record (for example: /metadata/Title/0/value).
type Issue struct {
	Path    string
	Code    string
	Message string
}

// Issues is the ordered set of findings for one record. It implements error.
type Issues []Issue

func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}

	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}

	return b.String()
}

// ValidationError is the typed failure of a single Validate call. Schema names
// the schema that was being enforced, Context describes what was being
// validated ("collection 42", "deleted seed 99") and Issues carries the
// field-level findings.
type ValidationError struct {
	Schema  string
	Context string
	Issues  Issues
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed for %s: %s", e.Schema, e.Context, e.Issues.Error())
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}
