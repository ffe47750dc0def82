// Package shape decodes untyped JSON values (as produced by unmarshalling into
// an `any`) into typed Go values, reporting structured validation issues.
//
// A Shape is a small capability: Validate(raw) either returns a T or an error.
// Shapes compose: Object binds keys to fields, Array maps an element shape,
// Union tries alternatives, and Optional/Default/Between refine existing shapes.
package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidUnion  = "invalid_union"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeCustom        = "custom"
)

// Shape validates a raw decoded JSON value and converts it into T.
type Shape[T any] interface {
	Validate(raw any) (T, error)
}

// Func adapts a plain function to Shape.
type Func[T any] func(raw any) (T, error)

// Validate implements Shape.
func (f Func[T]) Validate(raw any) (T, error) { return f(raw) }

// Issue is a single validation failure. Path is a JSON Pointer; the empty
// string addresses the root value.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError collects the issues found while validating a value.
type ValidationError struct {
	Issues []Issue
}

// Error summarizes the first few issues.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "shape: validation failed"
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("shape: ")
	for i, it := range e.Issues {
		if i == maxShown {
			fmt.Fprintf(b, "; ... (total %d)", len(e.Issues))
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(b, "%s at %s: %s", it.Code, path, it.Message)
	}
	return b.String()
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func fail(code, format string, args ...any) error {
	return &ValidationError{Issues: []Issue{{Code: code, Message: fmt.Sprintf(format, args...)}}}
}

// issuesOf flattens err into issues rooted at the current value. Errors that are
// not a *ValidationError (for example from a custom Func) become a single custom issue.
func issuesOf(err error) []Issue {
	if verr, ok := AsValidationError(err); ok {
		return verr.Issues
	}
	return []Issue{{Code: CodeCustom, Message: err.Error()}}
}

// rebase prefixes every issue path with the given object key or array index.
func rebase(issues []Issue, token string) []Issue {
	out := make([]Issue, len(issues))
	prefix := "/" + escapeToken(token)
	for i, it := range issues {
		it.Path = prefix + it.Path
		out[i] = it
	}
	return out
}

func escapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func indexToken(i int) string { return strconv.Itoa(i) }

// describe names the JSON kind of raw for error messages.
func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(raw); ok {
		return "number"
	}
	return fmt.Sprintf("%T", raw)
}
