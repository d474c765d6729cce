package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind classifies failures of the file-backed template functions.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindMalformed       ErrorKind = "malformed"
	KindMissingField    ErrorKind = "missing_field"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindUnexpected      ErrorKind = "unexpected"
)

// Sentinels for errors.Is; matching compares kinds only.
var (
	ErrNotFound        = &HelperError{Kind: KindNotFound}
	ErrMalformed       = &HelperError{Kind: KindMalformed}
	ErrMissingField    = &HelperError{Kind: KindMissingField}
	ErrInvalidArgument = &HelperError{Kind: KindInvalidArgument}
	ErrUnexpected      = &HelperError{Kind: KindUnexpected}
)

// HelperError names the file and field a template function failed on.
type HelperError struct {
	Kind  ErrorKind
	Path  string
	Field string
	Err   error
}

func (e *HelperError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err.Error())
	}
	return b.String()
}

func (e *HelperError) Unwrap() error {
	return e.Err
}

func (e *HelperError) Is(target error) bool {
	t, ok := target.(*HelperError)
	return ok && t.Kind == e.Kind
}

func NotFound(path string, err error) error {
	return &HelperError{Kind: KindNotFound, Path: path, Err: errors.Wrap(err, "file not found")}
}

func Malformed(path string, err error) error {
	return &HelperError{Kind: KindMalformed, Path: path, Err: err}
}

func MissingField(path, field string) error {
	return &HelperError{Kind: KindMissingField, Path: path, Field: field, Err: errors.Errorf("missing %q key", field)}
}

func InvalidArgument(format string, args ...any) error {
	return &HelperError{Kind: KindInvalidArgument, Err: errors.Errorf(format, args...)}
}

func Unexpected(path string, err error) error {
	return &HelperError{Kind: KindUnexpected, Path: path, Err: errors.Wrap(err, "unexpected error")}
}

// KindOf returns the kind of err, or KindUnexpected when err was not raised
// by a template function.
func KindOf(err error) ErrorKind {
	var he *HelperError
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindUnexpected
}
