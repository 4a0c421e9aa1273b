package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by the table registry when a format has no
// installed tables or a table id is absent for the format.
var ErrNotFound = errors.New("table not found")

// ErrInvalidKey is returned by the table registry when the table exists but
// the key does not.
var ErrInvalidKey = errors.New("key not found in table")

// ErrUnknownGroup is returned when a renderer group id is not registered
// with an encoder, or its backing table is missing.
var ErrUnknownGroup = errors.New("unknown encoder group")

// ErrUnknownKey is returned when a renderer lookup finds the group but not
// the requested key.
var ErrUnknownKey = errors.New("unknown encoder key")

// ErrBadArgument is returned when a renderer receives arguments it cannot
// interpret. It is fatal in both strict and lenient parse modes.
var ErrBadArgument = errors.New("invalid renderer argument")

// wrapLookup lifts a table-registry lookup failure to the encoder error
// surface, keeping the group/key context.
func wrapLookup(f Format, gid, key string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fmt.Errorf("no table for %s group %q: %w", f, gid, ErrUnknownGroup)
	case errors.Is(err, ErrInvalidKey):
		return fmt.Errorf("%s group %q has no key %q: %w", f, gid, key, ErrUnknownKey)
	default:
		return err
	}
}

// argCountError reports a renderer invoked with the wrong number of
// arguments. It unwraps to ErrBadArgument, which parse never forgives.
type argCountError struct {
	format Format
	gid    string
	want   int
	got    int
}

func (e *argCountError) Error() string {
	return fmt.Sprintf("%s group %q expects %d argument(s), got %d",
		e.format, e.gid, e.want, e.got)
}

func (e *argCountError) Unwrap() error { return ErrBadArgument }

// ParseError reports an expression parse failure. It carries the original
// source text and the 0-based byte offset of the cursor when the failure
// occurred, enough to render a caret under the offending position.
type ParseError struct {
	Msg    string
	Source string
	Offset int
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Caret renders the source text with a caret marking the failure position,
// followed by the message.
func (e *ParseError) Caret() string {
	pad := e.Offset - 1
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s\n%s^\n%s", e.Source, strings.Repeat(" ", pad), e.Msg)
}
