package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a codec error.
type Kind int

const (
	// KindUnknownFormat means a format name did not match any known codec.
	KindUnknownFormat Kind = iota
	// KindParse means the input's structure is malformed: a bad binary frame
	// header, a malformed tabular row, or a text line without a separator.
	KindParse
	// KindFieldValue means a field's value does not satisfy its type or
	// enumeration.
	KindFieldValue
	// KindFieldMissing means a required field is absent from a text block.
	KindFieldMissing
	// KindFieldDuplicate means a field repeats within one text block.
	KindFieldDuplicate
	// KindRead wraps an underlying read failure.
	KindRead
	// KindWrite wraps an underlying write failure.
	KindWrite
)

// Error is the single error type surfaced by every codec. Field names the
// offending field when one is known, Value carries the offending literal, raw
// line or operation, and Err holds the underlying cause for I/O failures.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindUnknownFormat:
		fmt.Fprintf(&b, "unknown file format %q, available options are 'binary', 'csv' and 'text'", e.Value)
	case KindParse:
		b.WriteString("parse error")
		if e.Value != "" {
			fmt.Fprintf(&b, ": unexpected input %q", e.Value)
		}
	case KindFieldValue:
		fmt.Fprintf(&b, "field %s has unexpected value %q", e.Field, e.Value)
	case KindFieldMissing:
		fmt.Fprintf(&b, "field not found: %s", e.Field)
	case KindFieldDuplicate:
		fmt.Fprintf(&b, "duplicate field found: %s", e.Field)
	case KindRead:
		b.WriteString("read error")
		if e.Value != "" {
			fmt.Fprintf(&b, " (%s)", e.Value)
		}
	case KindWrite:
		b.WriteString("write error")
		if e.Value != "" {
			fmt.Fprintf(&b, " (%s)", e.Value)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a codec Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

func parseErr(value string, cause error) *Error {
	return &Error{Kind: KindParse, Value: value, Err: cause}
}

func fieldValueErr(field, value string) *Error {
	return &Error{Kind: KindFieldValue, Field: field, Value: value}
}

func readErr(op string, cause error) *Error {
	return &Error{Kind: KindRead, Value: op, Err: cause}
}

func writeErr(op string, cause error) *Error {
	return &Error{Kind: KindWrite, Value: op, Err: cause}
}
