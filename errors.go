package toml

import (
	"errors"
	"fmt"
)

// Sentinel errors for library-internal invariant violations that are never
// produced by parsing TOML input.
var (
	// ErrArenaLifetime names the misuse of arena-owned memory after the
	// arena that produced it is gone. No function in this package returns
	// it or panics with it.
	ErrArenaLifetime = errors.New("toml: arena-owned value used beyond its arena's lifetime")
	// ErrNotTable is returned by Item.TableHelper when called on a non-table item.
	ErrNotTable = errors.New("toml: table helper requested on a non-table item")
)

// ErrorKind discriminates the taxonomy of parse- and deserialize-time
// failures.
type ErrorKind int

const (
	// KindUnexpectedEOF: input ends mid-construct.
	KindUnexpectedEOF ErrorKind = iota
	// KindUnexpectedChar: unparseable byte in the current context.
	KindUnexpectedChar
	// KindInvalidNumber: integer literal violates grammar or range.
	KindInvalidNumber
	// KindInvalidFloat: float literal violates grammar.
	KindInvalidFloat
	// KindInvalidEscape: unknown \x escape in a string.
	KindInvalidEscape
	// KindInvalidUnicode: \u/\U escape is not a Unicode scalar value.
	KindInvalidUnicode
	// KindInvalidDateTime: datetime component out of range or mis-shaped.
	KindInvalidDateTime
	// KindDuplicateKey: key defined twice, or a frozen table was extended.
	KindDuplicateKey
	// KindDottedKeyInvalidType: a dotted key traversed a non-table value.
	KindDottedKeyInvalidType
	// KindRecursionLimit: nesting exceeded the fixed depth limit.
	KindRecursionLimit
	// KindInputTooLarge: input exceeds the configured maximum size
	// (MaxInputSize unless lowered with WithMaxInputSize).
	KindInputTooLarge
	// KindMissingField: deserialize-time required field absent.
	KindMissingField
	// KindUnexpectedField: deserialize-time table has unconsumed entries.
	KindUnexpectedField
	// KindWrongType: deserialize-time item kind does not match the target.
	KindWrongType
	// KindCustom: user-supplied message.
	KindCustom
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected-eof"
	case KindUnexpectedChar:
		return "unexpected-char"
	case KindInvalidNumber:
		return "invalid-number"
	case KindInvalidFloat:
		return "invalid-float"
	case KindInvalidEscape:
		return "invalid-escape"
	case KindInvalidUnicode:
		return "invalid-unicode"
	case KindInvalidDateTime:
		return "invalid-datetime"
	case KindDuplicateKey:
		return "duplicate-key"
	case KindDottedKeyInvalidType:
		return "dotted-key-invalid-type"
	case KindRecursionLimit:
		return "recursion-limit"
	case KindInputTooLarge:
		return "input-too-large"
	case KindMissingField:
		return "missing-field"
	case KindUnexpectedField:
		return "unexpected-field"
	case KindWrongType:
		return "wrong-type"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Error is a small, cheap-to-copy diagnostic: a kind, a span, and an
// optional message/secondary span for context. Line/column are resolved on
// demand by Locate/Diagnostic rather than stored, keeping Error small.
type Error struct {
	Kind ErrorKind
	Span Span

	// Message carries extra detail for KindCustom and for messages that
	// name the offending token or field (e.g. missing-field's field name).
	Message string

	// FirstSpan, when non-zero, is the span of the first (conflicting)
	// definition for duplicate-key / frozen-table errors, so callers can
	// render "already defined at ..." pointing at the original site.
	FirstSpan Span
	hasFirst  bool
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

func newError(kind ErrorKind, span Span, msg string) *Error {
	return &Error{Kind: kind, Span: span, Message: msg}
}

func newErrorWithFirst(kind ErrorKind, span, first Span, msg string) *Error {
	return &Error{Kind: kind, Span: span, Message: msg, FirstSpan: first, hasFirst: true}
}

// HasFirstSpan reports whether FirstSpan carries a meaningful secondary
// location (the site of the original/conflicting definition).
func (e *Error) HasFirstSpan() bool { return e.hasFirst }
