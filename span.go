package toml

import (
	"strings"
)

// MaxInputSize is the largest input Parse will accept; longer input is
// rejected with KindInputTooLarge.
const MaxInputSize = 512 << 20 // 512 MiB

// MaxValueLength is a 1 MiB bound on a single value's span. Parse does not
// check value lengths against it, and Span's uint32 length field is not
// limited to it.
const MaxValueLength = 1 << 20 // 1 MiB

// Span is a byte range [Start, End) into the document given to Parse.
//
// Span is stored as a start offset plus a length rather than a start/end
// pair so that the zero Span is unambiguous.
type Span struct {
	start  uint32
	length uint32
}

// NewSpan builds a Span from a half-open byte range.
func NewSpan(start, end uint32) Span {
	return Span{start: start, length: end - start}
}

// Start returns the span's start offset.
func (s Span) Start() int { return int(s.start) }

// End returns the span's end offset (exclusive).
func (s Span) End() int { return int(s.start + s.length) }

// Len returns the span's byte length.
func (s Span) Len() int { return int(s.length) }

// IsZero reports whether the span is the zero-value empty span at offset 0.
func (s Span) IsZero() bool { return s.start == 0 && s.length == 0 }

// Equal reports whether two spans cover the same byte range. Defined so
// go-cmp (which otherwise panics on Span's unexported fields) can compare
// values containing a Span without an AllowUnexported option.
func (s Span) Equal(other Span) bool { return s == other }

// Slice returns the substring of input the span covers. The caller must
// ensure the span was produced against this exact input.
func (s Span) Slice(input []byte) []byte {
	return input[s.start : s.start+s.length]
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	start := s.start
	if other.start < start {
		start = other.start
	}
	end := s.start + s.length
	otherEnd := other.start + other.length
	if otherEnd > end {
		end = otherEnd
	}
	return NewSpan(start, end)
}

// LineCol is a 1-indexed (line, column) position, resolved on demand from a
// Span and the original input. Kept out of Error so that Error stays small
// and cheap to construct and propagate; diagnostic rendering is a pure
// function of (input, Error).
type LineCol struct {
	Line   int
	Column int
}

// Locate resolves the 1-indexed line and column of a byte offset within
// input. Offsets past the end of input resolve to the position one past the
// last byte.
func Locate(input []byte, offset int) LineCol {
	if offset > len(input) {
		offset = len(input)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return LineCol{Line: line, Column: col}
}

// Diagnostic renders a pretty-printed source snippet with a caret under the
// error's span. It is a free function of (input, error) rather than part
// of Error so Error itself stays a small, cheap-to-copy value.
func Diagnostic(input []byte, err *Error) string {
	if err == nil {
		return ""
	}
	pos := Locate(input, err.Span.Start())
	lines := strings.Split(string(input), "\n")

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteByte('\n')
	if pos.Line < 1 || pos.Line > len(lines) {
		return b.String()
	}
	lineContent := lines[pos.Line-1]
	b.WriteString("  ")
	b.WriteString(lineContent)
	b.WriteByte('\n')
	b.WriteString("  ")
	for i := 1; i < pos.Column; i++ {
		if i-1 < len(lineContent) && lineContent[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("^\n")
	return b.String()
}
