package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpanSlice(t *testing.T) {
	input := []byte("hello world")
	sp := NewSpan(6, 11)
	require.Equal(t, "world", string(sp.Slice(input)))
	require.Equal(t, 5, sp.Len())
}

func TestSpanUnion(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(10, 15)
	u := a.Union(b)
	require.Equal(t, 2, u.Start())
	require.Equal(t, 15, u.End())
}

func TestSpanIsZero(t *testing.T) {
	require.True(t, Span{}.IsZero())
	require.False(t, NewSpan(0, 1).IsZero())
}

func TestLocate(t *testing.T) {
	input := []byte("a = 1\nb = 2\n")
	pos := Locate(input, 8)
	require.Equal(t, LineCol{Line: 2, Column: 3}, pos)
}

func TestDiagnosticRendersCaret(t *testing.T) {
	input := []byte("a = @\n")
	err := newError(KindUnexpectedChar, NewSpan(4, 5), "unexpected character")
	out := Diagnostic(input, err)
	require.Contains(t, out, "unexpected-char")
	require.Contains(t, out, "a = @")
	require.Contains(t, out, "^")
}
