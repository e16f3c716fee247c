package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildNavigationFixture() Item {
	arena := NewArena()
	root := newTable(originImplicit)
	server, _ := root.headerChild(arena, newKey("server", Span{}))
	_ = server.insertLeaf(arena, newKey("host", Span{}), stringItem(borrowedStr("localhost"), Span{}))
	ports := newArray(arrayPlain)
	ports.push(arena, integerItem(80, Span{}))
	ports.push(arena, integerItem(443, Span{}))
	_ = server.insertLeaf(arena, newKey("ports", Span{}), arrayItem(ports, Span{}))
	return tableItem(root, Span{})
}

func TestMaybeItemFieldChain(t *testing.T) {
	root := buildNavigationFixture()
	it, ok := root.Query("server.host").Get()
	require.True(t, ok)
	s, _ := it.AsString()
	require.Equal(t, "localhost", s)
}

func TestMaybeItemIndexAfterField(t *testing.T) {
	root := buildNavigationFixture()
	it, ok := someItem(root).Field("server").Field("ports").Index(1).Get()
	require.True(t, ok)
	n, _ := it.AsInteger()
	require.Equal(t, int64(443), n)
}

func TestMaybeItemMissingFieldNeverPanics(t *testing.T) {
	root := buildNavigationFixture()
	m := root.Query("server.missing.deeper.still")
	require.False(t, m.IsSome())
	_, ok := m.Get()
	require.False(t, ok)
}

func TestMaybeItemOrElse(t *testing.T) {
	root := buildNavigationFixture()
	fallback := integerItem(-1, Span{})
	it := root.Query("server.missing").OrElse(fallback)
	n, _ := it.AsInteger()
	require.Equal(t, int64(-1), n)
}
