package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayPushAndGet(t *testing.T) {
	arena := NewArena()
	arr := newArray(arrayPlain)
	arr.push(arena, integerItem(1, Span{}))
	arr.push(arena, integerItem(2, Span{}))
	require.Equal(t, 2, arr.Len())
	it, ok := arr.Get(1)
	require.True(t, ok)
	n, _ := it.AsInteger()
	require.Equal(t, int64(2), n)
	_, ok = arr.Get(5)
	require.False(t, ok)
}

func TestArrayAppendTableRejectsOnPlainArray(t *testing.T) {
	arena := NewArena()
	arr := newArray(arrayPlain)
	_, err := arr.appendTable(arena, Span{})
	require.Error(t, err)
}

func TestArrayAppendTableRejectsAfterFreeze(t *testing.T) {
	arena := NewArena()
	arr := newArray(arrayOfTables)
	_, err := arr.appendTable(arena, Span{})
	require.Nil(t, err)
	arr.freeze()
	_, err = arr.appendTable(arena, Span{})
	require.Error(t, err)
}

func TestArrayItemsReturnsCopy(t *testing.T) {
	arena := NewArena()
	arr := newArray(arrayPlain)
	arr.push(arena, integerItem(1, Span{}))
	items := arr.Items()
	items[0] = integerItem(99, Span{})
	it, _ := arr.Get(0)
	n, _ := it.AsInteger()
	require.Equal(t, int64(1), n)
}
