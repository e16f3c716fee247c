package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemAccessorsMismatchReturnFalse(t *testing.T) {
	it := integerItem(42, Span{})
	_, ok := it.AsString()
	require.False(t, ok)
	n, ok := it.AsInteger()
	require.True(t, ok)
	require.Equal(t, int64(42), n)
}

func TestItemKindString(t *testing.T) {
	require.Equal(t, "integer", KindInteger.String())
	require.Equal(t, "table", KindTable.String())
}

func TestItemTypeMismatchError(t *testing.T) {
	it := stringItem(borrowedStr("x"), NewSpan(0, 1))
	err := it.typeMismatch("integer")
	require.Equal(t, KindWrongType, err.Kind)
	require.Contains(t, err.Message, "integer")
	require.Contains(t, err.Message, "string")
}

func TestItemIsTableIsArray(t *testing.T) {
	tbl := newTable(originHeader)
	it := tableItem(tbl, Span{})
	require.True(t, it.IsTable())
	require.False(t, it.IsArray())
}
