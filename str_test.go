package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrBorrowedVsOwned(t *testing.T) {
	b := borrowedStr("hi")
	require.False(t, b.IsArenaOwned())
	require.Equal(t, "hi", b.String())

	o := ownedStr("hi")
	require.True(t, o.IsArenaOwned())
	require.True(t, b.Equal(o))
}

func TestStrLen(t *testing.T) {
	require.Equal(t, 3, borrowedStr("abc").Len())
}
