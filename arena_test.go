package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaNewStringTracksBytes(t *testing.T) {
	a := NewArena()
	s := a.newString([]byte("hello"))
	require.Equal(t, "hello", s)
	require.Equal(t, uint64(5), a.Stats().BytesAllocated)
}

func TestArenaScratchReuse(t *testing.T) {
	a := NewArena()
	buf := a.resetScratch(16)
	require.Len(t, buf, 0)
	require.GreaterOrEqual(t, cap(buf), 16)
	buf = append(buf, 'a', 'b', 'c')
	a.saveScratch(buf)

	buf2 := a.resetScratch(4)
	require.Len(t, buf2, 0)
	require.GreaterOrEqual(t, cap(buf2), 16)
}

func TestArenaRecordGrowth(t *testing.T) {
	a := NewArena()
	a.recordGrowth(32)
	a.recordGrowth(64)
	stats := a.Stats()
	require.Equal(t, uint64(2), stats.GrowthEvents)
	require.Equal(t, uint64(96), stats.BytesAllocated)
}
