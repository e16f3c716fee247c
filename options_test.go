package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	require.Equal(t, defaultRecursionLimit, o.recursionLimit)
	require.Equal(t, MaxInputSize, o.maxInputSize)
}

func TestWithMaxInputSizeClampsToMax(t *testing.T) {
	o := resolveOptions([]Option{WithMaxInputSize(MaxInputSize * 2)})
	require.Equal(t, MaxInputSize, o.maxInputSize)
}

func TestWithRecursionLimit(t *testing.T) {
	o := resolveOptions([]Option{WithRecursionLimit(4)})
	require.Equal(t, 4, o.recursionLimit)
}
