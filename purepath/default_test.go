package purepath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAllocator_Stable(t *testing.T) {
	require.Same(t, DefaultAllocator(), DefaultAllocator())
}

func TestDefault(t *testing.T) {
	p := Default("/tmp", "scratch")
	require.Equal(t, "/tmp/scratch", p.String())
	require.Same(t, DefaultAllocator(), p.Allocator())

	// Paths from Default share structure like any others.
	require.True(t, p == Default("/tmp/scratch"))
}
