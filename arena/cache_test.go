package arena

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_HitReturnsSameNode(t *testing.T) {
	a := New()
	first := a.FromString("/var/log/syslog")
	require.Equal(t, 1, a.Stats().CacheEntries, "miss populates after build")
	second := a.FromString("/var/log/syslog")
	require.Equal(t, first, second)
	require.Equal(t, 1, a.Stats().CacheEntries)
}

func TestCache_DisabledBehavesIdentically(t *testing.T) {
	cached := New()
	plain := New(WithCacheSize(0))

	inputs := []string{"/a/b", "/a/b/c", "a/b", "C:/x", "/a/b"}
	for _, in := range inputs {
		require.Equal(t, plain.FromString(in), cached.FromString(in),
			"cache changes performance, not results (input %q)", in)
	}
	require.Zero(t, plain.Stats().CacheEntries)
}

func TestCache_Bounded(t *testing.T) {
	a := New(WithCacheSize(8))
	for i := 0; i < 100; i++ {
		a.FromString(fmt.Sprintf("/dir/file%d", i))
	}
	require.LessOrEqual(t, a.Stats().CacheEntries, 8)

	// Evicted entries still resolve to their original nodes via the tree.
	early := a.FromString("/dir/file0")
	parts, err := a.Parts(early)
	require.NoError(t, err)
	require.Equal(t, []string{"/", "dir", "file0"}, parts)
}

func TestCache_EquivalentSpellingsShareEntry(t *testing.T) {
	a := New()
	require.Equal(t, a.FromString("/a//b"), a.FromParts("/", "a", "b"))
	require.Equal(t, 1, a.Stats().CacheEntries, "normalized key collapses spellings")
}
