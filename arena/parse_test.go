package arena

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathkit/arena/tree"
)

func TestParseFirst(t *testing.T) {
	a := New()

	tests := []struct {
		in    string
		kind  tree.RootKind
		drive string
		comps []string
	}{
		{"", tree.RootRelative, "", nil},
		{".", tree.RootRelative, "", nil},
		{"a", tree.RootRelative, "", []string{"a"}},
		{"a/b", tree.RootRelative, "", []string{"a", "b"}},
		{`a\b`, tree.RootRelative, "", []string{"a", "b"}},
		{"/", tree.RootAbsolute, "", nil},
		{"//", tree.RootAbsolute, "", nil},
		{"/home/user", tree.RootAbsolute, "", []string{"home", "user"}},
		{"C:", tree.RootDrive, "C", nil},
		{"c:", tree.RootDrive, "C", nil},
		{"C:/", tree.RootDrive, "C", nil},
		{`C:\Windows`, tree.RootDrive, "C", []string{"Windows"}},
		{"C:/Users/alice", tree.RootDrive, "C", []string{"Users", "alice"}},
	}
	for _, tc := range tests {
		kind, drive, comps := a.parseFirst(tc.in)
		require.Equal(t, tc.kind, kind, "kind of %q", tc.in)
		require.Equal(t, tc.drive, drive, "drive of %q", tc.in)
		require.Equal(t, tc.comps, comps, "components of %q", tc.in)
	}
}

func TestAppendSplit(t *testing.T) {
	a := New()

	require.Nil(t, a.appendSplit(nil, ""))
	require.Equal(t, []string{"a"}, a.appendSplit(nil, "a"))
	require.Equal(t, []string{"a", "b"}, a.appendSplit(nil, "a//b"))
	require.Equal(t, []string{"x", "a", "b"}, a.appendSplit([]string{"x"}, `a\b`))
}

func TestMemoKey_Distinct(t *testing.T) {
	keys := map[string]string{}
	for _, tc := range []struct {
		kind  tree.RootKind
		drive string
		comps []string
	}{
		{tree.RootRelative, "", nil},
		{tree.RootAbsolute, "", nil},
		{tree.RootRelative, "", []string{"a"}},
		{tree.RootAbsolute, "", []string{"a"}},
		{tree.RootRelative, "", []string{"a", "b"}},
		{tree.RootRelative, "", []string{"ab"}},
		{tree.RootDrive, "C", []string{"a"}},
		{tree.RootDrive, "D", []string{"a"}},
	} {
		key := memoKey(tc.kind, tc.drive, tc.comps)
		prev, dup := keys[key]
		require.False(t, dup, "key %q collides with %q", key, prev)
		keys[key] = key
	}
}
