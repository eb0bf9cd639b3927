package purepath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathkit/arena"
)

func TestNew_Empty(t *testing.T) {
	a := arena.New()
	p := New(a)
	require.Equal(t, ".", p.String())
	require.Empty(t, p.Parts())
	require.Equal(t, "", p.Name())
}

func TestParts_Shapes(t *testing.T) {
	a := arena.New()

	require.Equal(t, []string{"/"}, New(a, "/").Parts())
	require.Equal(t, []string{"/", "home", "user"}, New(a, "/home/user").Parts())
	require.Equal(t, []string{"a", "b"}, New(a, "a/b").Parts())
	require.Equal(t, []string{"C:"}, New(a, "C:").Parts())
	require.Equal(t, []string{"C:", "Users"}, New(a, "C:/Users").Parts())
}

func TestString(t *testing.T) {
	a := arena.New()

	tests := map[string]string{
		"/home/user": "/home/user",
		"/":          "/",
		"a/b":        "a/b",
		"":           ".",
		".":          ".",
		"C:":         "C:",
		"C:/Users":   "C:/Users",
		"/a//b/":     "/a/b",
	}
	for in, want := range tests {
		require.Equal(t, want, New(a, in).String(), "input %q", in)
	}
}

func TestParent(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user/docs")
	require.Equal(t, "/home/user", p.Parent().String())
	require.Equal(t, "/home", p.Parent().Parent().String())
	require.Equal(t, "/", p.Parent().Parent().Parent().String())

	root := New(a, "/")
	require.Equal(t, root, root.Parent(), "a root is its own parent")

	rel := New(a, "a")
	require.Equal(t, ".", rel.Parent().String())
}

func TestParents(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user")
	var got []string
	for _, parent := range p.Parents() {
		got = append(got, parent.String())
	}
	require.Equal(t, []string{"/home", "/"}, got)

	require.Empty(t, New(a, "/").Parents())

	single := New(a, "a").Parents()
	require.Len(t, single, 1)
	require.Equal(t, ".", single[0].String())
}

func TestNameStemSuffix(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user/archive.tar.gz")
	require.Equal(t, "archive.tar.gz", p.Name())
	require.Equal(t, "archive.tar", p.Stem())
	require.Equal(t, ".gz", p.Suffix())
	require.Equal(t, []string{".tar", ".gz"}, p.Suffixes())

	dotfile := New(a, ".bashrc")
	require.Equal(t, ".bashrc", dotfile.Name())
	require.Equal(t, ".bashrc", dotfile.Stem())
	require.Equal(t, "", dotfile.Suffix())
	require.Empty(t, dotfile.Suffixes())

	plain := New(a, "README")
	require.Equal(t, "README", plain.Stem())
	require.Equal(t, "", plain.Suffix())

	// Roots have no name.
	require.Equal(t, "", New(a, "/").Name())
	require.Equal(t, "", New(a, "C:").Name())
}

func TestJoin(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user").Join("docs", "file.txt")
	require.Equal(t, "/home/user/docs/file.txt", p.String())
	require.True(t, p.IsAbsolute())

	// Joining onto a bare root keeps the anchor.
	require.Equal(t, "/etc", New(a, "/").Join("etc").String())
	require.Equal(t, "C:/Users", New(a, "C:").Join("Users").String())
	require.Equal(t, "a/b", New(a).Join("a", "b").String())

	// Components containing separators split.
	require.Equal(t, "/home/user/a/b", New(a, "/home/user").Join("a/b").String())
}

func TestJoin_SharesNodes(t *testing.T) {
	a := arena.New()

	stepwise := New(a, "base").Join("a").Join("b")
	direct := New(a, "base").Join("a", "b")
	require.Equal(t, stepwise, direct, "same allocator and node")
	require.True(t, stepwise == direct, "Path values are comparable")
}

func TestJoinPath(t *testing.T) {
	a := arena.New()

	base := New(a, "/srv")
	other := New(a, "data/files")
	require.Equal(t, "/srv/data/files", base.JoinPath(other).String())
}

func TestIsAbsolute(t *testing.T) {
	a := arena.New()

	require.True(t, New(a, "/etc").IsAbsolute())
	require.True(t, New(a, "C:/Windows").IsAbsolute(), "drive paths are anchored")
	require.False(t, New(a, "etc").IsAbsolute())
	require.False(t, New(a).IsAbsolute())
}

func TestRelativeTo(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user/docs/file.txt")
	base := New(a, "/home/user")

	rel, err := p.RelativeTo(base)
	require.NoError(t, err)
	require.Equal(t, "docs/file.txt", rel.String())
	require.False(t, rel.IsAbsolute())

	require.True(t, p.IsRelativeTo(base))
	require.False(t, base.IsRelativeTo(p))

	_, err = base.RelativeTo(p)
	require.ErrorIs(t, err, ErrNotRelative)

	same, err := p.RelativeTo(p)
	require.NoError(t, err)
	require.Equal(t, ".", same.String())
}

func TestWithName(t *testing.T) {
	a := arena.New()

	p := New(a, "/home/user/old.txt")
	renamed, err := p.WithName("new.txt")
	require.NoError(t, err)
	require.Equal(t, "/home/user/new.txt", renamed.String())

	_, err = New(a, "/").WithName("x")
	require.ErrorIs(t, err, ErrNoName)
}

func TestWithSuffixAndStem(t *testing.T) {
	a := arena.New()
	p := New(a, "report.txt")

	md, err := p.WithSuffix(".md")
	require.NoError(t, err)
	require.Equal(t, "report.md", md.String())

	// Missing dot is supplied; empty suffix strips.
	md2, err := p.WithSuffix("md")
	require.NoError(t, err)
	require.Equal(t, md, md2)

	bare, err := p.WithSuffix("")
	require.NoError(t, err)
	require.Equal(t, "report", bare.String())

	draft, err := p.WithStem("draft")
	require.NoError(t, err)
	require.Equal(t, "draft.txt", draft.String())
}

func TestEqual(t *testing.T) {
	a1 := arena.New()
	a2 := arena.New()

	p1 := New(a1, "/home/user")
	p2 := New(a1, "/home/user")
	require.True(t, p1 == p2)
	require.True(t, p1.Equal(p2))

	// Same path text in a different allocator: not identical, but Equal.
	p3 := New(a2, "/home/user")
	require.False(t, p1 == p3)
	require.True(t, p1.Equal(p3))

	require.False(t, p1.Equal(New(a2, "/home/other")))
}

func TestPathAsMapKey(t *testing.T) {
	a := arena.New()

	seen := map[Path]int{}
	seen[New(a, "/a/b")]++
	seen[New(a, "/a/b")]++
	seen[New(a, "/a/c")]++
	require.Len(t, seen, 2)
	require.Equal(t, 2, seen[New(a, "/a/b")])
}

func TestFromNode(t *testing.T) {
	a := arena.New()
	id := a.FromString("/var/log")
	p := FromNode(a, id)
	require.Equal(t, "/var/log", p.String())
	require.Equal(t, id, p.Node())
	require.Same(t, a, p.Allocator())
}
