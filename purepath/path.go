package purepath

import (
	"errors"
	"strings"

	"github.com/joshuapare/pathkit/arena"
	"github.com/joshuapare/pathkit/arena/tree"
)

var (
	// ErrNoName indicates a WithName/WithSuffix/WithStem call on a path
	// with no final component (a root).
	ErrNoName = errors.New("purepath: path has no name")

	// ErrNotRelative indicates a RelativeTo call where the base is not a
	// prefix of the path.
	ErrNotRelative = errors.New("purepath: path is not relative to base")
)

// Path is a position in an allocator's tree. The zero value is not usable;
// construct paths with New, FromNode, or Default.
//
// Paths built through this package always hold valid node indices, so the
// navigation methods cannot fail and return values directly.
type Path struct {
	alloc *arena.Allocator
	node  tree.NodeID
}

// New builds a path from components in the given allocator. No components
// yields the empty relative path ".".
func New(a *arena.Allocator, parts ...string) Path {
	return Path{alloc: a, node: a.FromParts(parts...)}
}

// FromNode wraps an existing node index of the given allocator. The index
// must have been produced by that allocator.
func FromNode(a *arena.Allocator, id tree.NodeID) Path {
	return Path{alloc: a, node: id}
}

// Allocator returns the allocator owning this path's storage.
func (p Path) Allocator() *arena.Allocator { return p.alloc }

// Node returns the path's node index within its allocator.
func (p Path) Node() tree.NodeID { return p.node }

// Parts returns the path's components, pathlib-shaped: the absolute root
// alone is ("/"), a bare drive root ("C:"), and the empty relative path
// has no parts at all.
func (p Path) Parts() []string {
	if p.alloc.IsRoot(p.node) {
		kind, _ := p.alloc.RootKind(p.node)
		if kind == tree.RootAbsolute || kind == tree.RootDrive {
			name, _ := p.alloc.Name(p.node)
			return []string{name}
		}
		return nil
	}
	parts, _ := p.alloc.Parts(p.node)
	return parts
}

// Parent returns the parent directory. A root's parent is itself.
func (p Path) Parent() Path {
	id, _ := p.alloc.Parent(p.node)
	return Path{alloc: p.alloc, node: id}
}

// Parents returns the path's ancestors, nearest first, ending with the
// path's root. A root has no parents.
func (p Path) Parents() []Path {
	var out []Path
	for cur := p; ; {
		parent := cur.Parent()
		if parent == cur {
			break
		}
		out = append(out, parent)
		cur = parent
	}
	return out
}

// Name returns the final component, or "" for any root.
func (p Path) Name() string {
	if p.alloc.IsRoot(p.node) {
		return ""
	}
	name, _ := p.alloc.Name(p.node)
	return name
}

// Suffix returns the final component's extension including the dot, or "".
// A leading dot does not start an extension: ".bashrc" has no suffix.
func (p Path) Suffix() string {
	name := p.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// Suffixes returns all extensions of the final component, outermost last:
// "a.tar.gz" yields [".tar", ".gz"].
func (p Path) Suffixes() []string {
	name := p.Name()
	if i := strings.IndexByte(name, '.'); i > 0 {
		rest := name[i:]
		var out []string
		for rest != "" && rest != "." {
			next := strings.IndexByte(rest[1:], '.')
			if next < 0 {
				out = append(out, rest)
				break
			}
			out = append(out, rest[:next+1])
			rest = rest[next+1:]
		}
		return out
	}
	return nil
}

// Stem returns the final component without its suffix.
func (p Path) Stem() string {
	name := p.Name()
	if suffix := p.Suffix(); suffix != "" {
		return name[:len(name)-len(suffix)]
	}
	return name
}

// Join appends components and returns the result. The joined path keeps
// this path's anchor; components may contain separators and are split.
func (p Path) Join(parts ...string) Path {
	if len(parts) == 0 {
		return p
	}
	all := append(p.Parts(), parts...)
	return Path{alloc: p.alloc, node: p.alloc.FromParts(all...)}
}

// JoinPath appends other paths' components. The result keeps this path's
// anchor regardless of the operands' own anchors.
func (p Path) JoinPath(others ...Path) Path {
	all := p.Parts()
	for _, o := range others {
		all = append(all, o.Parts()...)
	}
	return Path{alloc: p.alloc, node: p.alloc.FromParts(all...)}
}

// IsAbsolute reports whether the path is anchored at the absolute root or
// a drive root.
func (p Path) IsAbsolute() bool {
	kind, _ := p.alloc.RootKind(p.node)
	return kind == tree.RootAbsolute || kind == tree.RootDrive
}

// IsRelativeTo reports whether other's components are a prefix of p's.
func (p Path) IsRelativeTo(other Path) bool {
	mine, theirs := p.Parts(), other.Parts()
	if len(theirs) > len(mine) {
		return false
	}
	for i, part := range theirs {
		if mine[i] != part {
			return false
		}
	}
	return true
}

// RelativeTo strips other's components off the front of p. The result is
// always relative; stripping everything yields ".".
func (p Path) RelativeTo(other Path) (Path, error) {
	if !p.IsRelativeTo(other) {
		return Path{}, ErrNotRelative
	}
	rest := p.Parts()[len(other.Parts()):]
	if len(rest) == 0 {
		return New(p.alloc, "."), nil
	}
	return New(p.alloc, rest...), nil
}

// WithName replaces the final component.
func (p Path) WithName(name string) (Path, error) {
	if p.Name() == "" {
		return Path{}, ErrNoName
	}
	return p.Parent().Join(name), nil
}

// WithSuffix replaces the final component's suffix. An empty suffix
// removes it; a missing leading dot is supplied.
func (p Path) WithSuffix(suffix string) (Path, error) {
	if suffix == "" {
		return p.WithName(p.Stem())
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return p.WithName(p.Stem() + suffix)
}

// WithStem replaces the final component, keeping its suffix.
func (p Path) WithStem(stem string) (Path, error) {
	return p.WithName(stem + p.Suffix())
}

// Equal reports logical equality. Paths in the same allocator compare by
// node index; paths from different allocators by rendered string.
func (p Path) Equal(other Path) bool {
	if p.alloc == other.alloc {
		return p.node == other.node
	}
	return p.String() == other.String()
}

// String renders the path. The empty relative path renders as ".".
func (p Path) String() string {
	parts := p.Parts()
	if len(parts) == 0 {
		return "."
	}
	sep := p.alloc.Separator()
	switch {
	case parts[0] == sep:
		return sep + strings.Join(parts[1:], sep)
	case strings.HasSuffix(parts[0], ":"):
		if len(parts) == 1 {
			return parts[0]
		}
		return parts[0] + sep + strings.Join(parts[1:], sep)
	default:
		return strings.Join(parts, sep)
	}
}
