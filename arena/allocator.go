package arena

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/joshuapare/pathkit/arena/strpool"
	"github.com/joshuapare/pathkit/arena/tree"
)

const (
	// DefaultSeparator is the path separator used unless WithSeparator
	// overrides it.
	DefaultSeparator = "/"

	// DefaultCacheSize bounds the construction memo cache.
	DefaultCacheSize = 4096
)

// Allocator owns a string pool and node tree and exposes the path-building,
// navigation, and introspection operations over them.
type Allocator struct {
	pool *strpool.Pool
	tree *tree.Tree

	// cache memoizes FromParts results; nil when disabled.
	cache     *lru.Cache
	cacheSize int

	sep string
}

// Option configures an Allocator at construction time.
type Option func(*Allocator)

// WithSeparator sets the path separator. Empty separators are ignored.
func WithSeparator(sep string) Option {
	return func(a *Allocator) {
		if sep != "" {
			a.sep = sep
		}
	}
}

// WithCacheSize bounds the construction memo cache. A size of 0 or less
// disables caching entirely.
func WithCacheSize(n int) Option {
	return func(a *Allocator) {
		a.cacheSize = n
	}
}

// New returns an allocator with a fresh pool and tree. The pool and tree
// live exactly as long as the allocator; nothing is ever removed from
// either.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		sep:       DefaultSeparator,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.pool = strpool.New()
	a.tree = tree.New(a.pool)
	if a.cacheSize > 0 {
		cache, err := lru.New(a.cacheSize)
		if err != nil {
			panic(err.Error()) // only errors on size <= 0
		}
		a.cache = cache
	}
	return a
}

// Separator returns the configured path separator.
func (a *Allocator) Separator() string { return a.sep }

// RelativeRoot returns the node index anchoring relative paths.
func (a *Allocator) RelativeRoot() tree.NodeID { return a.tree.RelativeRoot() }

// AbsoluteRoot returns the node index anchoring absolute paths.
func (a *Allocator) AbsoluteRoot() tree.NodeID { return a.tree.AbsoluteRoot() }

// FromParts builds (or finds) the path named by the given components and
// returns its node index.
//
// The first part decides the anchor: "" or "." is the empty relative path,
// a leading separator selects the absolute root, and a drive-letter prefix
// ("C:") selects a drive root. Every part may itself contain separators
// and is split; empty segments never create nodes. Prefixes shared with
// previously built paths reuse the existing nodes.
func (a *Allocator) FromParts(parts ...string) tree.NodeID {
	if len(parts) == 0 {
		return a.tree.RelativeRoot()
	}

	kind, drive, comps := a.parseFirst(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		comps = a.appendSplit(comps, part)
	}

	var key string
	if a.cache != nil {
		key = memoKey(kind, drive, comps)
		if v, ok := a.cache.Get(key); ok {
			return v.(tree.NodeID)
		}
	}

	var cur tree.NodeID
	switch kind {
	case tree.RootAbsolute:
		cur = a.tree.AbsoluteRoot()
	case tree.RootDrive:
		cur = a.tree.DriveRoot(drive)
	default:
		cur = a.tree.RelativeRoot()
	}

	for _, comp := range comps {
		nameID := a.pool.Intern(comp)
		child, ok := a.tree.FindChild(cur, nameID)
		if !ok {
			child = a.tree.AddNode(cur, nameID)
		}
		cur = child
	}

	if a.cache != nil {
		a.cache.Add(key, cur)
	}
	return cur
}

// FromString builds (or finds) the path named by a delimited string.
// Consecutive separators collapse, so "///" is the absolute root.
func (a *Allocator) FromString(s string) tree.NodeID {
	return a.FromParts(s)
}

// Parts returns the path's components root-to-leaf, resolved to strings.
// Paths anchored at the absolute or a drive root begin with the root's
// marker ("/", "C:"); root nodes themselves yield an empty slice.
func (a *Allocator) Parts(id tree.NodeID) ([]string, error) {
	ids, err := a.tree.Components(id)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(ids))
	for _, nameID := range ids {
		s, err := a.pool.Resolve(nameID)
		if err != nil {
			return nil, err
		}
		if s == "" {
			// The relative root's marker contributes no component.
			continue
		}
		parts = append(parts, s)
	}
	return parts, nil
}

// Parent returns the parent node index. A root is its own parent, so no
// "no parent" sentinel ever reaches callers.
func (a *Allocator) Parent(id tree.NodeID) (tree.NodeID, error) {
	parent, err := a.tree.Parent(id)
	if err != nil {
		return tree.NoParent, err
	}
	if parent == tree.NoParent {
		return id, nil
	}
	return parent, nil
}

// Name resolves the node's own component name. The absolute root names
// itself "/", the relative root "".
func (a *Allocator) Name(id tree.NodeID) (string, error) {
	nameID, err := a.tree.Name(id)
	if err != nil {
		return "", err
	}
	return a.pool.Resolve(nameID)
}

// Join appends components to an existing path and returns the result.
// It is defined purely in terms of Parts and FromParts, so the result
// keeps the base's anchor whenever the base has any components, and the
// shared prefix reuses the base's nodes.
func (a *Allocator) Join(base tree.NodeID, parts ...string) (tree.NodeID, error) {
	baseParts, err := a.Parts(base)
	if err != nil {
		return tree.NoParent, err
	}
	if len(parts) == 0 {
		return base, nil
	}
	all := make([]string, 0, len(baseParts)+len(parts))
	all = append(all, baseParts...)
	all = append(all, parts...)
	return a.FromParts(all...), nil
}

// IsAbsolute reports whether the path's ultimate root is the absolute
// root. Drive-anchored paths report false here; use RootKind to observe
// drive anchoring.
func (a *Allocator) IsAbsolute(id tree.NodeID) (bool, error) {
	root, err := a.tree.RootOf(id)
	if err != nil {
		return false, err
	}
	return root == a.tree.AbsoluteRoot(), nil
}

// RootKind classifies the path's anchor: relative, absolute, or drive.
func (a *Allocator) RootKind(id tree.NodeID) (tree.RootKind, error) {
	root, err := a.tree.RootOf(id)
	if err != nil {
		return tree.RootUnknown, err
	}
	return a.tree.ClassifyRoot(root), nil
}

// IsRoot reports whether id is one of the allocator's root nodes.
func (a *Allocator) IsRoot(id tree.NodeID) bool {
	return a.tree.IsRoot(id)
}

// Stats reports allocator metrics.
type Stats struct {
	Strings      int // distinct interned strings
	StringBytes  int // deduplicated text bytes held by the pool
	Nodes        int // tree nodes, roots included
	CacheEntries int // live memo cache entries
	DriveRoots   int // drive roots created

	RelativeRoot tree.NodeID
	AbsoluteRoot tree.NodeID
}

// Stats returns current allocator metrics. Introspection only.
func (a *Allocator) Stats() Stats {
	s := Stats{
		Strings:      a.pool.Len(),
		StringBytes:  a.pool.Bytes(),
		Nodes:        a.tree.Len(),
		DriveRoots:   a.tree.DriveRootCount(),
		RelativeRoot: a.tree.RelativeRoot(),
		AbsoluteRoot: a.tree.AbsoluteRoot(),
	}
	if a.cache != nil {
		s.CacheEntries = a.cache.Len()
	}
	return s
}
