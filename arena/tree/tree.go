package tree

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pathkit/arena/strpool"
)

// NodeID identifies a node by its position in the tree's backing array.
// The index, not the node's memory location, is the stable identity.
type NodeID int32

// NoParent is the parent reference of root nodes. It is exported so
// collaborating packages can distinguish true roots from ordinary nodes.
const NoParent NodeID = -1

// initialCapacity pre-sizes the node array; growth doubles from there.
const initialCapacity = 64

// RootKind classifies the ultimate ancestor of a node.
type RootKind uint8

const (
	// RootUnknown is returned only for nodes not produced by this tree.
	RootUnknown RootKind = iota

	// RootRelative anchors paths with no leading separator.
	RootRelative

	// RootAbsolute anchors paths beginning at the filesystem root.
	RootAbsolute

	// RootDrive anchors paths beginning at a drive letter.
	RootDrive
)

// String returns the kind's name for diagnostics.
func (k RootKind) String() string {
	switch k {
	case RootRelative:
		return "relative"
	case RootAbsolute:
		return "absolute"
	case RootDrive:
		return "drive"
	default:
		return "unknown"
	}
}

// node is one path step: a parent reference and an interned component name.
type node struct {
	parent NodeID
	name   strpool.ID
}

// childKey addresses the child index. Pairs are unique: AddNode records
// only the first node created for a pair, preserving the find-first-by-
// creation-order contract.
type childKey struct {
	parent NodeID
	name   strpool.ID
}

// Tree is the append-only array of path nodes plus root bookkeeping.
// The string pool is injected, not owned.
type Tree struct {
	pool  *strpool.Pool
	nodes []node

	children map[childKey]NodeID

	relativeRoot NodeID
	absoluteRoot NodeID
	driveRoots   map[string]NodeID
}

// New returns a tree holding only the two well-known roots, created in
// fixed order: the relative root first, the absolute root second.
func New(pool *strpool.Pool) *Tree {
	t := &Tree{
		pool:       pool,
		nodes:      make([]node, 0, initialCapacity),
		children:   make(map[childKey]NodeID, initialCapacity),
		driveRoots: make(map[string]NodeID),
	}
	t.relativeRoot = t.AddNode(NoParent, pool.Intern(""))
	t.absoluteRoot = t.AddNode(NoParent, pool.Intern("/"))
	return t
}

// RelativeRoot returns the index of the relative root (always 0).
func (t *Tree) RelativeRoot() NodeID { return t.relativeRoot }

// AbsoluteRoot returns the index of the absolute root (always 1).
func (t *Tree) AbsoluteRoot() NodeID { return t.absoluteRoot }

// AddNode appends a new node unconditionally and returns its index.
// It performs no dedup check; callers wanting structural sharing must
// consult FindChild first. The parent must be an existing node or
// NoParent — this is guaranteed by construction order, not validated.
func (t *Tree) AddNode(parent NodeID, name strpool.ID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent, name: name})

	// First child registered for a pair wins; later duplicates stay
	// reachable by index but are never returned by FindChild.
	key := childKey{parent: parent, name: name}
	if _, ok := t.children[key]; !ok {
		t.children[key] = id
	}
	return id
}

// FindChild returns the first node created with the given parent and name.
func (t *Tree) FindChild(parent NodeID, name strpool.ID) (NodeID, bool) {
	id, ok := t.children[childKey{parent: parent, name: name}]
	return id, ok
}

// DriveRoot returns the root node for the given drive letter, creating it
// on first use. Drive letters are folded to upper case, so "c" and "C"
// share one root named "C:".
func (t *Tree) DriveRoot(drive string) NodeID {
	upper := strings.ToUpper(drive)
	if id, ok := t.driveRoots[upper]; ok {
		return id
	}
	id := t.AddNode(NoParent, t.pool.Intern(upper+":"))
	t.driveRoots[upper] = id
	return id
}

// Parent returns the stored parent reference of id. Roots report NoParent.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return NoParent, err
	}
	return t.nodes[id].parent, nil
}

// Name returns the interned name ID of the node's own component.
func (t *Tree) Name(id NodeID) (strpool.ID, error) {
	if err := t.check(id); err != nil {
		return 0, err
	}
	return t.nodes[id].name, nil
}

// IsRoot reports whether id is the relative root, the absolute root, or a
// drive root. Out-of-range indices report false.
func (t *Tree) IsRoot(id NodeID) bool {
	if id < 0 || int(id) >= len(t.nodes) {
		return false
	}
	return t.nodes[id].parent == NoParent
}

// RootOf walks parent references to the node's ultimate root.
func (t *Tree) RootOf(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return NoParent, err
	}
	for t.nodes[id].parent != NoParent {
		id = t.nodes[id].parent
	}
	return id, nil
}

// ClassifyRoot reports which kind of root id is. Non-root nodes and
// indices outside the tree classify as RootUnknown; classify the result
// of RootOf to determine a path's anchor.
func (t *Tree) ClassifyRoot(id NodeID) RootKind {
	switch {
	case id == t.relativeRoot:
		return RootRelative
	case id == t.absoluteRoot:
		return RootAbsolute
	}
	for _, rootID := range t.driveRoots {
		if id == rootID {
			return RootDrive
		}
	}
	return RootUnknown
}

// Components returns the name IDs along the path from the root down to id,
// the root's own name first and the node's own name last. Root nodes yield
// an empty sequence. Two walks (count, then fill) avoid resizing.
func (t *Tree) Components(id NodeID) ([]strpool.ID, error) {
	if err := t.check(id); err != nil {
		return nil, err
	}
	if t.nodes[id].parent == NoParent {
		return nil, nil
	}

	depth := 0
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		depth++
	}

	out := make([]strpool.ID, depth)
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		depth--
		out[depth] = t.nodes[cur].name
	}
	return out, nil
}

// Len returns the total number of nodes, roots included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// DriveRootCount returns the number of drive roots created so far.
func (t *Tree) DriveRootCount() int {
	return len(t.driveRoots)
}

func (t *Tree) check(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return fmt.Errorf("%w: %d (tree has %d)", ErrBadNode, id, len(t.nodes))
	}
	return nil
}
