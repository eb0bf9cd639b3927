// Package arena combines string interning and the path node tree into a
// shared path allocator.
//
// # Overview
//
// An Allocator owns one strpool.Pool and one tree.Tree and turns component
// sequences or delimited strings into tree node indices with maximal
// structural sharing: two paths with a common prefix always resolve to the
// same node indices along that prefix, so the prefix is stored once no
// matter how many paths hang off it.
//
// A path is externally just a tree.NodeID paired with the Allocator that
// produced it. Indices from different allocators must never be mixed or
// compared.
//
// # Construction
//
//	a := arena.New()
//	docs := a.FromString("/home/user/documents")
//	file, _ := a.Join(docs, "report.txt")
//
//	parts, _ := a.Parts(file) // ["/", "home", "user", "documents", "report.txt"]
//	abs, _ := a.IsAbsolute(file) // true
//
// The first component of any input decides the anchor: a leading separator
// selects the absolute root, a drive-letter prefix ("C:") selects a drive
// root, anything else is relative. Components are split on the separator
// (backslashes count as separators too); empty segments are dropped and
// never create nodes, so "a//b" and "a/b" are the same path.
//
// # Memo cache
//
// Repeated constructions of the same path are answered from a bounded LRU
// cache keyed by the normalized anchor and components, consulted before
// tree descent. The cache changes performance only — with it disabled
// (WithCacheSize(0)) every operation returns identical indices.
//
// # Growth and failure
//
// Pool and tree grow monotonically and are never compacted. A construction
// that stops partway (allocation failure) leaves only valid prefix nodes
// behind, never a partially-written node. Out-of-range indices surface
// tree.ErrBadNode or strpool.ErrBadID; nothing is clamped or retried.
//
// # Thread safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally, including read-only queries that may race a writer growing
// the backing arrays.
//
// # Related packages
//
//   - github.com/joshuapare/pathkit/arena/strpool: string interning
//   - github.com/joshuapare/pathkit/arena/tree: node storage and roots
//   - github.com/joshuapare/pathkit/purepath: pathlib-style value type
package arena
