// Package tree implements the index-addressed node tree backing path storage.
//
// # Overview
//
// Every path is a chain of nodes, each holding a parent reference and the
// interned ID of one path component. Nodes live in an append-only array and
// are identified by their NodeID — the array position, which never changes
// and is never reused. Two paths sharing a prefix share the prefix's nodes.
//
// # Roots
//
// Two well-known roots exist from construction, in fixed order:
//
//	index 0: relative root (name "", no parent)  — "no anchor"
//	index 1: absolute root (name "/", no parent) — the filesystem root
//
// Drive roots ("C:", "D:", ...) are created lazily, one per upper-cased
// drive letter, each likewise parentless.
//
// # Child lookup
//
// FindChild resolves (parent, name) pairs through a hash index rather than
// a scan over the node array, so path construction is amortized O(1) per
// component. AddNode itself never deduplicates; callers that want sharing
// consult FindChild first (the arena package does).
//
// # Thread safety
//
// Tree instances are not thread-safe. Callers must synchronize access
// externally; growth of the backing array makes even concurrent reads
// unsafe while a writer is active.
package tree
