// Package purepath provides a pathlib-style path value type over an
// arena.Allocator.
//
// A Path is a small value: the allocator that owns its storage plus a node
// index into that allocator's tree. Copying a Path copies two words, never
// path text. Path values are comparable; == means "same allocator, same
// node", which for paths built through one allocator is exact logical
// equality. Use Equal to compare paths across allocators.
//
// Pure operations only: nothing in this package touches a filesystem.
// Filesystem operations over Path values live in package fsio.
//
// Most callers construct paths against an explicit allocator:
//
//	a := arena.New()
//	p := purepath.New(a, "/var/log").Join("syslog")
//
// Default and DefaultAllocator offer an opt-in process-wide allocator for
// short programs. Like the allocator itself, the default is not safe for
// concurrent mutation.
package purepath
