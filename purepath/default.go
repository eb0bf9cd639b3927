package purepath

import (
	"sync"

	"github.com/joshuapare/pathkit/arena"
)

var (
	defaultOnce  sync.Once
	defaultAlloc *arena.Allocator
)

// DefaultAllocator returns the process-wide convenience allocator,
// creating it on first use. Creation is once-only; use of the returned
// allocator is not synchronized, like any other allocator.
func DefaultAllocator() *arena.Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = arena.New()
	})
	return defaultAlloc
}

// Default builds a path in the process-wide default allocator. Programs
// managing allocator lifetimes explicitly should prefer New.
func Default(parts ...string) Path {
	return New(DefaultAllocator(), parts...)
}
