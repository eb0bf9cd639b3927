// Package strpool provides an append-only string interning pool.
//
// Each distinct string is stored once and identified by a small integer ID
// assigned in first-seen order. IDs are stable for the lifetime of the pool:
// nothing is ever evicted, and an ID is never reused. Interned IDs enable
// integer comparison in place of string comparison throughout the path tree.
//
// A Pool is owned by a single arena.Allocator and is not safe for concurrent
// mutation. IDs are meaningless outside their owning pool.
package strpool

import (
	"errors"
	"fmt"
)

// ErrBadID indicates a string ID outside the pool's valid range.
var ErrBadID = errors.New("strpool: string id out of range")

// ID identifies an interned string within its owning Pool.
// IDs are assigned sequentially starting at 0.
type ID int32

// initialCapacity pre-sizes the backing storage. A typical path workload
// interns a few dozen distinct components before the first growth.
const initialCapacity = 64

// Pool deduplicates and stores strings, resolving IDs in both directions.
type Pool struct {
	strings []string
	ids     map[string]ID
	bytes   int
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		strings: make([]string, 0, initialCapacity),
		ids:     make(map[string]ID, initialCapacity),
	}
}

// Intern returns the ID for s, adding it to the pool on first sight.
// Interning is idempotent and exact: no case folding or trimming is
// performed, and re-interning an existing string allocates nothing.
func (p *Pool) Intern(s string) ID {
	if id, ok := p.ids[s]; ok {
		return id
	}
	id := ID(len(p.strings))
	p.strings = append(p.strings, s)
	p.ids[s] = id
	p.bytes += len(s)
	return id
}

// Resolve returns the string interned under id.
func (p *Pool) Resolve(id ID) (string, error) {
	if id < 0 || int(id) >= len(p.strings) {
		return "", fmt.Errorf("%w: %d (pool has %d)", ErrBadID, id, len(p.strings))
	}
	return p.strings[id], nil
}

// Len returns the number of distinct interned strings.
func (p *Pool) Len() int {
	return len(p.strings)
}

// Bytes returns the total text bytes stored, deduplicated.
func (p *Pool) Bytes() int {
	return p.bytes
}
