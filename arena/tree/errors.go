package tree

import "errors"

// ErrBadNode indicates a node index outside the tree's valid range.
var ErrBadNode = errors.New("tree: node index out of range")
