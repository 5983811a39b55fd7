package trie

import (
	"errors"

	"github.com/dkrmr/libgenerics/gerror"
)

// Ref is an arena index identifying a node.
type Ref uint32

// NoRef marks an absent child slot.
const NoRef = ^Ref(0)

// rootRef is the arena index of the root node while the trie is initialized.
const rootRef Ref = 0

// branchWidth is the child fan-out: one slot per possible byte value.
const branchWidth = 256

var (
	// ErrNilTrie indicates the trie handle is nil, never initialized, or
	// destroyed.
	ErrNilTrie = gerror.New(gerror.NullStructure, "trie: nil or uninitialized trie")

	// ErrBadRef indicates a child reference pointing outside the arena;
	// the structure is corrupt.
	ErrBadRef = gerror.New(gerror.NullNode, "trie: node reference out of range")

	// ErrEmptyTrie indicates a Remove on a trie holding no keys.
	ErrEmptyTrie = gerror.New(gerror.TryRemoveEmpty, "trie: remove from empty trie")

	// ErrNodeLimit indicates the configured node budget is exhausted.
	ErrNodeLimit = gerror.New(gerror.TryAddEdgeNoVertex, "trie: node budget exhausted")

	// ErrKeyNotFound indicates the key has no mapped value.
	ErrKeyNotFound = gerror.New(gerror.AccessOutOfBound, "trie: key not found")

	// ErrElemSize indicates an element or output buffer whose length does
	// not match the trie's element width.
	ErrElemSize = errors.New("trie: element size mismatch")

	// ErrNegativeSize indicates a negative element width or node budget.
	ErrNegativeSize = errors.New("trie: size must not be negative")
)
