package trie

// Trie is a byte-string-keyed associative container storing fixed-width
// element blobs. The zero value is uninitialized; call Init (or use New)
// before any other operation.
type Trie struct {
	nodes    []node
	free     []Ref
	count    int
	elemSize int
	maxNodes int
}

// New allocates and initializes a trie storing elements of elemSize bytes.
func New(elemSize int) (*Trie, error) {
	t := &Trie{}
	if err := t.Init(elemSize); err != nil {
		return nil, err
	}
	return t, nil
}

// NewWithLimit is New with a node budget: the arena never holds more than
// maxNodes nodes (root included). maxNodes 0 means unbounded.
func NewWithLimit(elemSize, maxNodes int) (*Trie, error) {
	t := &Trie{}
	if err := t.InitWithLimit(elemSize, maxNodes); err != nil {
		return nil, err
	}
	return t, nil
}

// Init initializes t to an empty trie storing elements of elemSize bytes.
// Reinitializing a populated trie discards its contents.
func (t *Trie) Init(elemSize int) error {
	return t.InitWithLimit(elemSize, 0)
}

// InitWithLimit is Init with a node budget (see NewWithLimit).
func (t *Trie) InitWithLimit(elemSize, maxNodes int) error {
	if t == nil {
		return ErrNilTrie
	}
	if elemSize < 0 || maxNodes < 0 {
		return ErrNegativeSize
	}
	t.nodes = []node{{children: noChildren}}
	t.free = nil
	t.count = 0
	t.elemSize = elemSize
	t.maxNodes = maxNodes
	return nil
}

// Destroy releases every node and value slot and returns t to the
// uninitialized state. The Trie itself remains usable: a later Init makes
// it a brand-new empty trie. Destroy on an already-destroyed trie is a
// successful no-op.
func (t *Trie) Destroy() error {
	if t == nil {
		return ErrNilTrie
	}
	// The arena owns the whole tree, so teardown is a wholesale release.
	t.nodes = nil
	t.free = nil
	t.count = 0
	t.elemSize = 0
	t.maxNodes = 0
	return nil
}

// Len returns the number of distinct keys currently holding a value.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// ElemSize returns the fixed element width in bytes.
func (t *Trie) ElemSize() int {
	if t == nil {
		return 0
	}
	return t.elemSize
}

// NodeCount returns the number of live nodes, root included. An empty
// initialized trie reports 1.
func (t *Trie) NodeCount() int {
	if t == nil {
		return 0
	}
	return len(t.nodes) - len(t.free)
}

// initialized reports whether t has a live arena.
func (t *Trie) initialized() bool {
	return t != nil && len(t.nodes) > 0
}
