package trie

// node is one trie vertex. children holds one slot per byte value; value is
// the element blob terminating exactly here, nil when no key ends at this
// node. nchildren tracks the number of non-NoRef child slots so prune
// checks are O(1).
type node struct {
	children  [branchWidth]Ref
	value     []byte
	nchildren uint16
}

// noChildren is the all-absent child table; assigning it resets a node's
// slots in one copy.
var noChildren = func() (c [branchWidth]Ref) {
	for i := range c {
		c[i] = NoRef
	}
	return c
}()

// alloc returns the ref of a fresh node with no value and no children,
// reusing the free list before growing the arena.
func (t *Trie) alloc() (Ref, error) {
	if n := len(t.free); n > 0 {
		ref := t.free[n-1]
		t.free = t.free[:n-1]
		return ref, nil
	}
	if t.maxNodes > 0 && len(t.nodes) >= t.maxNodes {
		return NoRef, ErrNodeLimit
	}
	t.nodes = append(t.nodes, node{children: noChildren})
	return Ref(len(t.nodes) - 1), nil
}

// release resets the node at ref and pushes the ref onto the free list.
// The caller must already have detached it from its parent.
func (t *Trie) release(ref Ref) {
	n := &t.nodes[ref]
	n.children = noChildren
	n.value = nil
	n.nchildren = 0
	t.free = append(t.free, ref)
}
