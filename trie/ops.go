package trie

// walk descends from the root consuming one key byte per level, without
// allocating. It returns the terminal ref, ErrKeyNotFound when the path is
// broken, or ErrBadRef when a child slot points outside the arena.
func (t *Trie) walk(key []byte) (Ref, error) {
	cur := rootRef
	for _, b := range key {
		next := t.nodes[cur].children[b]
		if next == NoRef {
			return NoRef, ErrKeyNotFound
		}
		if int(next) >= len(t.nodes) {
			return NoRef, ErrBadRef
		}
		cur = next
	}
	return cur, nil
}

// walkAlloc descends like walk but creates any missing node along the path.
func (t *Trie) walkAlloc(key []byte) (Ref, error) {
	cur := rootRef
	for _, b := range key {
		next := t.nodes[cur].children[b]
		if next == NoRef {
			ref, err := t.alloc()
			if err != nil {
				return NoRef, err
			}
			t.nodes[cur].children[b] = ref
			t.nodes[cur].nchildren++
			next = ref
		} else if int(next) >= len(t.nodes) {
			return NoRef, ErrBadRef
		}
		cur = next
	}
	return cur, nil
}

// Insert maps key to a copy of elem. Inserting over a present key
// overwrites its value in place; Len changes only when the key is new.
// elem must be exactly ElemSize bytes.
func (t *Trie) Insert(key, elem []byte) error {
	if !t.initialized() {
		return ErrNilTrie
	}
	if len(elem) != t.elemSize {
		return ErrElemSize
	}
	ref, err := t.walkAlloc(key)
	if err != nil {
		return err
	}
	n := &t.nodes[ref]
	if n.value == nil {
		n.value = make([]byte, t.elemSize)
		t.count++
	}
	copy(n.value, elem)
	return nil
}

// Remove detaches and returns the value mapped by key. The valueless,
// childless suffix of the key's path is pruned into the free list; shared
// ancestors and nodes carrying other keys are preserved.
func (t *Trie) Remove(key []byte) ([]byte, error) {
	if !t.initialized() {
		return nil, ErrNilTrie
	}
	if t.count == 0 {
		return nil, ErrEmptyTrie
	}

	// Record the visited refs so pruning can walk back toward the root.
	path := make([]Ref, len(key)+1)
	path[0] = rootRef
	cur := rootRef
	for i, b := range key {
		next := t.nodes[cur].children[b]
		if next == NoRef {
			return nil, ErrKeyNotFound
		}
		if int(next) >= len(t.nodes) {
			return nil, ErrBadRef
		}
		cur = next
		path[i+1] = cur
	}

	term := &t.nodes[cur]
	if term.value == nil {
		return nil, ErrKeyNotFound
	}
	removed := term.value
	term.value = nil
	t.count--

	for i := len(key); i > 0; i-- {
		n := &t.nodes[path[i]]
		if n.value != nil || n.nchildren > 0 {
			break
		}
		parent := &t.nodes[path[i-1]]
		parent.children[key[i-1]] = NoRef
		parent.nchildren--
		t.release(path[i])
	}
	return removed, nil
}

// Get copies the value mapped by key into out, which must be at least
// ElemSize bytes.
func (t *Trie) Get(key, out []byte) error {
	if !t.initialized() {
		return ErrNilTrie
	}
	if len(out) < t.elemSize {
		return ErrElemSize
	}
	ref, err := t.walk(key)
	if err != nil {
		return err
	}
	n := &t.nodes[ref]
	if n.value == nil {
		return ErrKeyNotFound
	}
	copy(out, n.value)
	return nil
}

// Set overwrites the value mapped by key in place. Unlike Insert it never
// allocates: a key with no present value reports ErrKeyNotFound.
func (t *Trie) Set(key, elem []byte) error {
	if !t.initialized() {
		return ErrNilTrie
	}
	if len(elem) != t.elemSize {
		return ErrElemSize
	}
	ref, err := t.walk(key)
	if err != nil {
		return err
	}
	n := &t.nodes[ref]
	if n.value == nil {
		return ErrKeyNotFound
	}
	copy(n.value, elem)
	return nil
}
