package trie

/*

# Byte-string trie for libgenerics (arena-backed, 256-way)

This package provides an in-memory associative container keyed by arbitrary
byte strings. It is a radix tree without path compression: each tree level
consumes exactly one byte of the key, and each node holds one child slot per
possible byte value (256-way branching). Lookup cost is O(len(key)) and is
independent of the number of stored entries.

Values are opaque fixed-width blobs. The element width is chosen once at
Init and every stored value uses it; the container copies bytes in on Insert
and Set and copies bytes out on Get. It does not interpret them.

## Storage layout

Nodes are not individually heap-allocated. They live in a flat arena
(`[]node`) and refer to each other with integer handles:

  - `Ref` is an index into the arena
  - `NoRef` marks an absent child slot
  - the root is always ref 0 and is never keyed by any byte

A free list recycles the refs of pruned nodes, so a workload that removes
and reinserts keys reaches a steady state without growing the arena. An
optional node budget converts arena exhaustion into an error instead of
unbounded growth.

## Core invariants

 1. a node exists iff it lies on the path of some present key, either as
    the key's terminal node or as an ancestor of one; the one exception is
    an Insert stopped mid-path by the node budget, which leaves the nodes
    allocated before exhaustion in place (valueless; a later Insert along
    the same path adopts them, and Destroy releases them)
 2. `Len` counts distinct live keys: Insert on a present key overwrites in
    place and does not change Len
 3. Remove prunes the valueless, childless suffix of the removed key's
    path, so invariant (1) is restored after every removal
 4. no operation recurses: removal prunes with an explicit ref stack and
    teardown releases the arena wholesale, so key length never threatens
    the call stack

## Error contract

Every operation reports a sentinel error from this package, each carrying a
gerror.Code. Match with errors.Is, or classify with gerror.CodeOf.
Traversal failures leave no partial mutation: a failed Get, Set or Remove
never creates or destroys a node.

The container is not safe for concurrent mutation. Callers wrapping it for
shared use must serialize all mutating operations; concurrent Gets are safe
only with no concurrent mutation.

*/
