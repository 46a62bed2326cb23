package swift

// substitutionTable is the append-only list of subtrees available for
// back-reference during one decode. Entries are appended strictly in the
// order their subtree finishes parsing; that completion order, not nesting
// order, defines the index space. Entries are never mutated after
// registration, so lookups can hand out clones safely.
type substitutionTable struct {
	entries []*Node
}

// add registers a completed subtree and returns it unchanged.
func (t *substitutionTable) add(n *Node) *Node {
	t.entries = append(t.entries, n)
	return n
}

// lookup resolves index i to a clone of the registered subtree. The clone
// is fully unlinked; handing out the original would break the single-parent
// invariant once it is attached elsewhere.
func (t *substitutionTable) lookup(i int) (*Node, error) {
	if i < 0 || i >= len(t.entries) {
		return nil, errBadReference
	}
	return t.entries[i].Clone(), nil
}

// size returns the number of registered entries.
func (t *substitutionTable) size() int {
	return len(t.entries)
}
