package swift

import "strings"

// Compare orders two trees structurally: by kind, then text payload, then
// children (lexicographically, shorter first on a shared prefix). A nil tree
// orders before any node. Node identity never participates, so a tree and
// its Clone compare equal.
func Compare(a, b *Node) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if d := strings.Compare(a.text, b.text); d != 0 {
		return d
	}
	for i := 0; i < len(a.children) && i < len(b.children); i++ {
		if d := Compare(a.children[i], b.children[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(a.children) < len(b.children):
		return -1
	case len(a.children) > len(b.children):
		return 1
	}
	return 0
}

// Equal reports whether two trees are structurally identical in kind, text,
// and child order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
