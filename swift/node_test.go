package swift

import (
	"strings"
	"testing"
)

func TestAddChildOwnership(t *testing.T) {
	parent := NewNode(KindPath)
	a := NewTextNode(KindModule, "main")
	b := NewTextNode(KindIdentifier, "foo")
	parent.AddChildren(a, b)

	if got := parent.NumChildren(); got != 2 {
		t.Fatalf("NumChildren() = %d, want 2", got)
	}
	if parent.Child(0) != a || parent.Child(1) != b {
		t.Error("children not stored in attach order")
	}
	if parent.FirstChild() != a {
		t.Error("FirstChild() != Child(0)")
	}
	for _, c := range []*Node{a, b} {
		if c.Parent() != parent {
			t.Errorf("%s child has parent %v, want the attaching node", c.Kind(), c.Parent())
		}
		if c.IsUnlinked() {
			t.Errorf("%s child reports unlinked after attach", c.Kind())
		}
	}
	if !parent.IsUnlinked() {
		t.Error("root node reports linked")
	}
}

func TestAddChildRejectsLinked(t *testing.T) {
	parent := NewNode(KindPath)
	child := NewTextNode(KindModule, "main")
	parent.AddChild(child)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("attaching an already-linked node did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "already-linked") {
			t.Errorf("panic = %v, want already-linked message", r)
		}
	}()
	NewNode(KindDeclContext).AddChild(child)
}

func TestAddChildRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("attaching nil did not panic")
		}
	}()
	NewNode(KindPath).AddChild(nil)
}

func TestSiblingNavigation(t *testing.T) {
	list := NewNode(KindTypeList)
	a := NewTextNode(KindIdentifier, "a")
	b := NewTextNode(KindIdentifier, "b")
	c := NewTextNode(KindIdentifier, "c")
	list.AddChild(a)
	list.AddChild(b)
	list.AddChild(c)

	if a.PrevSibling() != nil {
		t.Error("first child has a previous sibling")
	}
	if a.NextSibling() != b || b.NextSibling() != c {
		t.Error("NextSibling does not follow attach order")
	}
	if c.NextSibling() != nil {
		t.Error("last child has a next sibling")
	}
	if c.PrevSibling() != b || b.PrevSibling() != a {
		t.Error("PrevSibling does not follow attach order")
	}
	if list.PrevSibling() != nil || list.NextSibling() != nil {
		t.Error("unlinked root has siblings")
	}
}

func TestChildrenIterator(t *testing.T) {
	list := NewNode(KindTypeList)
	want := []string{"a", "b", "c"}
	for _, s := range want {
		list.AddChild(NewTextNode(KindIdentifier, s))
	}

	var got []string
	for c := range list.Children() {
		got = append(got, c.Text())
	}
	if len(got) != len(want) {
		t.Fatalf("iterated %d children, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %q, want %q", i, got[i], want[i])
		}
	}

	count := 0
	for range list.Children() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break visited %d children, want 2", count)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := NewNode(KindClass).AddChildren(
		NewTextNode(KindModule, "main"),
		NewTextNode(KindIdentifier, "Foo"),
	)
	NewNode(KindType).AddChild(orig)

	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone is not structurally equal to its source")
	}
	if !c.IsUnlinked() {
		t.Error("clone root is linked")
	}
	if c.Child(0) == orig.Child(0) {
		t.Error("clone shares child identity with its source")
	}
	if c.Child(0).Parent() != c || c.Child(1).Parent() != c {
		t.Error("clone children not parented to the clone")
	}
	if c.Child(0).NextSibling() != c.Child(1) {
		t.Error("clone sibling navigation broken")
	}

	c.AddChild(NewTextNode(KindIdentifier, "extra"))
	if orig.NumChildren() != 2 {
		t.Error("mutating the clone changed the source")
	}
}

func TestWalkPreorder(t *testing.T) {
	root := NewNode(KindPath).AddChildren(
		NewTextNode(KindModule, "main"),
		NewTextNode(KindIdentifier, "foo"),
	)

	type visit struct {
		kind  NodeKind
		depth int
	}
	var got []visit
	root.Walk(func(n *Node, depth int) bool {
		got = append(got, visit{n.Kind(), depth})
		return true
	})

	want := []visit{{KindPath, 0}, {KindModule, 1}, {KindIdentifier, 1}}
	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v/%d, want %v/%d", i, got[i].kind, got[i].depth, want[i].kind, want[i].depth)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	root := NewNode(KindReturnType).AddChild(
		NewNode(KindType).AddChild(NewTextNode(KindIdentifier, "x")))

	var kinds []NodeKind
	root.Walk(func(n *Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindType
	})

	if len(kinds) != 2 || kinds[0] != KindReturnType || kinds[1] != KindType {
		t.Errorf("pruned walk visited %v, want [ReturnType Type]", kinds)
	}
}

func TestFirstChildRequiresChildren(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FirstChild on a childless node did not panic")
		}
	}()
	NewNode(KindType).FirstChild()
}

func TestChildRangeChecked(t *testing.T) {
	n := NewNode(KindPath).AddChild(NewTextNode(KindModule, "m"))
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range Child did not panic")
		}
	}()
	n.Child(1)
}
