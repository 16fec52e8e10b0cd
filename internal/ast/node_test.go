package ast

import (
	"strings"
	"testing"

	"github.com/go-as2js/as2js/internal/numeric"
	"github.com/go-as2js/as2js/internal/position"
)

func ident(name string) *Node {
	n := New(IDENTIFIER, position.New("t.as"))
	n.SetString(name)
	return n
}

func TestAppendAndInsertChild(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	a, b, c := ident("a"), ident("b"), ident("c")

	root.AppendChild(a)
	root.AppendChild(c)
	root.InsertChild(1, b)

	got := root.Children()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("children order wrong: %v", got)
	}
	for _, child := range got {
		if child.Parent() != root {
			t.Errorf("child %v has wrong parent", child)
		}
	}
}

func TestInsertChildAppendSentinel(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	a := ident("a")
	root.InsertChild(-1, a)
	if root.ChildCount() != 1 || root.Children()[0] != a {
		t.Fatalf("InsertChild(-1, ...) should behave like append")
	}
}

func TestRemoveChildClearsParent(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	a := ident("a")
	root.AppendChild(a)
	root.RemoveChild(0)

	if root.ChildCount() != 0 {
		t.Fatalf("expected no children after remove")
	}
	if a.Parent() != nil {
		t.Fatalf("removed child should have nil parent")
	}
}

func TestFindDescendantPreOrder(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	block := New(DIRECTIVE_LIST, position.New("t.as"))
	target := ident("needle")
	block.AppendChild(ident("hay"))
	block.AppendChild(target)
	root.AppendChild(block)

	found := root.FindDescendant(IDENTIFIER, func(n *Node) bool { return n.GetString() == "needle" })
	if found != target {
		t.Fatalf("FindDescendant did not find target")
	}

	notFound := root.FindDescendant(IDENTIFIER, func(n *Node) bool { return n.GetString() == "missing" })
	if notFound != nil {
		t.Fatalf("expected nil for unmatched predicate")
	}
}

func TestFindNextChild(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	a := ident("a")
	lit := New(INTEGER, position.New("t.as"))
	lit.SetInteger(numeric.NewInteger(1))
	b := ident("b")
	root.AppendChild(a)
	root.AppendChild(lit)
	root.AppendChild(b)

	next := root.FindNextChild(a, IDENTIFIER)
	if next != b {
		t.Fatalf("FindNextChild should skip the INTEGER and land on b")
	}

	first := root.FindNextChild(nil, IDENTIFIER)
	if first != a {
		t.Fatalf("FindNextChild(nil, ...) should start from the first child")
	}
}

func TestGetStringOnNonStringNodePanics(t *testing.T) {
	n := New(INTEGER, position.New("t.as"))
	n.SetInteger(numeric.NewInteger(42))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(*InternalError)
		if !ok {
			t.Fatalf("expected *InternalError, got %T", r)
		}
		want := `get_string() called with non-string node type: "INTEGER"`
		if err.Error() != "INTERNAL_ERROR: "+want {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	}()
	n.GetString()
}

func TestAttributeConflictGroupRejectsSecondSet(t *testing.T) {
	n := New(FUNCTION, position.New("t.as"))
	n.SetString("foo")

	if ok := n.SetAttribute(Public, true); !ok {
		t.Fatal("expected first attribute set to succeed")
	}
	if ok := n.SetAttribute(Private, true); ok {
		t.Fatal("expected conflicting attribute set to fail")
	}
	if !n.GetAttribute(Public) {
		t.Fatal("earlier attribute should remain set after a rejected conflict")
	}
	if n.GetAttribute(Private) {
		t.Fatal("rejected attribute should not be set")
	}
}

func TestTypeAttributeOnlyOnSupportedKinds(t *testing.T) {
	fn := New(FUNCTION, position.New("t.as"))
	fn.SetString("foo")
	if ok := fn.SetAttribute(TypeAttr, true); !ok {
		t.Fatal("TYPE should be settable on FUNCTION")
	}

	block := New(DIRECTIVE_LIST, position.New("t.as"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected INTERNAL_ERROR panic for TYPE on DIRECTIVE_LIST")
		}
	}()
	block.SetAttribute(TypeAttr, true)
}

func TestLockUnlockRefcounted(t *testing.T) {
	n := ident("x")
	n.Lock()
	n.Lock()
	n.Unlock()
	if !n.IsLocked() {
		t.Fatal("node should still be locked after one unlock of two locks")
	}
	n.Unlock()
	if n.IsLocked() {
		t.Fatal("node should be unlocked after matching unlock count")
	}
}

func TestDestroyWhileLockedPanics(t *testing.T) {
	n := ident("x")
	n.Lock()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic destroying a locked node")
		}
		if _, ok := r.(*LockedNodeError); !ok {
			t.Fatalf("expected *LockedNodeError, got %T", r)
		}
	}()
	n.Destroy()
}

func TestDestroyUnlockedSucceeds(t *testing.T) {
	root := New(DIRECTIVE_LIST, position.New("t.as"))
	root.AppendChild(ident("x"))
	root.Destroy()
	if root.ChildCount() != 0 {
		t.Fatal("Destroy should clear children")
	}
}

func TestDumpIsDeterministic(t *testing.T) {
	build := func() *Node {
		add := New(ADD, position.New("t.as"))
		add.AppendChild(ident("a"))
		add.AppendChild(ident("b"))
		return add
	}

	first := Dump(build())
	second := Dump(build())
	if first != second {
		t.Fatalf("Dump output should be deterministic across equivalent trees:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "ADD") || !strings.Contains(first, "IDENTIFIER") {
		t.Fatalf("Dump output missing expected node names: %s", first)
	}
}
