package ast

import (
	"fmt"

	"github.com/go-as2js/as2js/internal/numeric"
	"github.com/go-as2js/as2js/internal/position"
)

// InternalError signals a programmer error — an illegal payload access or
// an unsupported flag/attribute on a node kind. These are not recoverable
// (§7) and are reported as panics rather than error returns, the same way a
// bad type assertion or an out-of-range slice index would be. Destroying a
// locked node panics with LockedNodeError instead.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "INTERNAL_ERROR: " + e.Message }

func internalErrorf(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}

// payloadKind classifies what a Node's payload slot may hold.
type payloadKind int

const (
	payloadNone payloadKind = iota
	payloadString
	payloadInteger
	payloadFloat
)

// payloadValidity maps each Kind to the payload it is allowed to carry
// (§3.3.1). Kinds absent from this map carry no payload.
var payloadValidity = map[Kind]payloadKind{
	IDENTIFIER:         payloadString,
	VIDENTIFIER:        payloadString,
	STRING:             payloadString,
	REGULAR_EXPRESSION: payloadString,
	CLASS:              payloadString,
	FUNCTION:           payloadString,
	ENUM:               payloadString,
	ENUM_VALUE:         payloadString,
	IMPORT:             payloadString,
	INTERFACE:          payloadString,
	LABEL:              payloadString,
	NAMESPACE:          payloadString,
	PACKAGE:            payloadString,
	BREAK:              payloadString,
	CONTINUE:           payloadString,
	GOTO:               payloadString,
	TEMPLATE_LITERAL:   payloadString,
	TEMPLATE_STRING:    payloadString,
	VARIABLE:           payloadString,
	VAR_ATTRIBUTES:     payloadString,
	PARAM:              payloadString,
	INTEGER:            payloadInteger,
	FLOATING_POINT:     payloadFloat,
}

// Links bundles the five named, non-owning link slots a node carries.
// Instance and Type are direct (single) references. Attributes, GotoExit
// and GotoEnter point at a node whose Children hold the list.
type Links struct {
	Instance   *Node
	Type       *Node
	Attributes *Node
	GotoExit   *Node
	GotoEnter  *Node
}

// Node is the single uniform AST node type: every token, operator and
// structural construct in the grammar is represented by one of these,
// distinguished only by Kind and by which of the optional slots below are
// populated.
type Node struct {
	Kind Kind
	Pos  position.Position

	payloadKind payloadKind
	str         string
	intVal      numeric.Integer
	floatVal    numeric.Float

	children  []*Node
	variables []*Node
	labels    map[string]*Node

	links Links

	flags      flagSet
	attributes attributeSet

	parent  *Node
	lockCnt int

	// Side slots used by a handful of kinds only.
	ParamCount     int    // PARAM_MATCH: arity being matched
	SwitchOperator string // SWITCH: the top-level comparison operator recorded at parse time (§4.6.6)
}

// New constructs a node of the given kind at pos, with no payload,
// children or links.
func New(kind Kind, pos position.Position) *Node {
	return &Node{Kind: kind, Pos: pos}
}

// Parent returns the node's owning parent, or nil for a node that is not
// (yet, or no longer) attached to a tree.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order. The returned
// slice must not be mutated by the caller; use the Append/Insert/Replace/
// Remove operations instead.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns len(n.Children()).
func (n *Node) ChildCount() int { return len(n.children) }

// AppendChild appends child, taking ownership of it (setting its parent).
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(-1, child)
}

// InsertChild inserts child at index, or appends it when index is -1.
// child's previous parent (if any) loses it first.
func (n *Node) InsertChild(index int, child *Node) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.removeChildPointer(child)
	}
	child.parent = n

	if index < 0 || index >= len(n.children) {
		n.children = append(n.children, child)
		return
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// ReplaceChild replaces the child currently at index with replacement,
// clearing the old child's parent pointer.
func (n *Node) ReplaceChild(index int, replacement *Node) {
	if index < 0 || index >= len(n.children) {
		return
	}
	old := n.children[index]
	if old != nil {
		old.parent = nil
	}
	if replacement != nil {
		if replacement.parent != nil {
			replacement.parent.removeChildPointer(replacement)
		}
		replacement.parent = n
	}
	n.children[index] = replacement
}

// RemoveChild removes the child at index, clearing its parent pointer.
func (n *Node) RemoveChild(index int) {
	if index < 0 || index >= len(n.children) {
		return
	}
	n.children[index].parent = nil
	n.children = append(n.children[:index], n.children[index+1:]...)
}

func (n *Node) removeChildPointer(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// FindDescendant performs a pre-order traversal and returns the first node
// of the given kind for which predicate (if non-nil) also returns true.
func (n *Node) FindDescendant(kind Kind, predicate func(*Node) bool) *Node {
	if n.Kind == kind && (predicate == nil || predicate(n)) {
		return n
	}
	for _, child := range n.children {
		if found := child.FindDescendant(kind, predicate); found != nil {
			return found
		}
	}
	return nil
}

// FindNextChild scans n's children forward starting just after prev,
// returning the first one of the given kind. If prev is nil, the scan
// starts from the first child.
func (n *Node) FindNextChild(prev *Node, kind Kind) *Node {
	start := 0
	if prev != nil {
		for i, c := range n.children {
			if c == prev {
				start = i + 1
				break
			}
		}
	}
	for i := start; i < len(n.children); i++ {
		if n.children[i].Kind == kind {
			return n.children[i]
		}
	}
	return nil
}

// Variables returns the ordered back-references to declarations belonging
// to this scope (populated on FUNCTION/PROGRAM-like nodes as `var`
// declarations are parsed, §4.6.6).
func (n *Node) Variables() []*Node { return n.variables }

// AddVariable appends decl to this node's variable list.
func (n *Node) AddVariable(decl *Node) {
	n.variables = append(n.variables, decl)
}

// Label looks up a function-local label by name.
func (n *Node) Label(name string) (*Node, bool) {
	lbl, ok := n.labels[name]
	return lbl, ok
}

// SetLabel records name as referring to labelNode within this node's
// (function-body) label table.
func (n *Node) SetLabel(name string, labelNode *Node) {
	if n.labels == nil {
		n.labels = make(map[string]*Node)
	}
	n.labels[name] = labelNode
}

// Labels returns the full label table, keyed by label name.
func (n *Node) Labels() map[string]*Node { return n.labels }

// Links returns the node's five link slots.
func (n *Node) Links() Links { return n.links }

// Instance returns the `instance` link.
func (n *Node) Instance() *Node { return n.links.Instance }

// SetInstance sets the `instance` link.
func (n *Node) SetInstance(target *Node) { n.links.Instance = target }

// Type returns the `type` link.
func (n *Node) Type() *Node { return n.links.Type }

// SetType sets the `type` link.
func (n *Node) SetType(target *Node) { n.links.Type = target }

// AttributeNode returns the `attributes` link (a node of Kind ATTRIBUTES).
func (n *Node) AttributeNode() *Node { return n.links.Attributes }

// SetAttributeNode sets the `attributes` link.
func (n *Node) SetAttributeNode(target *Node) { n.links.Attributes = target }

// GotoExit returns the `goto_exit` link (the LABEL this GOTO resolves to).
func (n *Node) GotoExit() *Node { return n.links.GotoExit }

// SetGotoExit sets the `goto_exit` link.
func (n *Node) SetGotoExit(target *Node) { n.links.GotoExit = target }

// GotoEnter returns the `goto_enter` link (aggregates, as children, the
// GOTOs that resolve to this LABEL).
func (n *Node) GotoEnter() *Node { return n.links.GotoEnter }

// SetGotoEnter sets the `goto_enter` link.
func (n *Node) SetGotoEnter(target *Node) { n.links.GotoEnter = target }

// Lock increments the node's lock count. While locked, Destroy aborts.
func (n *Node) Lock() { n.lockCnt++ }

// Unlock decrements the node's lock count.
func (n *Node) Unlock() {
	if n.lockCnt > 0 {
		n.lockCnt--
	}
}

// IsLocked reports whether the node's lock count is non-zero.
func (n *Node) IsLocked() bool { return n.lockCnt > 0 }

// LockCount returns the current lock count.
func (n *Node) LockCount() int { return n.lockCnt }
