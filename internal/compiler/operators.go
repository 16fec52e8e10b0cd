package compiler

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/position"
)

// mutatingOperatorSpellings names the operator overloads that rewrite to a
// bare CALL rather than an ASSIGNMENT-wrapped one (§4.7.4): the increment/
// decrement family and every compound assignment.
var mutatingOperatorSpellings = map[string]bool{
	"++x": true, "x++": true, "--x": true, "x--": true,
	"++": true, "--": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "**=": true,
	"<<=": true, ">>=": true, ">>>=": true, "<<<=": true, ">>>>=": true,
	"&=": true, "|=": true, "^=": true, "&&=": true, "||=": true, "^^=": true,
	"<?=": true, ">?=": true,
}

// operatorArity maps an overloadable operator's spelling to the number of
// explicit parameters its overload function must declare, beyond the
// implicit receiver bound by `a.operator(...)` (one for a binary operator,
// zero for a unary one). Used only to validate a class's own operator
// declarations (§4.7.5 CANNOT_OVERLOAD); the rewrite itself never counts
// arguments, it passes through whatever the original operator node had.
var operatorArity = map[string]int{
	"+": 1, "-": 1, "*": 1, "/": 1, "%": 1, "**": 1,
	"==": 1, "===": 1, "!=": 1, "!==": 1,
	"<": 1, "<=": 1, ">": 1, ">=": 1,
	"<=>": 1, "~~": 1, "~=": 1, "!~": 1,
	"&": 1, "|": 1, "^": 1, "<?": 1, ">?": 1,
	"!": 0, "~": 0,
	"++x": 0, "x++": 0, "--x": 0, "x--": 0, "++": 0, "--": 0,
	"+=": 1, "-=": 1, "*=": 1, "/=": 1, "%=": 1, "**=": 1,
	"<<=": 1, ">>=": 1, ">>>=": 1, "<<<=": 1, ">>>>=": 1,
	"&=": 1, "|=": 1, "^=": 1, "&&=": 1, "||=": 1, "^^=": 1,
	"<?=": 1, ">?=": 1,
}

// checkOperatorOverloads validates the arity of every operator-overload
// function declared directly on classDecl.
func (c *Compiler) checkOperatorOverloads(classDecl *ast.Node) {
	body := classBody(classDecl)
	if body == nil {
		return
	}
	for _, decl := range body.Children() {
		if decl.Kind != ast.FUNCTION {
			continue
		}
		want, ok := operatorArity[decl.GetString()]
		if !ok {
			continue
		}
		if got := len(decl.Children()) - bodyChildCount(decl); got != want {
			c.diags.Emitf(diag.Error, diag.CannotOverload, decl.Pos,
				"operator %q overload on %q takes %d parameter(s), found %d",
				decl.GetString(), classDecl.GetString(), want, got)
		}
	}
}

// bodyChildCount reports 1 when decl's last child is its DIRECTIVE_LIST
// body (to exclude it from a parameter count), else 0.
func bodyChildCount(decl *ast.Node) int {
	children := decl.Children()
	if len(children) > 0 && children[len(children)-1].Kind == ast.DIRECTIVE_LIST {
		return 1
	}
	return 0
}

// maybeRewriteOperator implements §4.7.4's "Operator overloading" rule for
// one already-resolved operator node: if its left operand's type is a user
// class defining a matching overload, replace n in its parent with the
// rewritten form; a `native`-attributed overload instead just marks n
// NATIVE and leaves its shape alone.
func (c *Compiler) maybeRewriteOperator(n *ast.Node, scopes []*ast.Node) {
	spelling, ok := n.Kind.OperatorSpelling()
	if !ok || n.ChildCount() == 0 {
		return
	}
	left := n.Children()[0]
	classDecl := resolvedClassOf(left)
	if classDecl == nil {
		return
	}
	member, ok := c.classMember(classDecl, spelling)
	if !ok || member.Kind != ast.FUNCTION {
		return
	}
	if member.GetAttribute(ast.Native) {
		n.SetAttribute(ast.Native, true)
		return
	}

	parent := n.Parent()
	if parent == nil {
		return
	}
	idx := childIndex(parent, n)
	if idx < 0 {
		return
	}

	rest := append([]*ast.Node{}, n.Children()[1:]...)
	opPos := n.Pos
	for n.ChildCount() > 0 {
		n.RemoveChild(0)
	}
	call := buildOverloadCall(opPos, left, member, spelling, rest)

	if mutatingOperatorSpellings[spelling] {
		parent.ReplaceChild(idx, call)
		return
	}

	wrap := ast.New(ast.ASSIGNMENT, n.Pos)
	wrap.AppendChild(call)
	if t := member.Type(); t != nil {
		wrap.SetType(t)
	}
	parent.ReplaceChild(idx, wrap)
}

// buildOverloadCall builds `left.spelling(rest...)`, reusing left (already
// detached from the operator node being replaced) as the receiver.
func buildOverloadCall(pos position.Position, left *ast.Node, member *ast.Node, spelling string, rest []*ast.Node) *ast.Node {
	name := ast.New(ast.IDENTIFIER, pos)
	name.SetString(spelling)
	name.SetInstance(member)
	if t := member.Type(); t != nil {
		name.SetType(t)
	}

	ref := ast.New(ast.MEMBER, pos)
	ref.AppendChild(left)
	ref.AppendChild(name)
	if t := member.Type(); t != nil {
		ref.SetType(t)
	}

	call := ast.New(ast.CALL, pos)
	call.AppendChild(ref)
	for _, arg := range rest {
		call.AppendChild(arg)
	}
	if t := member.Type(); t != nil {
		call.SetType(t)
	}
	return call
}

// childIndex returns the index of child among parent's children, or -1.
func childIndex(parent, child *ast.Node) int {
	for i, c := range parent.Children() {
		if c == child {
			return i
		}
	}
	return -1
}
