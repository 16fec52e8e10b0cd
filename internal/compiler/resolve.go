package compiler

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/position"
)

// walk decorates n and its descendants, threading scopes (the enclosing
// FUNCTION/CLASS/INTERFACE/program chain, innermost last) down to every
// resolution call. It dispatches explicitly per Kind rather than visiting
// every child uniformly, since a handful of constructs (a MEMBER's name
// child, an OBJECT_PROPERTY's key, a CLASS's implemented-interface
// children) name something other than a variable in scope and must not be
// looked up as one (§4.7.4).
func (c *Compiler) walk(n *ast.Node, scopes []*ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.CLASS, ast.INTERFACE:
		c.walkClassLike(n, scopes)
	case ast.FUNCTION:
		c.walkFunction(n, scopes)
	case ast.VARIABLE, ast.PARAM:
		c.resolveTypeLink(n, scopes)
		for _, child := range n.Children() {
			c.walk(child, scopes)
		}
	case ast.IDENTIFIER:
		c.resolveIdentifier(n, scopes)
	case ast.MEMBER, ast.SCOPE:
		c.walkMember(n, scopes)
	case ast.CALL:
		c.walkCall(n, scopes)
	case ast.OBJECT_PROPERTY:
		// children[0] is a property key (reused member-name/string token,
		// never a scope reference); only the value resolves.
		if n.ChildCount() > 1 {
			c.walk(n.Children()[1], scopes)
		}
	case ast.GOTO, ast.LABEL:
		// handled by linkLabels once the enclosing function finishes.
	default:
		for _, child := range n.Children() {
			c.walk(child, scopes)
		}
		c.maybeRewriteOperator(n, scopes)
	}
}

func (c *Compiler) walkClassLike(n *ast.Node, scopes []*ast.Node) {
	if n.Kind == ast.CLASS {
		c.resolveTypeLink(n, scopes) // superclass, if any
	}
	c.checkOperatorOverloads(n)
	c.propagateAttributes(n)
	inner := append(append([]*ast.Node{}, scopes...), n)
	for _, child := range n.Children() {
		if child.Kind == ast.IDENTIFIER {
			// implemented/extended interface name: a type reference, not a
			// variable use, so it resolves against the outer scopes (a
			// class cannot implement one of its own members).
			c.resolveIdentifier(child, scopes)
			continue
		}
		c.walk(child, inner)
	}
}

func (c *Compiler) walkFunction(n *ast.Node, scopes []*ast.Node) {
	c.resolveTypeLink(n, scopes) // return type, if any
	inner := append(append([]*ast.Node{}, scopes...), n)
	for _, child := range n.Children() {
		if _, param, ok := paramName(child); ok {
			c.resolveTypeLink(param, inner)
			for _, d := range param.Children() {
				c.walk(d, inner) // default-value expression
			}
			continue
		}
		c.walk(child, inner)
	}
	c.linkLabels(n)
}

func (c *Compiler) walkMember(n *ast.Node, scopes []*ast.Node) {
	if n.ChildCount() < 2 {
		return
	}
	left, name := n.Children()[0], n.Children()[1]
	c.walk(left, scopes)
	classDecl := resolvedClassOf(left)
	if classDecl == nil && left.Kind == ast.THIS {
		// `this` carries no Type link of its own; it means the nearest
		// enclosing CLASS/INTERFACE scope directly.
		classDecl = enclosingClass(scopes)
	}
	c.resolveMember(n, name, classDecl, left.Pos)
}

func (c *Compiler) walkCall(n *ast.Node, scopes []*ast.Node) {
	for _, child := range n.Children() {
		c.walk(child, scopes)
	}
	if n.ChildCount() == 0 {
		return
	}
	callee := n.Children()[0]
	if t := callee.Type(); t != nil {
		n.SetType(t)
	}
}

// resolveTypeLink resolves n's `: Type` annotation, if present, reusing the
// identifier-resolution rule against the placeholder node the parser
// parked off-tree in the Type link (§4.6.1 parseTypeAnnotation).
func (c *Compiler) resolveTypeLink(n *ast.Node, scopes []*ast.Node) {
	placeholder := n.Type()
	if placeholder == nil || placeholder.Kind != ast.IDENTIFIER {
		return
	}
	if placeholder.Instance() != nil {
		return
	}
	c.resolveIdentifier(placeholder, scopes)
}

// resolveIdentifier implements §4.7.4's "Identifier" rule: look up in the
// enclosing scope chain, then the symbol database, else NOT_FOUND.
func (c *Compiler) resolveIdentifier(n *ast.Node, scopes []*ast.Node) {
	name := n.GetString()
	if decl, ok := c.lookup(name, scopes); ok {
		n.SetInstance(decl)
		if t := decl.Type(); t != nil {
			n.SetType(t)
		}
		return
	}
	if c.foundInDatabase(name) {
		// Declared in a package outside this compilation unit: resolved in
		// spirit, but there is no local node to link to.
		return
	}
	c.diags.Emitf(diag.Error, diag.NotFound, n.Pos, "%q is not declared in any enclosing scope", name)
}

// foundInDatabase reports whether any package in the symbol database
// declares name. §4.7.2 does not specify how an identifier maps to the
// package it should be looked up under, so this checks every package — a
// deliberate simplification over precise per-package scoping.
func (c *Compiler) foundInDatabase(name string) bool {
	for _, pkgName := range c.db.FindPackages("*") {
		pkg, ok := c.db.GetPackage(pkgName)
		if !ok {
			continue
		}
		if _, ok := pkg[name]; ok {
			return true
		}
	}
	return false
}

// resolveMember implements §4.7.4's "Member access a.b" rule. leftPos
// anchors the TYPE_NOT_LINKED diagnostic at the unresolved operand rather
// than at the member name.
func (c *Compiler) resolveMember(member, name *ast.Node, classDecl *ast.Node, leftPos position.Position) {
	if classDecl == nil {
		c.diags.Emitf(diag.Error, diag.TypeNotLinked, leftPos, "left-hand side of member access has no resolved type")
		return
	}
	decl, ok := c.classMember(classDecl, name.GetString())
	if !ok {
		c.diags.Emitf(diag.Error, diag.NotFound, name.Pos, "%q is not a member of %q", name.GetString(), classDecl.GetString())
		return
	}
	name.SetInstance(decl)
	if t := decl.Type(); t != nil {
		name.SetType(t)
		member.SetType(t)
	}
}
