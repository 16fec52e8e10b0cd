package compiler

import "github.com/go-as2js/as2js/internal/ast"

// declName returns the name a declaration-bearing node carries in its
// string payload, and whether n is such a node at all. Kinds outside this
// list (expressions, statements with no name) report ok=false.
func declName(n *ast.Node) (string, bool) {
	switch n.Kind {
	case ast.CLASS, ast.INTERFACE, ast.FUNCTION, ast.VARIABLE, ast.PARAM,
		ast.ENUM, ast.ENUM_VALUE, ast.PACKAGE, ast.NAMESPACE:
		return n.GetString(), true
	default:
		return "", false
	}
}

// classBody returns the DIRECTIVE_LIST holding a CLASS/INTERFACE's members,
// which is always that node's last child (implemented-interface IDENTIFIER
// children, if any, all precede it; §4.6.1 parseClass/parseInterface).
func classBody(n *ast.Node) *ast.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	last := children[len(children)-1]
	if last.Kind != ast.DIRECTIVE_LIST {
		return nil
	}
	return last
}

// paramName unwraps a FUNCTION parameter, which may be wrapped in a REST
// node (§4.6.1 parseParam), returning the underlying PARAM's name.
func paramName(n *ast.Node) (string, *ast.Node, bool) {
	if n.Kind == ast.REST {
		if n.ChildCount() == 0 {
			return "", nil, false
		}
		n = n.Children()[0]
	}
	if n.Kind != ast.PARAM {
		return "", nil, false
	}
	return n.GetString(), n, true
}

// members returns (building and caching it on first use) the name→decl map
// for one scope node: a FUNCTION's parameters and collected var
// declarations, or a CLASS/INTERFACE/program DIRECTIVE_LIST's direct member
// declarations and collected var declarations.
func (c *Compiler) members(scope *ast.Node) map[string]*ast.Node {
	if m, ok := c.memberCache[scope]; ok {
		return m
	}
	m := make(map[string]*ast.Node)
	switch scope.Kind {
	case ast.FUNCTION:
		for _, child := range scope.Children() {
			if name, param, ok := paramName(child); ok {
				m[name] = param
			}
		}
		for _, v := range scope.Variables() {
			if name, ok := declName(v); ok {
				m[name] = v
			}
		}
	case ast.CLASS, ast.INTERFACE:
		if body := classBody(scope); body != nil {
			for _, decl := range body.Children() {
				if name, ok := declName(decl); ok {
					m[name] = decl
				}
			}
		}
		for _, v := range scope.Variables() {
			if name, ok := declName(v); ok {
				m[name] = v
			}
		}
	case ast.DIRECTIVE_LIST:
		for _, decl := range scope.Children() {
			if name, ok := declName(decl); ok {
				m[name] = decl
			}
		}
		for _, v := range scope.Variables() {
			if name, ok := declName(v); ok {
				m[name] = v
			}
		}
	}
	c.memberCache[scope] = m
	return m
}

// lookup walks scopes innermost-to-outermost looking for name, returning
// its declaring node.
func (c *Compiler) lookup(name string, scopes []*ast.Node) (*ast.Node, bool) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if decl, ok := c.members(scopes[i])[name]; ok {
			return decl, true
		}
	}
	return nil, false
}

// classMember looks up name among classDecl's own members (no inheritance
// walk: §4.7.4 only specifies direct member lookup for `a.b`).
func (c *Compiler) classMember(classDecl *ast.Node, name string) (*ast.Node, bool) {
	decl, ok := c.members(classDecl)[name]
	return decl, ok
}

// enclosingClass returns the nearest CLASS/INTERFACE in scopes, innermost
// first, or nil outside any class body (a bare `this` at script scope).
func enclosingClass(scopes []*ast.Node) *ast.Node {
	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i].Kind == ast.CLASS || scopes[i].Kind == ast.INTERFACE {
			return scopes[i]
		}
	}
	return nil
}

// resolvedClassOf reports the CLASS/INTERFACE node a resolved identifier's
// type link refers to, if any. typed's Type() is a placeholder IDENTIFIER
// node whose own Instance() the earlier identifier-resolution pass set to
// the declaring type (§4.7.4 "Identifier" rule, reused for type names).
func resolvedClassOf(typed *ast.Node) *ast.Node {
	if typed == nil {
		return nil
	}
	placeholder := typed.Type()
	if placeholder == nil {
		return nil
	}
	decl := placeholder.Instance()
	if decl == nil {
		return nil
	}
	if decl.Kind != ast.CLASS && decl.Kind != ast.INTERFACE {
		return nil
	}
	return decl
}
