package compiler

import "github.com/go-as2js/as2js/internal/ast"

// inheritableAttributes lists the attributes a class passes down to a member
// that does not set one of its own (§4.7.4 "Attribute propagation"). Only
// the visibility and storage/mutability attributes make sense to inherit
// this way; NATIVE is included since a native class's methods are native by
// default unless declared otherwise.
var inheritableAttributes = []ast.Attribute{
	ast.Public, ast.Private, ast.Protected, ast.Static, ast.Final, ast.Abstract, ast.Native,
}

// propagateAttributes copies classDecl's own attributes onto each FUNCTION
// that is a direct child of the class body and does not already carry one
// from the same conflict group. Variables declared with `var` sit under a
// VAR node in the body, so they do not receive inherited attributes.
// SetAttribute is itself a no-op when the member already
// holds a conflicting attribute, so a member's explicit declaration always
// wins without this needing to check first.
func (c *Compiler) propagateAttributes(classDecl *ast.Node) {
	body := classBody(classDecl)
	if body == nil {
		return
	}
	for _, member := range body.Children() {
		if member.Kind != ast.FUNCTION && member.Kind != ast.VARIABLE {
			continue
		}
		for _, attr := range inheritableAttributes {
			if classDecl.GetAttribute(attr) {
				member.SetAttribute(attr, true)
			}
		}
	}
}
