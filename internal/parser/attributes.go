package parser

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
)

// attributeKeywords maps each keyword-only modifier token to the closed
// Attribute enumeration it sets (§3.3.3). Kinds absent here (EXPORT,
// INLINE, SYNCHRONIZED) are dialect modifiers the node model does not
// carry a dedicated bit for; the parser consumes and drops them.
var attributeKeywords = map[ast.Kind]ast.Attribute{
	ast.PUBLIC:    ast.Public,
	ast.PRIVATE:   ast.Private,
	ast.PROTECTED: ast.Protected,
	ast.STATIC:    ast.Static,
	ast.ABSTRACT:  ast.Abstract,
	ast.FINAL:     ast.Final,
	ast.NATIVE:    ast.Native,
	ast.TRANSIENT: ast.Transient,
	ast.VOLATILE:  ast.Volatile,
}

func isModifierKeyword(k ast.Kind) bool {
	switch k {
	case ast.PUBLIC, ast.PRIVATE, ast.PROTECTED, ast.STATIC, ast.ABSTRACT, ast.FINAL,
		ast.NATIVE, ast.TRANSIENT, ast.VOLATILE, ast.EXPORT, ast.INLINE, ast.SYNCHRONIZED:
		return true
	default:
		return false
	}
}

// parseAttributedDeclaration consumes a run of modifier keywords ahead of a
// class/interface/enum/function/var declaration and applies them to the
// resulting node, reporting INVALID_ATTRIBUTES on a conflict-group clash
// (§3.3.3, §8.3) without disturbing the attribute set in place.
func (p *Parser) parseAttributedDeclaration() *ast.Node {
	var attrs []ast.Attribute
	for isModifierKeyword(p.cur.Kind) {
		if a, ok := attributeKeywords[p.cur.Kind]; ok {
			attrs = append(attrs, a)
		}
		p.advance()
	}
	decl := p.parseStatement()
	if decl == nil {
		return nil
	}
	for _, a := range attrs {
		if !decl.SetAttribute(a, true) {
			p.diags.Emitf(diag.Error, diag.InvalidAttributes, decl.Pos,
				"attribute %s conflicts with an attribute already set on %s", a.String(), decl.Kind.String())
		}
	}
	return decl
}
