package parser

import (
	"strings"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
)

// parseDottedName parses `a.b.c` and returns the joined text.
func (p *Parser) parseDottedName() string {
	var b strings.Builder
	b.WriteString(p.expectIdentifierText())
	for p.curIs(ast.MEMBER) {
		p.advance()
		b.WriteByte('.')
		b.WriteString(p.expectIdentifierText())
	}
	return b.String()
}

// parseUsePragma consumes `use name(value);` and applies it directly to the
// shared OptionSet (§4.6.3). It never produces a tree node.
func (p *Parser) parseUsePragma() {
	p.advance() // use
	name := p.expectIdentifierText()
	opt, known := p.opts.LookupPragma(name)
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after pragma name")
	value := 0
	if p.curIs(ast.INTEGER) {
		value = int(p.cur.GetInteger().Get())
		p.advance()
	} else {
		p.errorf(diag.BadPragma, "pragma value must be an integer, found %s", p.cur.Kind.String())
	}
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after pragma value")
	p.consumeStatementEnd()
	if !known {
		p.errorf(diag.UnknownPragma, "unknown pragma %q", name)
		return
	}
	p.opts.Set(opt, value)
}

func (p *Parser) parsePackage() *ast.Node {
	pos := p.cur.Pos
	p.advance() // package
	n := ast.New(ast.PACKAGE, pos)
	if !p.curIs(ast.LBRACE) {
		n.SetString(p.parseDottedName())
	}
	if p.curIs(ast.LBRACE) {
		n.AppendChild(p.parseBlock())
	} else {
		p.consumeStatementEnd()
	}
	return n
}

func (p *Parser) parseNamespace() *ast.Node {
	pos := p.cur.Pos
	p.advance() // namespace
	n := ast.New(ast.NAMESPACE, pos)
	n.SetString(p.parseDottedName())
	if p.curIs(ast.LBRACE) {
		n.AppendChild(p.parseBlock())
	} else {
		p.consumeStatementEnd()
	}
	return n
}

func (p *Parser) parseImport() *ast.Node {
	pos := p.cur.Pos
	p.advance() // import
	n := ast.New(ast.IMPORT, pos)
	n.SetString(p.parseDottedName())
	p.consumeStatementEnd()
	return n
}

// parseClass parses `class Name [extends Base] [implements I, ...] { ... }`.
// The superclass, if any, is stashed on the TYPE link for the compiler pass
// to resolve (§4.7.3); implemented interfaces are appended as IDENTIFIER
// children ahead of the body DIRECTIVE_LIST, which is always the last child.
func (p *Parser) parseClass() *ast.Node {
	pos := p.cur.Pos
	p.advance() // class
	name := p.expectIdentifierText()
	n := ast.New(ast.CLASS, pos)
	n.SetString(name)

	if p.curIs(ast.EXTENDS) {
		p.advance()
		super := ast.New(ast.IDENTIFIER, p.cur.Pos)
		super.SetString(p.expectIdentifierText())
		n.SetType(super)
	}
	if p.curIs(ast.IMPLEMENTS) {
		p.advance()
		for {
			iface := ast.New(ast.IDENTIFIER, p.cur.Pos)
			iface.SetString(p.expectIdentifierText())
			n.AppendChild(iface)
			if p.curIs(ast.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}

	p.pushScope(n)
	if p.curIs(ast.LBRACE) {
		n.AppendChild(p.parseBlock())
	} else {
		p.expect(ast.LBRACE, diag.CurvlyBracketsExpected, "'{' to start class body")
	}
	p.popScope()
	return n
}

// parseInterface mirrors parseClass; method bodies are optional (a bare
// `;` declares a signature with no implementation).
func (p *Parser) parseInterface() *ast.Node {
	pos := p.cur.Pos
	p.advance() // interface
	name := p.expectIdentifierText()
	n := ast.New(ast.INTERFACE, pos)
	n.SetString(name)
	if p.curIs(ast.EXTENDS) {
		p.advance()
		for {
			super := ast.New(ast.IDENTIFIER, p.cur.Pos)
			super.SetString(p.expectIdentifierText())
			n.AppendChild(super)
			if p.curIs(ast.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.pushScope(n)
	if p.curIs(ast.LBRACE) {
		n.AppendChild(p.parseBlock())
	} else {
		p.expect(ast.LBRACE, diag.CurvlyBracketsExpected, "'{' to start interface body")
	}
	p.popScope()
	return n
}

func (p *Parser) parseEnum() *ast.Node {
	pos := p.cur.Pos
	p.advance() // enum
	n := ast.New(ast.ENUM, pos)
	if p.curIs(ast.IDENTIFIER) {
		n.SetString(p.expectIdentifierText())
	}
	p.expect(ast.LBRACE, diag.CurvlyBracketsExpected, "'{' to start enum body")
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		valPos := p.cur.Pos
		valName := p.expectIdentifierText()
		val := ast.New(ast.ENUM_VALUE, valPos)
		val.SetString(valName)
		if p.curIs(ast.ASSIGNMENT) {
			p.advance()
			val.AppendChild(p.parseAssignment())
		}
		n.AppendChild(val)
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(ast.RBRACE, diag.CurvlyBracketsExpected, "'}' to close enum body")
	if p.curIs(ast.SEMICOLON) {
		p.advance()
	}
	return n
}

// parseFunctionName accepts a plain identifier or, for an operator
// overload declaration (§4.7.4 "operator overloading"), a single operator
// token spelled the way ast.Kind.OperatorSpelling reports it. A call/index
// operator overload (`function ()`/`function []`) is out of scope here
// since its name would collide with the parameter list's own parentheses.
func (p *Parser) parseFunctionName() string {
	if p.curIs(ast.IDENTIFIER) {
		return p.expectIdentifierText()
	}
	if spelling, ok := p.cur.Kind.OperatorSpelling(); ok {
		p.advance()
		return spelling
	}
	return p.expectIdentifierText()
}

// parseFunction parses a function declaration, signature-only (body
// replaced by a bare `;`, e.g. native or interface methods), or with a
// block body. `get`/`set` prefixes before the name set the accessor flags
// (§4.6.6).
func (p *Parser) parseFunction() *ast.Node {
	pos := p.cur.Pos
	p.advance() // function

	isGetter, isSetter := false, false
	if p.curIs(ast.IDENTIFIER) && p.peekIs(ast.IDENTIFIER) {
		switch p.cur.GetString() {
		case "get":
			isGetter = true
			p.advance()
		case "set":
			isSetter = true
			p.advance()
		}
	}

	name := p.parseFunctionName()
	n := ast.New(ast.FUNCTION, pos)
	n.SetString(name)
	if isGetter {
		n.SetFlag(ast.FunctionFlagGetter, true)
	}
	if isSetter {
		n.SetFlag(ast.FunctionFlagSetter, true)
	}

	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after function name")
	for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
		n.AppendChild(p.parseParam())
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after parameter list")

	if p.curIs(ast.COLON) {
		p.advance()
		n.SetType(p.parseTypeAnnotation())
	}

	p.pushScope(n)
	switch {
	case p.curIs(ast.LBRACE):
		n.AppendChild(p.parseBlock())
	case p.curIs(ast.SEMICOLON):
		p.advance()
	default:
		p.errorf(diag.CurvlyBracketsExpected, "expected function body or ';', found %s", p.cur.Kind.String())
		p.synchronize(ast.SEMICOLON, ast.RBRACE)
	}
	p.popScope()
	return n
}

// parseParam parses one parameter: an optional `...` rest marker, the
// name, an optional `: Type`, and an optional `= default` (which makes it
// optional). A rest parameter is wrapped in a REST node since the node
// model has no dedicated rest-parameter flag.
func (p *Parser) parseParam() *ast.Node {
	pos := p.cur.Pos
	isRest := false
	if p.curIs(ast.REST) {
		isRest = true
		p.advance()
	}
	name := p.expectIdentifierText()
	param := ast.New(ast.PARAM, pos)
	param.SetString(name)
	if p.curIs(ast.COLON) {
		p.advance()
		param.SetType(p.parseTypeAnnotation())
	}
	if p.curIs(ast.ASSIGNMENT) {
		p.advance()
		param.AppendChild(p.parseAssignment())
	}
	if isRest {
		rest := ast.New(ast.REST, pos)
		rest.AppendChild(param)
		return rest
	}
	return param
}
