package parser

import (
	"strings"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/position"
)

// binOpLevel assigns each binary operator Kind its precedence level from
// §4.6.2 (levels 5 through 14; comma, assignment, conditional, range/rest,
// power, unary and postfix are handled by their own dedicated functions).
var binOpLevel = map[ast.Kind]int{
	ast.LOGICAL_OR: 5, ast.LOGICAL_XOR: 5,
	ast.LOGICAL_AND: 6,
	ast.BITWISE_OR:  7,
	ast.BITWISE_XOR: 8,
	ast.BITWISE_AND: 9,
	ast.EQUAL:       10, ast.NOT_EQUAL: 10, ast.STRICT_EQUAL: 10, ast.STRICT_NOT_EQUAL: 10,
	ast.COMPARE: 10, ast.SMART_MATCH: 10,
	ast.LESS: 11, ast.LESS_EQUAL: 11, ast.GREATER: 11, ast.GREATER_EQUAL: 11,
	ast.IS: 11, ast.AS: 11, ast.IN: 11, ast.INSTANCEOF: 11,
	ast.MATCH: 11, ast.NOT_MATCH: 11, ast.MIN: 11, ast.MAX: 11,
	ast.SHIFT_LEFT: 12, ast.SHIFT_RIGHT: 12, ast.SHIFT_RIGHT_UNSIGNED: 12,
	ast.ROTATE_LEFT: 12, ast.ROTATE_RIGHT: 12,
	ast.ADD: 13, ast.SUBTRACT: 13,
	ast.MULTIPLY: 14, ast.DIVIDE: 14, ast.MODULO: 14,
}

// ParseExpression parses a full comma-list expression (level 1), the
// entry point used wherever the grammar calls for a general expression.
func (p *Parser) ParseExpression() *ast.Node {
	left := p.parseAssignment()
	if !p.curIs(ast.COMMA) {
		return left
	}
	n := ast.New(ast.COMMA, left.Pos)
	n.AppendChild(left)
	for p.curIs(ast.COMMA) {
		p.advance()
		n.AppendChild(p.parseAssignment())
	}
	return n
}

// parseAssignment is level 2: all ASSIGNMENT_* operators, right-associative.
func (p *Parser) parseAssignment() *ast.Node {
	left := p.parseConditional()
	if p.cur.Kind.IsAssignment() {
		opKind, pos := p.cur.Kind, p.cur.Pos
		p.advance()
		right := p.parseAssignment()
		n := ast.New(opKind, pos)
		n.AppendChild(left)
		n.AppendChild(right)
		return n
	}
	return left
}

// parseConditional is level 3: `cond ? then : else`, right-associative.
func (p *Parser) parseConditional() *ast.Node {
	cond := p.parseRange()
	if !p.curIs(ast.QUESTION) {
		return cond
	}
	pos := p.cur.Pos
	p.advance()
	thenExpr := p.parseAssignment()
	p.expect(ast.COLON, diag.ExpressionExpected, "':' in conditional expression")
	elseExpr := p.parseConditional()
	n := ast.New(ast.CONDITIONAL, pos)
	n.AppendChild(cond)
	n.AppendChild(thenExpr)
	n.AppendChild(elseExpr)
	return n
}

// parseRange is level 4: binary range `a..b`. A leading `...` (rest/spread)
// at this position is handled as a prefix by parseUnary; it never reaches
// here as a left operand.
func (p *Parser) parseRange() *ast.Node {
	left := p.parseBinary(5)
	for p.curIs(ast.RANGE) {
		pos := p.cur.Pos
		p.advance()
		right := p.parseBinary(5)
		n := ast.New(ast.RANGE, pos)
		n.AppendChild(left)
		n.AppendChild(right)
		left = n
	}
	return left
}

// parseBinary implements precedence climbing over levels 5 through 14; all
// of these operators are left-associative.
func (p *Parser) parseBinary(minLevel int) *ast.Node {
	left := p.parsePower()
	for {
		if p.noIn && p.cur.Kind == ast.IN {
			return left
		}
		level, ok := binOpLevel[p.cur.Kind]
		if !ok || level < minLevel {
			return left
		}
		opKind, pos := p.cur.Kind, p.cur.Pos
		p.advance()
		right := p.parseBinary(level + 1)
		n := ast.New(opKind, pos)
		n.AppendChild(left)
		n.AppendChild(right)
		left = n
	}
}

// parsePower is level 15: `**`, right-associative.
func (p *Parser) parsePower() *ast.Node {
	left := p.parseUnary()
	if !p.curIs(ast.POWER) {
		return left
	}
	pos := p.cur.Pos
	p.advance()
	right := p.parsePower()
	n := ast.New(ast.POWER, pos)
	n.AppendChild(left)
	n.AppendChild(right)
	return n
}

// parseUnary is level 16: prefix operators.
func (p *Parser) parseUnary() *ast.Node {
	switch p.cur.Kind {
	case ast.LOGICAL_NOT, ast.BITWISE_NOT, ast.TYPEOF, ast.DELETE, ast.VOID:
		kind, pos := p.cur.Kind, p.cur.Pos
		p.advance()
		n := ast.New(kind, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.ADD:
		pos := p.cur.Pos
		p.advance()
		n := ast.New(ast.UNARY_PLUS, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.SUBTRACT:
		pos := p.cur.Pos
		p.advance()
		n := ast.New(ast.UNARY_MINUS, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.INCREMENT:
		pos := p.cur.Pos
		p.advance()
		n := ast.New(ast.PREFIX_INCREMENT, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.DECREMENT:
		pos := p.cur.Pos
		p.advance()
		n := ast.New(ast.PREFIX_DECREMENT, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.REST:
		pos := p.cur.Pos
		p.advance()
		n := ast.New(ast.REST, pos)
		n.AppendChild(p.parseUnary())
		return n
	case ast.NEW:
		return p.parseNewExpression()
	default:
		return p.parsePostfix()
	}
}

// parsePostfix is level 17: postfix ++/--, call, index, member, scope.
func (p *Parser) parsePostfix() *ast.Node {
	left := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case ast.INCREMENT:
			pos := p.cur.Pos
			p.advance()
			n := ast.New(ast.POSTFIX_INCREMENT, pos)
			n.AppendChild(left)
			left = n
		case ast.DECREMENT:
			pos := p.cur.Pos
			p.advance()
			n := ast.New(ast.POSTFIX_DECREMENT, pos)
			n.AppendChild(left)
			left = n
		case ast.LPAREN:
			left = p.parseCall(left)
		case ast.LBRACKET:
			left = p.parseIndex(left)
		case ast.MEMBER:
			left = p.parseMember(left)
		case ast.SCOPE:
			left = p.parseScope(left)
		default:
			return left
		}
	}
}

func (p *Parser) parseCall(callee *ast.Node) *ast.Node {
	pos := p.cur.Pos
	p.advance() // (
	n := ast.New(ast.CALL, pos)
	n.AppendChild(callee)
	for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
		n.AppendChild(p.parseAssignment())
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')'")
	return n
}

func (p *Parser) parseIndex(object *ast.Node) *ast.Node {
	pos := p.cur.Pos
	p.advance() // [
	n := ast.New(ast.INDEX, pos)
	n.AppendChild(object)
	n.AppendChild(p.ParseExpression())
	p.expect(ast.RBRACKET, diag.SquareBracketsExpected, "']'")
	return n
}

func (p *Parser) parseMember(object *ast.Node) *ast.Node {
	pos := p.cur.Pos
	p.advance() // .
	n := ast.New(ast.MEMBER, pos)
	n.AppendChild(object)
	n.AppendChild(p.parseMemberName())
	return n
}

func (p *Parser) parseScope(object *ast.Node) *ast.Node {
	pos := p.cur.Pos
	p.advance() // ::
	n := ast.New(ast.SCOPE, pos)
	n.AppendChild(object)
	n.AppendChild(p.parseMemberName())
	return n
}

// parseMemberName accepts an identifier, or a keyword used as a member
// name (e.g. `obj.default`), reusing the already-scanned token node.
func (p *Parser) parseMemberName() *ast.Node {
	if p.curIs(ast.IDENTIFIER) {
		n := p.cur
		p.advance()
		return n
	}
	tok := p.cur
	name := ast.New(ast.IDENTIFIER, tok.Pos)
	name.SetString(strings.ToLower(tok.Kind.String()))
	if _, isKeyword := lexer.LookupKeyword(name.GetString()); !isKeyword {
		p.errorf(diag.ExpressionExpected, "expected member name, found %s", tok.Kind.String())
	}
	p.advance()
	return name
}

func (p *Parser) parseNewExpression() *ast.Node {
	pos := p.cur.Pos
	p.advance() // new
	var target *ast.Node
	if p.curIs(ast.NEW) {
		target = p.parseNewExpression()
	} else {
		target = p.parseMemberChainNoCall()
	}
	n := ast.New(ast.NEW, pos)
	n.AppendChild(target)
	if p.curIs(ast.LPAREN) {
		p.advance()
		for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
			n.AppendChild(p.parseAssignment())
			if p.curIs(ast.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(ast.RPAREN, diag.ParenthesisExpected, "')'")
	}
	return n
}

// parseMemberChainNoCall parses a primary followed by member/index accesses
// only, leaving any `(` for the caller (`new Foo.Bar(...)` binds the call
// to the whole chain, not to `Bar` alone).
func (p *Parser) parseMemberChainNoCall() *ast.Node {
	left := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case ast.MEMBER:
			left = p.parseMember(left)
		case ast.LBRACKET:
			left = p.parseIndex(left)
		default:
			return left
		}
	}
}

// parsePrimary is level 18.
func (p *Parser) parsePrimary() *ast.Node {
	tok := p.cur
	switch tok.Kind {
	case ast.IDENTIFIER, ast.VIDENTIFIER, ast.INTEGER, ast.FLOATING_POINT,
		ast.REGULAR_EXPRESSION, ast.TRUE, ast.FALSE, ast.NULL, ast.UNDEFINED,
		ast.THIS, ast.SUPER:
		p.advance()
		return tok
	case ast.STRING:
		p.advance()
		if strings.Contains(tok.GetString(), "${") {
			return p.parseTemplateLiteral(tok)
		}
		return tok
	case ast.LPAREN:
		p.advance()
		expr := p.ParseExpression()
		p.expect(ast.RPAREN, diag.ParenthesisExpected, "')'")
		return expr
	case ast.LBRACKET:
		return p.parseArrayLiteral()
	case ast.LBRACE:
		return p.parseObjectLiteral()
	default:
		p.errorf(diag.ExpressionExpected, "expected expression, found %s", tok.Kind.String())
		node := ast.New(ast.UNDEFINED, tok.Pos)
		if !p.curIs(ast.EOF) {
			p.advance()
		}
		return node
	}
}

func (p *Parser) parseArrayLiteral() *ast.Node {
	pos := p.cur.Pos
	p.advance() // [
	n := ast.New(ast.ARRAY_LITERAL, pos)
	for !p.curIs(ast.RBRACKET) && !p.curIs(ast.EOF) {
		n.AppendChild(p.parseAssignment())
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(ast.RBRACKET, diag.SquareBracketsExpected, "']'")
	return n
}

func (p *Parser) parseObjectLiteral() *ast.Node {
	pos := p.cur.Pos
	p.advance() // {
	n := ast.New(ast.OBJECT_LITERAL, pos)
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		propPos := p.cur.Pos
		key := p.parseMemberNameOrString()
		p.expect(ast.COLON, diag.ExpressionExpected, "':' in object literal")
		value := p.parseAssignment()
		prop := ast.New(ast.OBJECT_PROPERTY, propPos)
		prop.AppendChild(key)
		prop.AppendChild(value)
		n.AppendChild(prop)
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(ast.RBRACE, diag.CurvlyBracketsExpected, "'}'")
	return n
}

func (p *Parser) parseMemberNameOrString() *ast.Node {
	if p.curIs(ast.STRING) {
		tok := p.cur
		p.advance()
		return tok
	}
	return p.parseMemberName()
}

// parseTemplateLiteral splits a scanned STRING payload on `${ ... }`
// interpolation markers into TEMPLATE_STRING literal runs and nested
// expressions, each parsed with its own lexer/parser pair over the
// substring (§4.6.1's "template literal" primary).
func (p *Parser) parseTemplateLiteral(tok *ast.Node) *ast.Node {
	n := ast.New(ast.TEMPLATE_LITERAL, tok.Pos)
	text := tok.GetString()
	for len(text) > 0 {
		start := strings.Index(text, "${")
		if start < 0 {
			n.AppendChild(newTemplateString(tok.Pos, text))
			return n
		}
		if start > 0 {
			n.AppendChild(newTemplateString(tok.Pos, text[:start]))
		}
		end := strings.Index(text[start:], "}")
		if end < 0 {
			p.errorf(diag.ExpressionExpected, "unterminated template interpolation")
			return n
		}
		exprSrc := text[start+2 : start+end]
		n.AppendChild(p.parseSubExpression(tok.Pos.Filename, exprSrc))
		text = text[start+end+1:]
	}
	return n
}

func newTemplateString(pos position.Position, text string) *ast.Node {
	n := ast.New(ast.TEMPLATE_STRING, pos)
	n.SetString(text)
	return n
}

// parseSubExpression parses a standalone expression out of src (the body of
// a `${...}` interpolation) using a fresh lexer/parser pair that shares
// this parser's OptionSet and diagnostic sink.
func (p *Parser) parseSubExpression(filename, src string) *ast.Node {
	sub := lexer.New(filename, []byte(src), p.opts, lexer.WithDiagnostics(p.diags))
	subParser := &Parser{l: sub, opts: p.opts, diags: p.diags}
	subParser.advance()
	subParser.advance()
	return subParser.ParseExpression()
}
