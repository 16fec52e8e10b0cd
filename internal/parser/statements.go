package parser

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/position"
)

// parseStatement dispatches on the current token to the right statement
// parser, matching the non-terminal coverage of §4.6.1.
func (p *Parser) parseStatement() *ast.Node {
	switch p.cur.Kind {
	case ast.LBRACE:
		return p.parseBlock()
	case ast.VAR:
		return p.parseVarStatement()
	case ast.IF:
		return p.parseIf()
	case ast.WHILE:
		return p.parseWhile()
	case ast.DO:
		return p.parseDoWhile()
	case ast.FOR:
		return p.parseFor()
	case ast.SWITCH:
		return p.parseSwitch()
	case ast.TRY:
		return p.parseTry()
	case ast.THROW:
		return p.parseThrow()
	case ast.RETURN:
		return p.parseReturn()
	case ast.BREAK:
		return p.parseBreakOrContinue(ast.BREAK)
	case ast.CONTINUE:
		return p.parseBreakOrContinue(ast.CONTINUE)
	case ast.GOTO:
		return p.parseGoto()
	case ast.WITH:
		return p.parseWith()
	case ast.DEBUGGER:
		return p.parseDebugger()
	case ast.CLASS:
		return p.parseClass()
	case ast.INTERFACE:
		return p.parseInterface()
	case ast.ENUM:
		return p.parseEnum()
	case ast.FUNCTION:
		return p.parseFunction()
	case ast.USE:
		p.parseUsePragma()
		return nil
	case ast.PUBLIC, ast.PRIVATE, ast.PROTECTED, ast.STATIC, ast.ABSTRACT, ast.FINAL,
		ast.NATIVE, ast.TRANSIENT, ast.VOLATILE, ast.EXPORT, ast.INLINE, ast.SYNCHRONIZED:
		return p.parseAttributedDeclaration()
	case ast.IDENTIFIER:
		if p.peekIs(ast.COLON) {
			return p.parseLabel()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlock parses `{ ... }`. An empty block becomes a childless
// DIRECTIVE_LIST (§4.6.6).
func (p *Parser) parseBlock() *ast.Node {
	pos := p.cur.Pos
	p.advance() // {
	list := ast.New(ast.DIRECTIVE_LIST, pos)
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		if p.curIs(ast.SEMICOLON) {
			p.advance()
			continue
		}
		if stmt := p.parseDirective(); stmt != nil {
			list.AppendChild(stmt)
		}
	}
	p.expect(ast.RBRACE, diag.CurvlyBracketsExpected, "'}'")
	return list
}

// parseStatementOrBlock parses a single statement as the body of an
// if/while/for/etc when EXTENDED_STATEMENTS does not require braces.
func (p *Parser) parseStatementOrBlock() *ast.Node {
	if p.curIs(ast.LBRACE) {
		return p.parseBlock()
	}
	if p.opts.IsOn(options.ExtendedStatements) {
		level := p.opts.Get(options.ExtendedStatements)
		if level == 2 {
			p.errorf(diag.CurvlyBracketsExpected, "braces required around statement body")
		} else if level == 1 {
			p.diags.Emitf(diag.Warning, diag.CurvlyBracketsExpected, p.cur.Pos, "statement body should be wrapped in braces")
		}
	}
	stmt := p.parseStatement()
	if p.curIs(ast.SEMICOLON) {
		p.advance()
	}
	if stmt == nil {
		return ast.New(ast.DIRECTIVE_LIST, p.cur.Pos)
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.Node {
	expr := p.ParseExpression()
	p.consumeStatementEnd()
	return expr
}

// consumeStatementEnd requires a terminating `;`, emitting
// SEMICOLON_EXPECTED and resynchronizing on mismatch (§4.6.5).
func (p *Parser) consumeStatementEnd() {
	if p.curIs(ast.SEMICOLON) {
		p.advance()
		return
	}
	if p.curIs(ast.RBRACE) || p.curIs(ast.EOF) {
		return
	}
	p.errorf(diag.SemicolonExpected, "expected ';', found %s", p.cur.Kind.String())
	p.synchronize(ast.SEMICOLON)
	if p.curIs(ast.SEMICOLON) {
		p.advance()
	}
}

func (p *Parser) parseVarStatement() *ast.Node {
	pos := p.cur.Pos
	p.advance() // var
	n := ast.New(ast.VAR, pos)
	for {
		n.AppendChild(p.parseVariableDeclarator())
		if p.curIs(ast.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.consumeStatementEnd()
	p.recordVariables(n)
	return n
}

// recordVariables appends each declarator to the variable list of the
// innermost scope on the scope stack: the enclosing FUNCTION, CLASS or
// INTERFACE, or the program-level DIRECTIVE_LIST (§4.6.6's "a function's
// var declarations are collected").
func (p *Parser) recordVariables(varNode *ast.Node) {
	for _, v := range p.enclosingScopes() {
		for _, decl := range varNode.Children() {
			v.AddVariable(decl)
		}
		return
	}
}

func (p *Parser) enclosingScopes() []*ast.Node {
	if len(p.scopeStack) == 0 {
		return nil
	}
	return p.scopeStack[len(p.scopeStack)-1:]
}

func (p *Parser) parseVariableDeclarator() *ast.Node {
	pos := p.cur.Pos
	name := p.expectIdentifierText()
	n := ast.New(ast.VARIABLE, pos)
	n.SetString(name)
	if p.curIs(ast.COLON) {
		p.advance()
		n.SetType(p.parseTypeAnnotation())
	}
	if p.curIs(ast.ASSIGNMENT) {
		p.advance()
		n.AppendChild(p.parseAssignment())
	}
	return n
}

// parseTypeAnnotation parses a `: Type` suffix, returning a one-off
// IDENTIFIER node holding the type name; callers put it on the
// declaration's type link, where the compiler pass resolves it.
func (p *Parser) parseTypeAnnotation() *ast.Node {
	pos := p.cur.Pos
	name := p.expectIdentifierText()
	n := ast.New(ast.IDENTIFIER, pos)
	n.SetString(name)
	return n
}

func (p *Parser) expectIdentifierText() string {
	if p.curIs(ast.IDENTIFIER) {
		text := p.cur.GetString()
		p.advance()
		return text
	}
	p.errorf(diag.ExpressionExpected, "expected identifier, found %s", p.cur.Kind.String())
	return ""
}

func (p *Parser) parseIf() *ast.Node {
	pos := p.cur.Pos
	p.advance() // if
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'if'")
	cond := p.ParseExpression()
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after if condition")
	if p.curIs(ast.THEN) {
		p.advance()
	}
	thenBranch := p.parseStatementOrBlock()
	n := ast.New(ast.IF, pos)
	n.AppendChild(cond)
	n.AppendChild(thenBranch)
	if p.curIs(ast.ELSE) {
		p.advance()
		elseBranch := p.parseStatementOrBlock()
		elseNode := ast.New(ast.ELSE, elseBranch.Pos)
		elseNode.AppendChild(elseBranch)
		n.AppendChild(elseNode)
	}
	return n
}

func (p *Parser) parseWhile() *ast.Node {
	pos := p.cur.Pos
	p.advance() // while
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'while'")
	cond := p.ParseExpression()
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after while condition")
	body := p.parseStatementOrBlock()
	n := ast.New(ast.WHILE, pos)
	n.AppendChild(cond)
	n.AppendChild(body)
	return n
}

func (p *Parser) parseDoWhile() *ast.Node {
	pos := p.cur.Pos
	p.advance() // do
	body := p.parseStatementOrBlock()
	p.expect(ast.WHILE, diag.ExpressionExpected, "'while' after do body")
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'while'")
	cond := p.ParseExpression()
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after while condition")
	p.consumeStatementEnd()
	n := ast.New(ast.DO, pos)
	n.AppendChild(body)
	n.AppendChild(cond)
	return n
}

// parseFor handles the classic three-clause form as well as `for (x in e)`
// and `for each (x in e)`, distinguished by FOR_FLAG_IN on the FOR_IN node
// and by the FOR_EACH kind (§4.6.6).
func (p *Parser) parseFor() *ast.Node {
	pos := p.cur.Pos
	p.advance() // for
	isEach := false
	if p.curIs(ast.IDENTIFIER) && p.cur.GetString() == "each" {
		isEach = true
		p.advance()
	}
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'for'")

	var init *ast.Node
	if p.curIs(ast.VAR) {
		varPos := p.cur.Pos
		p.advance()
		decl := p.parseVariableDeclarator()
		init = ast.New(ast.VAR, varPos)
		init.AppendChild(decl)
	} else if !p.curIs(ast.SEMICOLON) {
		p.noIn = true
		init = p.ParseExpression()
		p.noIn = false
	}

	if p.curIs(ast.IN) || isEach {
		if p.curIs(ast.IN) {
			p.advance()
		} else {
			p.expect(ast.IN, diag.ExpressionExpected, "'in' in for-each loop")
		}
		collection := p.ParseExpression()
		p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after for-in collection")
		body := p.parseStatementOrBlock()
		kind := ast.FOR_IN
		if isEach {
			kind = ast.FOR_EACH
		}
		n := ast.New(kind, pos)
		n.SetFlag(ast.ForFlagIn, true)
		n.AppendChild(init)
		n.AppendChild(collection)
		n.AppendChild(body)
		return n
	}

	p.expect(ast.SEMICOLON, diag.SemicolonExpected, "';' after for-loop initializer")
	var cond *ast.Node
	if !p.curIs(ast.SEMICOLON) {
		cond = p.ParseExpression()
	}
	p.expect(ast.SEMICOLON, diag.SemicolonExpected, "';' after for-loop condition")
	var post *ast.Node
	if !p.curIs(ast.RPAREN) {
		post = p.ParseExpression()
	}
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after for-loop clauses")
	body := p.parseStatementOrBlock()

	n := ast.New(ast.FOR, pos)
	n.AppendChild(p.orUndefined(init, pos))
	n.AppendChild(p.orUndefined(cond, pos))
	n.AppendChild(p.orUndefined(post, pos))
	n.AppendChild(body)
	return n
}

// orUndefined fills an omitted for-loop clause with an UNDEFINED
// placeholder so FOR always has exactly four children addressable by a
// fixed index (init, condition, post, body).
func (p *Parser) orUndefined(n *ast.Node, pos position.Position) *ast.Node {
	if n != nil {
		return n
	}
	return ast.New(ast.UNDEFINED, pos)
}

// parseSwitch records the comparison operator side-slot and default
// presence per §4.6.6.
func (p *Parser) parseSwitch() *ast.Node {
	pos := p.cur.Pos
	p.advance() // switch
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'switch'")
	discriminant := p.ParseExpression()

	n := ast.New(ast.SWITCH, pos)
	n.SwitchOperator = "=="
	if cmp, ok := comparisonSpellings[discriminant.Kind]; ok {
		n.SwitchOperator = cmp
	}
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after switch discriminant")
	n.AppendChild(discriminant)

	p.expect(ast.LBRACE, diag.CurvlyBracketsExpected, "'{' to start switch body")
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		switch p.cur.Kind {
		case ast.CASE:
			casePos := p.cur.Pos
			p.advance()
			label := p.ParseExpression()
			p.expect(ast.COLON, diag.ExpressionExpected, "':' after case label")
			caseNode := ast.New(ast.CASE, casePos)
			caseNode.AppendChild(label)
			for !p.caseBoundary() {
				if stmt := p.parseDirective(); stmt != nil {
					caseNode.AppendChild(stmt)
				}
			}
			n.AppendChild(caseNode)
		case ast.DEFAULT:
			defPos := p.cur.Pos
			p.advance()
			p.expect(ast.COLON, diag.ExpressionExpected, "':' after default")
			n.SetFlag(ast.SwitchFlagDefault, true)
			defNode := ast.New(ast.DEFAULT, defPos)
			for !p.caseBoundary() {
				if stmt := p.parseDirective(); stmt != nil {
					defNode.AppendChild(stmt)
				}
			}
			n.AppendChild(defNode)
		default:
			p.errorf(diag.ExpressionExpected, "expected 'case' or 'default', found %s", p.cur.Kind.String())
			p.synchronize(ast.CASE, ast.DEFAULT, ast.RBRACE)
		}
	}
	p.expect(ast.RBRACE, diag.CurvlyBracketsExpected, "'}' to close switch body")
	return n
}

func (p *Parser) caseBoundary() bool {
	return p.curIs(ast.CASE) || p.curIs(ast.DEFAULT) || p.curIs(ast.RBRACE) || p.curIs(ast.EOF)
}

var comparisonSpellings = map[ast.Kind]string{
	ast.EQUAL:        "==",
	ast.STRICT_EQUAL:  "===",
	ast.COMPARE:       "<=>",
	ast.SMART_MATCH:   "~~",
	ast.MIN:           "<?",
	ast.MAX:           ">?",
}

func (p *Parser) parseTry() *ast.Node {
	pos := p.cur.Pos
	p.advance() // try
	n := ast.New(ast.TRY, pos)
	n.AppendChild(p.parseBlock())
	for p.curIs(ast.CATCH) {
		catchPos := p.cur.Pos
		p.advance()
		catchNode := ast.New(ast.CATCH, catchPos)
		if p.curIs(ast.LPAREN) {
			p.advance()
			name := p.expectIdentifierText()
			param := ast.New(ast.IDENTIFIER, catchPos)
			param.SetString(name)
			if p.curIs(ast.COLON) {
				p.advance()
				param.SetType(p.parseTypeAnnotation())
			}
			catchNode.AppendChild(param)
			p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after catch parameter")
		}
		catchNode.AppendChild(p.parseBlock())
		n.AppendChild(catchNode)
	}
	if p.curIs(ast.FINALLY) {
		finallyPos := p.cur.Pos
		p.advance()
		finallyNode := ast.New(ast.FINALLY, finallyPos)
		finallyNode.AppendChild(p.parseBlock())
		n.AppendChild(finallyNode)
	}
	return n
}

func (p *Parser) parseThrow() *ast.Node {
	pos := p.cur.Pos
	p.advance() // throw
	n := ast.New(ast.THROW, pos)
	n.AppendChild(p.ParseExpression())
	p.consumeStatementEnd()
	return n
}

func (p *Parser) parseReturn() *ast.Node {
	pos := p.cur.Pos
	p.advance() // return
	n := ast.New(ast.RETURN, pos)
	if !p.curIs(ast.SEMICOLON) && !p.curIs(ast.RBRACE) {
		n.AppendChild(p.ParseExpression())
	}
	p.consumeStatementEnd()
	return n
}

func (p *Parser) parseBreakOrContinue(kind ast.Kind) *ast.Node {
	pos := p.cur.Pos
	p.advance()
	n := ast.New(kind, pos)
	if p.curIs(ast.IDENTIFIER) {
		n.SetString(p.cur.GetString())
		p.advance()
	}
	p.consumeStatementEnd()
	return n
}

func (p *Parser) parseGoto() *ast.Node {
	pos := p.cur.Pos
	p.advance() // goto
	n := ast.New(ast.GOTO, pos)
	n.SetString(p.expectIdentifierText())
	p.consumeStatementEnd()
	return n
}

func (p *Parser) parseLabel() *ast.Node {
	pos := p.cur.Pos
	name := p.cur.GetString()
	p.advance() // identifier
	p.advance() // :
	n := ast.New(ast.LABEL, pos)
	n.SetString(name)
	if len(p.scopeStack) > 0 {
		p.scopeStack[len(p.scopeStack)-1].SetLabel(name, n)
	}
	return n
}

func (p *Parser) parseWith() *ast.Node {
	pos := p.cur.Pos
	p.advance() // with
	if !p.opts.IsOn(options.AllowWith) {
		p.errorf(diag.NoCode, "'with' requires the ALLOW_WITH option")
	}
	p.expect(ast.LPAREN, diag.ParenthesisExpected, "'(' after 'with'")
	obj := p.ParseExpression()
	p.expect(ast.RPAREN, diag.ParenthesisExpected, "')' after with object")
	body := p.parseStatementOrBlock()
	n := ast.New(ast.WITH, pos)
	n.AppendChild(obj)
	n.AppendChild(body)
	return n
}

func (p *Parser) parseDebugger() *ast.Node {
	pos := p.cur.Pos
	p.advance()
	p.consumeStatementEnd()
	return ast.New(ast.DEBUGGER, pos)
}
