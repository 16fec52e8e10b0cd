// Package parser implements the recursive-descent parser (component F): a
// Pratt expression parser layered under a statement/declaration grammar,
// consuming ast.Node tokens from internal/lexer and building the tree
// rooted at ROOT/PROGRAM (§4.6.1).
package parser

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
)

// Parser consumes tokens from a single lexer.Lexer and builds the Node
// tree for one compilation unit. It shares the OptionSet with the lexer:
// `use` pragmas mutate it mid-stream (§4.6.3).
type Parser struct {
	l     *lexer.Lexer
	opts  *options.Set
	diags *diag.Context

	cur  *ast.Node
	peek *ast.Node

	// expectLiteral is pushed to the lexer before every token fetch so it
	// can disambiguate `/` as regex-start vs divide (§4.6.4). It reflects
	// whether the position just consumed can be followed by a value.
	expectLiteral bool

	// scopeStack holds the chain of enclosing FUNCTION, CLASS and INTERFACE
	// nodes above the program-level DIRECTIVE_LIST, innermost last; the
	// innermost entry receives var declarations and labels (§4.6.6).
	scopeStack []*ast.Node

	// noIn suppresses the `in` binary operator at precedence level 11 while
	// parsing a for-loop's initializer clause, so `for (x in obj)` leaves
	// the `in` token for parseFor to recognize as the for-in form rather
	// than swallowing it into a relational expression.
	noIn bool

	fatal bool
}

// pushScope enters decl as the current variable/label scope.
func (p *Parser) pushScope(decl *ast.Node) { p.scopeStack = append(p.scopeStack, decl) }

// popScope leaves the innermost scope entered by pushScope.
func (p *Parser) popScope() { p.scopeStack = p.scopeStack[:len(p.scopeStack)-1] }

// New constructs a Parser over l, sharing opts with it. A nil lexer or
// options set is a programmer error (§4.6.7).
func New(l *lexer.Lexer, opts *options.Set, diags *diag.Context) *Parser {
	if l == nil || opts == nil {
		panic(&ast.InternalError{Message: "parser.New() called with nil lexer or options"})
	}
	if diags == nil {
		diags = diag.Default
	}
	p := &Parser{l: l, opts: opts, diags: diags}
	// Prime cur/peek: two token fetches.
	p.advance()
	p.advance()
	return p
}

// advance shifts peek into cur and pulls a new peek token, first telling
// the lexer whether a literal (hence a regex) can start right after the new
// cur: a `/` after a token that ends a value (identifier, literal, `)`,
// `]`, this, ...) is the divide operator; anywhere else it starts a regex.
func (p *Parser) advance() {
	p.cur = p.peek
	p.expectLiteral = startsExpression(p.cur)
	p.l.SetExpectingLiteral(p.expectLiteral)
	p.peek = p.l.GetNextToken()
}

func startsExpression(n *ast.Node) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case ast.IDENTIFIER, ast.STRING, ast.INTEGER, ast.FLOATING_POINT, ast.REGULAR_EXPRESSION,
		ast.RPAREN, ast.RBRACKET, ast.THIS, ast.SUPER, ast.TRUE, ast.FALSE, ast.NULL, ast.UNDEFINED:
		return false
	default:
		return true
	}
}

func (p *Parser) curIs(k ast.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k ast.Kind) bool { return p.peek.Kind == k }

// expect checks cur against k; on match it advances and returns true. On
// mismatch it emits the diagnostic named by code and leaves cur in place
// for synchronize (or the caller) to deal with.
func (p *Parser) expect(k ast.Kind, code diag.Code, what string) bool {
	if p.curIs(k) {
		p.advance()
		return true
	}
	p.errorf(code, "expected %s, found %s", what, p.cur.Kind.String())
	return false
}

func (p *Parser) errorf(code diag.Code, format string, args ...any) {
	p.diags.Emitf(diag.Error, code, p.cur.Pos, format, args...)
}

// synchronize skips tokens until one of the given kinds, a top-level
// declaration starter, or EOF is reached (§4.6.5). It does not consume the
// synchronization token itself (callers typically want to see it still).
func (p *Parser) synchronize(stopAt ...ast.Kind) {
	for {
		if p.curIs(ast.EOF) {
			return
		}
		for _, k := range stopAt {
			if p.curIs(k) {
				return
			}
		}
		if isDeclarationStart(p.cur.Kind) {
			return
		}
		p.advance()
	}
}

func isDeclarationStart(k ast.Kind) bool {
	switch k {
	case ast.PACKAGE, ast.NAMESPACE, ast.IMPORT, ast.CLASS, ast.INTERFACE, ast.ENUM,
		ast.FUNCTION, ast.VAR, ast.USE, ast.SEMICOLON, ast.RBRACE:
		return true
	default:
		return isModifierKeyword(k)
	}
}

// Parse consumes the entire token stream and always returns the ROOT node.
// User-level parse errors do not stop it (§4.6.7): the parser
// resynchronizes and keeps going, reporting everything through
// diagnostics.
func (p *Parser) Parse() *ast.Node {
	root := ast.New(ast.ROOT, p.cur.Pos)
	list := ast.New(ast.DIRECTIVE_LIST, p.cur.Pos)
	root.AppendChild(list)

	p.pushScope(list)
	for !p.curIs(ast.EOF) {
		if p.curIs(ast.SEMICOLON) {
			p.advance()
			continue
		}
		if stmt := p.parseDirective(); stmt != nil {
			list.AppendChild(stmt)
		}
	}
	p.popScope()
	return root
}

// parseDirective parses one top-level or block-level construct: a pragma,
// declaration, or statement.
func (p *Parser) parseDirective() *ast.Node {
	switch p.cur.Kind {
	case ast.USE:
		p.parseUsePragma()
		return nil
	case ast.PACKAGE:
		return p.parsePackage()
	case ast.NAMESPACE:
		return p.parseNamespace()
	case ast.IMPORT:
		return p.parseImport()
	default:
		return p.parseStatement()
	}
}
