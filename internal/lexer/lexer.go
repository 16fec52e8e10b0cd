// Package lexer implements the recursive-descent lexical scanner (component
// E): a single-threaded, table-driven tokenizer producing ast.Node values
// directly, sharing one ast.Kind enumeration with the parser and compiler.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/numeric"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/position"
)

// Lexer scans as2js source text into ast.Node tokens. It holds the
// OptionSet shared with the parser (mutated live by `use` pragmas) and
// reports diagnostics through a diag.Context, the same collaborators the
// parser and compiler use.
type Lexer struct {
	input  string
	pos    int // byte offset of ch
	rdPos  int // byte offset of next rune
	ch     rune
	atEOF  bool
	posn   position.Position
	opts   *options.Set
	diags  *diag.Context
	expect bool // parser's "expecting literal" flag (§4.6.4)
}

// Option configures a Lexer at construction.
type Option func(*Lexer)

// WithDiagnostics installs the diagnostic sink used for lexer errors.
// Without it, diagnostics are sent to diag.Default.
func WithDiagnostics(ctx *diag.Context) Option {
	return func(l *Lexer) { l.diags = ctx }
}

// New constructs a Lexer over source text read from filename, sharing opts
// with the parser that will consume this lexer's tokens. A nil opts (or a
// Lexer used before New returns) is a programmer error (§4.5.9).
func New(filename string, raw []byte, opts *options.Set, opt ...Option) *Lexer {
	if opts == nil {
		panic(&ast.InternalError{Message: "lexer.New() called with nil options"})
	}
	l := &Lexer{
		input: decodeSource(raw),
		posn:  position.New(filename),
		opts:  opts,
		diags: diag.Default,
	}
	for _, o := range opt {
		o(l)
	}
	l.readChar()
	return l
}

// SetExpectingLiteral tells the lexer whether a `/` at the current position
// should be read as the start of a regex literal (true) or the divide
// operator (false). The parser updates this before every token request
// (§4.6.4).
func (l *Lexer) SetExpectingLiteral(v bool) { l.expect = v }

// GetNewNode creates a bare node of kind at the lexer's current position,
// for the parser to use when synthesizing nodes the lexer did not itself
// produce (§4.5.9).
func (l *Lexer) GetNewNode(kind ast.Kind) *ast.Node {
	return ast.New(kind, l.posn)
}

func (l *Lexer) readChar() {
	if l.rdPos >= len(l.input) {
		l.ch = 0
		l.atEOF = true
		l.pos = l.rdPos
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.rdPos:])
	l.ch = r
	l.pos = l.rdPos
	l.rdPos += size
	if r == utf8.RuneError && size == 1 {
		l.errorf(diag.InvalidUTF8, "invalid UTF-8 byte at offset %d", l.pos)
	}
}

func (l *Lexer) peekChar() rune {
	if l.rdPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.rdPos:])
	return r
}

func (l *Lexer) peekCharN(n int) rune {
	p := l.rdPos
	for i := 0; i < n-1 && p < len(l.input); i++ {
		_, size := utf8.DecodeRuneInString(l.input[p:])
		p += size
	}
	if p >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[p:])
	return r
}

func (l *Lexer) errorf(code diag.Code, format string, args ...any) {
	l.diags.Emitf(diag.Error, code, l.posn, format, args...)
}

// isLineTerminator reports whether r is one of the four recognized line
// terminators (§4.5.1). CR+LF is handled by the caller as a single unit.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == ' '
}

func isWhitespaceRune(r rune) bool {
	if r == '\t' || r == '\v' || r == '\f' {
		return true
	}
	if isLineTerminator(r) {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// advanceLine updates position counters for a non-CR, non-CRLF line
// terminator that has already been consumed. U+2029 also advances the
// paragraph counter (§4.5.1).
func (l *Lexer) advanceLine(r rune) {
	l.posn.NewLine()
	if r == ' ' {
		l.posn.NewParagraph()
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\f':
			l.posn.NewPage()
			l.readChar()
		case l.ch == '\r':
			l.readChar()
			if l.ch == '\n' {
				l.readChar()
			}
			l.posn.NewLine()
		case isLineTerminator(l.ch):
			r := l.ch
			l.readChar()
			l.advanceLine(r)
		case isWhitespaceRune(l.ch):
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			l.skipLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF && !isLineTerminator(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.posn
	l.readChar() // skip /
	l.readChar() // skip *
	for {
		if l.atEOF {
			l.diags.Emitf(diag.Error, diag.UnterminatedString, start, "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		if isLineTerminator(l.ch) {
			r := l.ch
			l.readChar()
			if r == '\r' && l.ch == '\n' {
				l.readChar()
			}
			l.advanceLine(r)
			continue
		}
		if l.ch == '\f' {
			l.posn.NewPage()
		}
		l.readChar()
	}
}

// GetNextToken scans and returns the next token as a fully formed node with
// its position captured (§4.5.9).
func (l *Lexer) GetNextToken() *ast.Node {
	l.skipWhitespaceAndComments()
	pos := l.posn

	if l.atEOF {
		return ast.New(ast.EOF, pos)
	}

	switch {
	case l.ch == '`':
		return l.readBacktickRegex(pos)
	case l.ch == '/' && l.expect:
		return l.readSlashRegex(pos)
	case l.ch == '\'' || l.ch == '"':
		return l.readStringLiteral(pos)
	case l.ch == '∞':
		l.readChar()
		n := ast.New(ast.FLOATING_POINT, pos)
		n.SetFloat(numeric.Infinity(false))
		return n
	case l.ch == '�':
		l.readChar()
		n := ast.New(ast.FLOATING_POINT, pos)
		n.SetFloat(numeric.NaN())
		return n
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.readNumber(pos)
	case isIdentifierStart(l.ch) || l.ch == '\\':
		return l.readIdentifierOrKeyword(pos)
	default:
		return l.readOperator(pos)
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }
