package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/numeric"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/position"
)

// isIdentifierStart reports whether r may begin an identifier (§4.5.7).
func isIdentifierStart(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	switch unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl) {
	case true:
		return true
	}
	return false
}

// isIdentifierPart reports whether r may continue an identifier (§4.5.7).
func isIdentifierPart(r rune) bool {
	if isIdentifierStart(r) {
		return true
	}
	if r == '‌' || r == '‍' {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// readIdentifierOrKeyword scans an identifier, decoding any embedded escape
// sequences, then looks it up against the keyword table (§4.5.7).
func (l *Lexer) readIdentifierOrKeyword(pos position.Position) *ast.Node {
	var sb strings.Builder

	for isIdentifierPart(l.ch) || l.ch == '\\' {
		if l.ch == '\\' {
			r, ok := l.readIdentifierEscape()
			if !ok {
				break
			}
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	text := norm.NFC.String(sb.String())

	if kind, ok := keywords[text]; ok {
		switch kind {
		case ast.LINE_KEYWORD:
			n := ast.New(ast.INTEGER, pos)
			n.SetInteger(numeric.NewInteger(int64(pos.Line)))
			return n
		case ast.FILE_KEYWORD:
			n := ast.New(ast.STRING, pos)
			n.SetString(pos.Filename)
			return n
		case ast.FLOATING_POINT:
			n := ast.New(ast.FLOATING_POINT, pos)
			if text == "NaN" {
				n.SetFloat(numeric.NaN())
			} else {
				n.SetFloat(numeric.Infinity(false))
			}
			return n
		default:
			return ast.New(kind, pos)
		}
	}

	n := ast.New(ast.IDENTIFIER, pos)
	n.SetString(text)
	return n
}

// readIdentifierEscape decodes one \xHH, \uHHHH, or (when
// EXTENDED_ESCAPE_SEQUENCES is set) \UHHHHHH escape inside an identifier,
// consuming the backslash and its digits. Returns ok=false if the character
// after the backslash isn't a recognized escape introducer at all, in which
// case nothing beyond the backslash itself has been consumed.
func (l *Lexer) readIdentifierEscape() (rune, bool) {
	l.readChar() // backslash
	var width int
	switch l.ch {
	case 'x':
		width = 2
	case 'u':
		width = 4
	case 'U':
		if !l.opts.IsOn(options.ExtendedEscapeSequences) {
			l.errorf(diag.UnknownEscapeSequence, "\\U escape requires the EXTENDED_ESCAPE_SEQUENCES option")
			l.readChar()
			return '?', true
		}
		width = 6
	default:
		return 0, false
	}
	l.readChar()
	var sb strings.Builder
	for i := 0; i < width && isHexDigit(l.ch); i++ {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if sb.Len() != width {
		l.errorf(diag.UnknownEscapeSequence, "incomplete unicode escape in identifier")
		return '?', true
	}
	v, err := strconv.ParseInt(sb.String(), 16, 32)
	if err != nil {
		return '?', true
	}
	return rune(v), true
}
