package lexer

import (
	"strconv"
	"strings"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/position"
)

// readStringLiteral scans a single- or double-quoted string (§4.5.5).
func (l *Lexer) readStringLiteral(pos position.Position) *ast.Node {
	quote := l.ch
	l.readChar()

	var sb strings.Builder
	for {
		if l.atEOF {
			l.errorf(diag.UnterminatedString, "unterminated string literal")
			break
		}
		if isLineTerminator(l.ch) {
			l.errorf(diag.UnterminatedString, "line terminator in string literal")
			break
		}
		if l.ch == quote {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			sb.WriteRune(l.readStringEscape())
			continue
		}
		if r := l.ch; r == '￾' || r == '￿' || isSurrogate(r) {
			l.errorf(diag.UnexpectedPunctuation, "invalid character %q in string literal", r)
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}

	n := ast.New(ast.STRING, pos)
	n.SetString(sb.String())
	return n
}

func isSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDFFF }

// readStringEscape decodes one backslash escape (§4.5.5), consuming the
// backslash and its payload.
func (l *Lexer) readStringEscape() rune {
	l.readChar() // backslash
	switch l.ch {
	case 'b':
		l.readChar()
		return '\b'
	case 'f':
		l.readChar()
		return '\f'
	case 'n':
		l.readChar()
		return '\n'
	case 'r':
		l.readChar()
		return '\r'
	case 't':
		l.readChar()
		return '\t'
	case 'v':
		l.readChar()
		return '\v'
	case '\\':
		l.readChar()
		return '\\'
	case '\'':
		l.readChar()
		return '\''
	case '"':
		l.readChar()
		return '"'
	case '0':
		l.readChar()
		return 0
	case 'x':
		return l.readHexEscape(2)
	case 'u':
		return l.readHexEscape(4)
	case 'e':
		if l.opts.IsOn(options.ExtendedEscapeSequences) {
			l.readChar()
			return 0x1B
		}
	case 'U':
		if l.opts.IsOn(options.ExtendedEscapeSequences) {
			return l.readHexEscape(6)
		}
	}
	if isOctalDigit(l.ch) && l.opts.IsOn(options.ExtendedEscapeSequences) {
		return l.readOctalEscape()
	}
	bad := l.ch
	l.errorf(diag.UnknownEscapeSequence, "unknown escape sequence \\%c", bad)
	l.readChar()
	return '?'
}

func (l *Lexer) readHexEscape(width int) rune {
	l.readChar() // x/u/U
	var sb strings.Builder
	for i := 0; i < width && isHexDigit(l.ch); i++ {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if sb.Len() != width {
		l.errorf(diag.UnknownEscapeSequence, "incomplete unicode escape")
		return '?'
	}
	v, err := strconv.ParseInt(sb.String(), 16, 32)
	if err != nil {
		return '?'
	}
	return rune(v)
}

func (l *Lexer) readOctalEscape() rune {
	var sb strings.Builder
	for i := 0; i < 3 && isOctalDigit(l.ch); i++ {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	v, err := strconv.ParseInt(sb.String(), 8, 32)
	if err != nil {
		return '?'
	}
	return rune(v)
}

// readBacktickRegex scans a `...` regular expression literal, which is
// recognized in every context (§4.5.6).
func (l *Lexer) readBacktickRegex(pos position.Position) *ast.Node {
	l.readChar() // skip `
	var sb strings.Builder
	for l.ch != '`' && !l.atEOF {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.atEOF {
		l.errorf(diag.UnterminatedString, "unterminated regular expression literal")
	} else {
		l.readChar() // skip closing `
	}
	l.appendRegexFlags(&sb)
	n := ast.New(ast.REGULAR_EXPRESSION, pos)
	n.SetString(sb.String())
	return n
}

// readSlashRegex scans a /.../ regular expression literal, only called
// when the parser's "expecting literal" flag is set (§4.5.6, §4.6.4).
func (l *Lexer) readSlashRegex(pos position.Position) *ast.Node {
	l.readChar() // skip opening /
	var sb strings.Builder
	inClass := false
	for !l.atEOF {
		if l.ch == '\\' {
			sb.WriteRune(l.ch)
			l.readChar()
			if !l.atEOF {
				sb.WriteRune(l.ch)
				l.readChar()
			}
			continue
		}
		if l.ch == '[' {
			inClass = true
		} else if l.ch == ']' {
			inClass = false
		} else if l.ch == '/' && !inClass {
			break
		} else if isLineTerminator(l.ch) {
			break
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch != '/' {
		l.errorf(diag.UnterminatedString, "unterminated regular expression literal")
	} else {
		l.readChar() // skip closing /
	}
	l.appendRegexFlags(&sb)
	n := ast.New(ast.REGULAR_EXPRESSION, pos)
	n.SetString(sb.String())
	return n
}

func (l *Lexer) appendRegexFlags(sb *strings.Builder) {
	for isIdentifierPart(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
}
