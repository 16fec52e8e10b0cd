package lexer

import (
	"strconv"
	"strings"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/numeric"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/position"
)

// readNumber scans an integer or floating-point literal (§4.5.4).
func (l *Lexer) readNumber(pos position.Position) *ast.Node {
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		return l.readRadixNumber(pos, "0x", isHexDigit, 16)
	}
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		if l.opts.IsOn(options.Binary) {
			return l.readRadixNumber(pos, "0b", isBinaryDigit, 2)
		}
	}
	if l.ch == '0' && isOctalDigit(l.peekChar()) && l.opts.IsOn(options.Octal) {
		return l.readOctalNumber(pos)
	}
	return l.readDecimalNumber(pos)
}

func (l *Lexer) readRadixNumber(pos position.Position, prefix string, digit func(rune) bool, base int) *ast.Node {
	l.readChar() // 0
	l.readChar() // x/b
	var sb strings.Builder
	for digit(l.ch) || l.ch == '\'' {
		if l.ch != '\'' {
			sb.WriteRune(l.ch)
		}
		l.readChar()
	}
	if sb.Len() == 0 {
		l.errorf(diag.InvalidNumber, "%s literal requires at least one digit", prefix)
		l.rejectTrailingLetter(pos)
		n := ast.New(ast.INTEGER, pos)
		n.SetInteger(numeric.NewInteger(-1))
		return n
	}
	v, err := strconv.ParseInt(sb.String(), base, 64)
	if err != nil {
		l.errorf(diag.InvalidNumber, "invalid %s literal", prefix)
		v = -1
	}
	if l.rejectTrailingLetter(pos) {
		v = -1
	}
	n := ast.New(ast.INTEGER, pos)
	n.SetInteger(numeric.NewInteger(v))
	return n
}

func (l *Lexer) readOctalNumber(pos position.Position) *ast.Node {
	l.readChar() // skip the leading 0
	var sb strings.Builder
	for isOctalDigit(l.ch) || l.ch == '\'' {
		if l.ch != '\'' {
			sb.WriteRune(l.ch)
		}
		l.readChar()
	}
	v, err := strconv.ParseInt(sb.String(), 8, 64)
	if err != nil {
		l.errorf(diag.InvalidNumber, "invalid octal literal")
		v = -1
	}
	if l.rejectTrailingLetter(pos) {
		v = -1
	}
	n := ast.New(ast.INTEGER, pos)
	n.SetInteger(numeric.NewInteger(v))
	return n
}

func (l *Lexer) readDecimalNumber(pos position.Position) *ast.Node {
	var intPart, fracPart, expPart strings.Builder
	isFloat := false

	for isDigit(l.ch) || l.ch == '\'' {
		if l.ch != '\'' {
			intPart.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.ch == '.' && (isDigit(l.peekChar()) || intPart.Len() > 0) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) || l.ch == '\'' {
			if l.ch != '\'' {
				fracPart.WriteRune(l.ch)
			}
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		expPart.WriteRune(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			expPart.WriteRune(l.ch)
			l.readChar()
		}
		for isDigit(l.ch) {
			expPart.WriteRune(l.ch)
			l.readChar()
		}
	}

	bad := l.rejectTrailingLetter(pos)

	if isFloat {
		text := intPart.String() + "." + fracPart.String() + expPart.String()
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || bad {
			l.errorf(diag.InvalidNumber, "invalid floating point literal %q", text)
			v = -1
		}
		n := ast.New(ast.FLOATING_POINT, pos)
		n.SetFloat(numeric.NewFloat(v))
		return n
	}

	text := intPart.String()
	if text == "" {
		text = "0"
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil || bad {
		l.errorf(diag.InvalidNumber, "invalid integer literal %q", text)
		v = -1
	}
	n := ast.New(ast.INTEGER, pos)
	n.SetInteger(numeric.NewInteger(v))
	return n
}

// rejectTrailingLetter reports INVALID_NUMBER when a letter immediately
// follows a number literal with no intervening whitespace (§4.5.4).
func (l *Lexer) rejectTrailingLetter(pos position.Position) bool {
	if isIdentifierStart(l.ch) && !isDigit(l.ch) {
		l.errorf(diag.InvalidNumber, "letter immediately follows numeric literal")
		for isIdentifierPart(l.ch) {
			l.readChar()
		}
		return true
	}
	return false
}
