package lexer

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/position"
)

// opEntry is one candidate spelling in the longest-match operator table.
type opEntry struct {
	text string
	kind ast.Kind
}

// operatorTable lists every recognized operator spelling (§4.5.3), longest
// first within each starting character so the scanner's linear search always
// finds the longest match.
var operatorTable = [][]opEntry{
	'+': {{"++", ast.INCREMENT}, {"+=", ast.ASSIGNMENT_ADD}, {"+", ast.ADD}},
	'-': {{"--", ast.DECREMENT}, {"-=", ast.ASSIGNMENT_SUBTRACT}, {"-", ast.SUBTRACT}},
	'*': {{"**=", ast.ASSIGNMENT_POWER}, {"**", ast.POWER}, {"*=", ast.ASSIGNMENT_MULTIPLY}, {"*", ast.MULTIPLY}},
	'/': {{"/=", ast.ASSIGNMENT_DIVIDE}, {"/", ast.DIVIDE}},
	'%': {{"%=", ast.ASSIGNMENT_MODULO}, {"%", ast.MODULO}},
	'=': {{"===", ast.STRICT_EQUAL}, {"==", ast.EQUAL}, {"=", ast.ASSIGNMENT}},
	'!': {{"!==", ast.STRICT_NOT_EQUAL}, {"!=", ast.NOT_EQUAL}, {"!~", ast.NOT_MATCH}, {"!", ast.LOGICAL_NOT}},
	'<': {
		{"<<=", ast.ASSIGNMENT_SHIFT_LEFT}, {"<=>", ast.COMPARE}, {"<%=", ast.ASSIGNMENT_ROTATE_LEFT},
		{"<?=", ast.ASSIGNMENT_MIN}, {"<<", ast.SHIFT_LEFT}, {"<=", ast.LESS_EQUAL}, {"<%", ast.ROTATE_LEFT},
		{"<?", ast.MIN}, {"<>", ast.NOT_EQUAL}, {"<", ast.LESS},
	},
	'>': {
		{">>>=", ast.ASSIGNMENT_SHIFT_RIGHT_UNSIGNED}, {">>=", ast.ASSIGNMENT_SHIFT_RIGHT}, {">%=", ast.ASSIGNMENT_ROTATE_RIGHT},
		{">?=", ast.ASSIGNMENT_MAX}, {">>>", ast.SHIFT_RIGHT_UNSIGNED}, {">>", ast.SHIFT_RIGHT}, {">=", ast.GREATER_EQUAL},
		{">%", ast.ROTATE_RIGHT}, {">?", ast.MAX}, {">", ast.GREATER},
	},
	'&': {{"&&=", ast.ASSIGNMENT_LOGICAL_AND}, {"&&", ast.LOGICAL_AND}, {"&=", ast.ASSIGNMENT_BITWISE_AND}, {"&", ast.BITWISE_AND}},
	'|': {{"||=", ast.ASSIGNMENT_LOGICAL_OR}, {"||", ast.LOGICAL_OR}, {"|=", ast.ASSIGNMENT_BITWISE_OR}, {"|", ast.BITWISE_OR}},
	'^': {{"^^=", ast.ASSIGNMENT_LOGICAL_XOR}, {"^^", ast.LOGICAL_XOR}, {"^=", ast.ASSIGNMENT_BITWISE_XOR}, {"^", ast.BITWISE_XOR}},
	'~': {{"~~", ast.SMART_MATCH}, {"~!", ast.NOT_MATCH}, {"~=", ast.MATCH}, {"~", ast.BITWISE_NOT}},
	'.': {{"...", ast.REST}, {"..", ast.RANGE}, {".", ast.MEMBER}},
	':': {{":=", ast.ASSIGNMENT}, {"::", ast.SCOPE}, {":", ast.COLON}},
	'(': {{"(", ast.LPAREN}},
	')': {{")", ast.RPAREN}},
	'[': {{"[", ast.LBRACKET}},
	']': {{"]", ast.RBRACKET}},
	'{': {{"{", ast.LBRACE}},
	'}': {{"}", ast.RBRACE}},
	',': {{",", ast.COMMA}},
	';': {{";", ast.SEMICOLON}},
	'?': {{"?", ast.QUESTION}},
}

// readOperator matches the longest operator spelling starting at the
// current character, or reports UNEXPECTED_PUNCTUATION and recovers by
// skipping the one bad character (§4.5.8).
func (l *Lexer) readOperator(pos position.Position) *ast.Node {
	var entries []opEntry
	if int(l.ch) < len(operatorTable) {
		entries = operatorTable[l.ch]
	}
	for _, e := range entries {
		if l.matchesAhead(e.text) {
			for range []rune(e.text) {
				l.readChar()
			}
			return ast.New(e.kind, pos)
		}
	}

	bad := l.ch
	l.errorf(diag.UnexpectedPunctuation, "unexpected character %q", bad)
	l.readChar()
	return ast.New(ast.ILLEGAL, pos)
}

func (l *Lexer) matchesAhead(text string) bool {
	runes := []rune(text)
	if l.ch != runes[0] {
		return false
	}
	for i := 1; i < len(runes); i++ {
		if l.peekCharN(i) != runes[i] {
			return false
		}
	}
	return true
}
