package lexer

import (
	"testing"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/options"
)

func scanAll(t *testing.T, src string, opts *options.Set) []*ast.Node {
	t.Helper()
	if opts == nil {
		opts = options.New()
	}
	l := New("t.as", []byte(src), opts)
	var toks []*ast.Node
	for {
		tok := l.GetNextToken()
		toks = append(toks, tok)
		if tok.Kind == ast.EOF {
			return toks
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "var x = foo;", nil)
	wantKinds := []ast.Kind{ast.VAR, ast.IDENTIFIER, ast.ASSIGNMENT, ast.IDENTIFIER, ast.SEMICOLON, ast.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[1].GetString() != "x" {
		t.Errorf("identifier text = %q", toks[1].GetString())
	}
}

func TestIntegerLiteral(t *testing.T) {
	toks := scanAll(t, "123", nil)
	if toks[0].Kind != ast.INTEGER || toks[0].GetInteger().Get() != 123 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestHexLiteral(t *testing.T) {
	toks := scanAll(t, "0xFF", nil)
	if toks[0].Kind != ast.INTEGER || toks[0].GetInteger().Get() != 255 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestEmptyHexLiteralIsInvalidNumber(t *testing.T) {
	toks := scanAll(t, "0x;", nil)
	if toks[0].Kind != ast.INTEGER || toks[0].GetInteger().Get() != -1 {
		t.Fatalf("got %v, want INTEGER(-1)", toks[0])
	}
}

func TestBinaryLiteralRequiresOption(t *testing.T) {
	toks := scanAll(t, "0b101", nil)
	// BINARY option off: '0' then identifier-ish 'b101' triggers INVALID_NUMBER via trailing-letter check.
	if toks[0].Kind != ast.INTEGER {
		t.Fatalf("got %v", toks[0])
	}

	opts := options.New()
	opts.Set(options.Binary, 1)
	toks = scanAll(t, "0b101", opts)
	if toks[0].Kind != ast.INTEGER || toks[0].GetInteger().Get() != 5 {
		t.Fatalf("got %v with BINARY on", toks[0])
	}
}

func TestFloatLiteral(t *testing.T) {
	toks := scanAll(t, "1.5e2", nil)
	if toks[0].Kind != ast.FLOATING_POINT || toks[0].GetFloat().Get() != 150 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestStringLiteralWithEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\x41"`, nil)
	if toks[0].Kind != ast.STRING || toks[0].GetString() != "a\nbA" {
		t.Fatalf("got %q", toks[0].GetString())
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := scanAll(t, "\"abc", nil)
	if toks[0].Kind != ast.STRING || toks[0].GetString() != "abc" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestOperatorLongestMatch(t *testing.T) {
	toks := scanAll(t, ">>>= >>= >> >= >", nil)
	want := []ast.Kind{
		ast.ASSIGNMENT_SHIFT_RIGHT_UNSIGNED, ast.ASSIGNMENT_SHIFT_RIGHT,
		ast.SHIFT_RIGHT, ast.GREATER_EQUAL, ast.GREATER, ast.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLineCommentsAndBlockComments(t *testing.T) {
	toks := scanAll(t, "1 // comment\n/* block */ 2", nil)
	if len(toks) != 3 || toks[0].Kind != ast.INTEGER || toks[1].Kind != ast.INTEGER {
		t.Fatalf("got %v", toks)
	}
}

func TestBacktickRegexAlwaysRecognized(t *testing.T) {
	toks := scanAll(t, "`a+b`i", nil)
	if toks[0].Kind != ast.REGULAR_EXPRESSION || toks[0].GetString() != "a+bi" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestSlashRegexOnlyWhenExpectingLiteral(t *testing.T) {
	opts := options.New()
	l := New("t.as", []byte("/abc/g"), opts)
	l.SetExpectingLiteral(true)
	tok := l.GetNextToken()
	if tok.Kind != ast.REGULAR_EXPRESSION || tok.GetString() != "abcg" {
		t.Fatalf("got %v", tok)
	}
}

func TestSlashIsDivideWhenNotExpectingLiteral(t *testing.T) {
	toks := scanAll(t, "a / b", nil)
	if toks[1].Kind != ast.DIVIDE {
		t.Fatalf("got %v", toks[1])
	}
}

func TestInfinityAndNaNKeywords(t *testing.T) {
	toks := scanAll(t, "Infinity NaN", nil)
	if toks[0].Kind != ast.FLOATING_POINT || !toks[0].GetFloat().IsPositiveInfinity() {
		t.Fatalf("Infinity: got %v", toks[0])
	}
	if toks[1].Kind != ast.FLOATING_POINT || !toks[1].GetFloat().IsNaN() {
		t.Fatalf("NaN: got %v", toks[1])
	}
}

func TestDunderLineAndFile(t *testing.T) {
	l := New("mod.as", []byte("x\n__LINE__ __FILE__"), options.New())
	for i := 0; i < 1; i++ {
		l.GetNextToken()
	}
	line := l.GetNextToken()
	file := l.GetNextToken()
	if line.Kind != ast.INTEGER || line.GetInteger().Get() != 2 {
		t.Fatalf("__LINE__: got %v", line)
	}
	if file.Kind != ast.STRING || file.GetString() != "mod.as" {
		t.Fatalf("__FILE__: got %v", file)
	}
}

func TestUnexpectedPunctuationRecovers(t *testing.T) {
	toks := scanAll(t, "1 @@ 2", nil)
	if toks[0].Kind != ast.INTEGER || toks[len(toks)-2].Kind != ast.INTEGER {
		t.Fatalf("got %v", toks)
	}
}

// TestUnexpectedPunctuationAboveOperatorTableRecovers guards against
// indexing operatorTable (sized to the ASCII punctuation it lists) with a
// code point past its bounds, such as U+00A7 SECTION SIGN, which is neither
// an identifier character nor a recognized operator.
func TestUnexpectedPunctuationAboveOperatorTableRecovers(t *testing.T) {
	toks := scanAll(t, "1 § 2", nil)
	if toks[0].Kind != ast.INTEGER || toks[len(toks)-2].Kind != ast.INTEGER {
		t.Fatalf("got %v", toks)
	}
}
