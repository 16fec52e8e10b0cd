package compiler

import (
	"testing"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/parser"
)

func compileProgram(t *testing.T, src string) (*ast.Node, *Compiler, *diag.Context) {
	t.Helper()
	opts := options.New()
	diags := diag.NewContext()
	l := lexer.New("t.as", []byte(src), opts, lexer.WithDiagnostics(diags))
	root := parser.New(l, opts, diags).Parse()
	if diags.HasErrors() {
		t.Fatalf("parse errors: %d", diags.Errors())
	}
	c := New(opts, diags)
	c.Compile(root)
	return root, c, diags
}

func firstStatement(root *ast.Node) *ast.Node {
	return root.Children()[0].Children()[0]
}

func TestResolvesLocalVariable(t *testing.T) {
	_, _, diags := compileProgram(t, "var x = 1; x = x + 1;")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
}

func TestUndeclaredIdentifierReportsNotFound(t *testing.T) {
	_, _, diags := compileProgram(t, "y = 1;")
	if !diags.HasErrors() {
		t.Fatalf("expected a NOT_FOUND error for undeclared y")
	}
}

func TestFunctionParameterResolvesInsideBody(t *testing.T) {
	_, _, diags := compileProgram(t, "function f(a) { return a + 1; }")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
}

func TestMemberAccessResolvesClassField(t *testing.T) {
	src := `
class Point {
	var x;
	function getX() { return this.x; }
}
`
	_, _, diags := compileProgram(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
}

func TestOperatorOverloadArityMismatchReportsCannotOverload(t *testing.T) {
	src := `
class Vector {
	function +(a, b) { return a; }
}
`
	_, _, diags := compileProgram(t, src)
	if !diags.HasErrors() {
		t.Fatalf("expected CANNOT_OVERLOAD for a binary + taking two parameters")
	}
}

func TestOperatorOverloadRewritesToMemberCall(t *testing.T) {
	src := `
class Vector {
	function +(other) { return this; }
}
var a : Vector = new Vector();
var b : Vector = new Vector();
a + b;
`
	root, _, diags := compileProgram(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	program := root.Children()[0]
	stmt := program.Children()[len(program.Children())-1]
	if stmt.Kind != ast.ASSIGNMENT {
		t.Fatalf("rewritten operator kind = %s, want ASSIGNMENT", stmt.Kind)
	}
	call := stmt.Children()[0]
	if call.Kind != ast.CALL {
		t.Fatalf("assignment child kind = %s, want CALL", call.Kind)
	}
	ref := call.Children()[0]
	if ref.Kind != ast.MEMBER {
		t.Fatalf("call target kind = %s, want MEMBER", ref.Kind)
	}
	if ref.Children()[1].GetString() != "+" {
		t.Fatalf("overload member name = %q, want %q", ref.Children()[1].GetString(), "+")
	}
}

func TestGotoResolvesToLabelInSameFunction(t *testing.T) {
	src := `
function f() {
	goto done;
	done: return;
}
`
	_, _, diags := compileProgram(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
}

func TestGotoWithoutMatchingLabelReportsLabelNotFound(t *testing.T) {
	src := `
function f() {
	goto nowhere;
}
`
	_, _, diags := compileProgram(t, src)
	if !diags.HasErrors() {
		t.Fatalf("expected LABEL_NOT_FOUND for an unresolved goto")
	}
}

func TestAttributePropagationInheritsVisibilityFromClass(t *testing.T) {
	src := `
private class Hidden {
	function reveal() {}
}
`
	root, _, diags := compileProgram(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	program := root.Children()[0]
	classDecl := program.Children()[0]
	member := classBody(classDecl).Children()[0]
	if !member.GetAttribute(ast.Private) {
		t.Fatalf("expected reveal() to inherit PRIVATE from its class")
	}
}

func TestAttributePropagationYieldsToExplicitMemberAttribute(t *testing.T) {
	src := `
private class Hidden {
	public function reveal() {}
}
`
	root, _, diags := compileProgram(t, src)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	program := root.Children()[0]
	classDecl := program.Children()[0]
	member := classBody(classDecl).Children()[0]
	if !member.GetAttribute(ast.Public) {
		t.Fatalf("explicit PUBLIC should win over the class's PRIVATE")
	}
	if member.GetAttribute(ast.Private) {
		t.Fatalf("PRIVATE should not have been set alongside explicit PUBLIC")
	}
}
