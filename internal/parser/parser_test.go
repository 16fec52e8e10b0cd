package parser

import (
	"testing"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
)

func parseProgram(t *testing.T, src string, opts *options.Set) (*ast.Node, *diag.Context) {
	t.Helper()
	if opts == nil {
		opts = options.New()
	}
	diags := diag.NewContext()
	l := lexer.New("t.as", []byte(src), opts, lexer.WithDiagnostics(diags))
	p := New(l, opts, diags)
	return p.Parse(), diags
}

func firstStatement(root *ast.Node) *ast.Node {
	return root.Children()[0].Children()[0]
}

func TestPrecedenceOfAssignmentOverAddition(t *testing.T) {
	root, diags := parseProgram(t, "a = b + c;", nil)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	stmt := firstStatement(root)
	if stmt.Kind != ast.ASSIGNMENT {
		t.Fatalf("top kind = %s, want ASSIGNMENT", stmt.Kind)
	}
	rhs := stmt.Children()[1]
	if rhs.Kind != ast.ADD {
		t.Fatalf("rhs kind = %s, want ADD", rhs.Kind)
	}
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	root, _ := parseProgram(t, "a + b * c;", nil)
	stmt := firstStatement(root)
	if stmt.Kind != ast.ADD {
		t.Fatalf("kind = %s, want ADD", stmt.Kind)
	}
	if stmt.Children()[1].Kind != ast.MULTIPLY {
		t.Fatalf("rhs kind = %s, want MULTIPLY", stmt.Children()[1].Kind)
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	root, _ := parseProgram(t, "a ** b ** c;", nil)
	stmt := firstStatement(root)
	if stmt.Kind != ast.POWER {
		t.Fatalf("kind = %s, want POWER", stmt.Kind)
	}
	if stmt.Children()[1].Kind != ast.POWER {
		t.Fatalf("rhs should itself be POWER, got %s", stmt.Children()[1].Kind)
	}
}

func TestUsePragmaTogglesOption(t *testing.T) {
	opts := options.New()
	diags := diag.NewContext()
	l := lexer.New("t.as", []byte("use binary(1); var a = 0b1111101000;"), opts, lexer.WithDiagnostics(diags))
	p := New(l, opts, diags)
	root := p.Parse()
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	if !opts.IsOn(options.Binary) {
		t.Fatalf("BINARY option not turned on by use pragma")
	}
	list := root.Children()[0]
	if len(list.Children()) != 1 {
		t.Fatalf("use pragma left a residual node: %d children", len(list.Children()))
	}
	varStmt := list.Children()[0]
	init := varStmt.Children()[0].Children()[0]
	if init.Kind != ast.INTEGER {
		t.Fatalf("initializer kind = %s, want INTEGER", init.Kind)
	}
	if init.GetInteger().Get() != 1000 {
		t.Fatalf("value = %d, want 1000", init.GetInteger().Get())
	}
}

func TestForInSetsFlag(t *testing.T) {
	root, _ := parseProgram(t, "for (x in obj) { x; }", nil)
	stmt := firstStatement(root)
	if stmt.Kind != ast.FOR_IN {
		t.Fatalf("kind = %s, want FOR_IN", stmt.Kind)
	}
	if !stmt.GetFlag(ast.ForFlagIn) {
		t.Fatalf("FOR_FLAG_IN not set")
	}
}

func TestSwitchRecordsComparisonOperator(t *testing.T) {
	root, _ := parseProgram(t, "switch (x === y) { case 1: break; default: break; }", nil)
	stmt := firstStatement(root)
	if stmt.Kind != ast.SWITCH {
		t.Fatalf("kind = %s, want SWITCH", stmt.Kind)
	}
	if stmt.SwitchOperator != "===" {
		t.Fatalf("SwitchOperator = %q, want ===", stmt.SwitchOperator)
	}
	if !stmt.GetFlag(ast.SwitchFlagDefault) {
		t.Fatalf("SWITCH_FLAG_DEFAULT not set despite a default clause")
	}
}

func TestEmptyBlockIsChildlessDirectiveList(t *testing.T) {
	root, _ := parseProgram(t, "if (a) { }", nil)
	stmt := firstStatement(root)
	then := stmt.Children()[1]
	if then.Kind != ast.DIRECTIVE_LIST {
		t.Fatalf("then-branch kind = %s, want DIRECTIVE_LIST", then.Kind)
	}
	if len(then.Children()) != 0 {
		t.Fatalf("empty block has %d children, want 0", len(then.Children()))
	}
}

func TestVarDeclarationsAreCollectedOnEnclosingFunction(t *testing.T) {
	root, _ := parseProgram(t, "function f() { var a = 1, b = 2; }", nil)
	fn := firstStatement(root)
	if fn.Kind != ast.FUNCTION {
		t.Fatalf("kind = %s, want FUNCTION", fn.Kind)
	}
	if len(fn.Variables()) != 2 {
		t.Fatalf("collected %d variables, want 2", len(fn.Variables()))
	}
}

func TestLabelsAreRegisteredOnEnclosingScope(t *testing.T) {
	root, _ := parseProgram(t, "function f() { outer: while (a) { break outer; } }", nil)
	fn := firstStatement(root)
	if _, ok := fn.Label("outer"); !ok {
		t.Fatalf("label %q not registered on function scope", "outer")
	}
}

func TestModifierAttributesApplyToClass(t *testing.T) {
	root, diags := parseProgram(t, "public final class C { }", nil)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %d", diags.Errors())
	}
	stmt := firstStatement(root)
	if stmt.Kind != ast.CLASS {
		t.Fatalf("kind = %s, want CLASS", stmt.Kind)
	}
	if !stmt.GetAttribute(ast.Public) || !stmt.GetAttribute(ast.Final) {
		t.Fatalf("expected PUBLIC and FINAL attributes on class")
	}
}

func TestConflictingAttributesReportInvalidAttributes(t *testing.T) {
	_, diags := parseProgram(t, "public private class C { }", nil)
	if !diags.HasErrors() {
		t.Fatalf("expected INVALID_ATTRIBUTES diagnostic for conflicting modifiers")
	}
}

func TestMissingSemicolonResynchronizes(t *testing.T) {
	root, diags := parseProgram(t, "var a = 1 var b = 2;", nil)
	if !diags.HasErrors() {
		t.Fatalf("expected SEMICOLON_EXPECTED diagnostic")
	}
	list := root.Children()[0]
	if len(list.Children()) != 2 {
		t.Fatalf("resynchronization produced %d statements, want 2", len(list.Children()))
	}
}

func TestRestParameterWrapsParamInRest(t *testing.T) {
	root, _ := parseProgram(t, "function f(a, ...rest) { }", nil)
	fn := firstStatement(root)
	// Params are the FUNCTION node's own children, preceding the body.
	var restNode *ast.Node
	for _, c := range fn.Children() {
		if c.Kind == ast.REST {
			restNode = c
		}
	}
	if restNode == nil {
		t.Fatalf("no REST child found among function parameters")
	}
	if restNode.Children()[0].GetString() != "rest" {
		t.Fatalf("rest parameter name = %q, want rest", restNode.Children()[0].GetString())
	}
}
