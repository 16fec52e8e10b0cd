package parser

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/go-as2js/as2js/internal/ast"
)

// fixtures covers one representative script per grammar area the parser
// handles, snapshotting ast.Dump's stable output. Unlike the diagnostic
// checks in parser_test.go, these exist to catch unintended shape changes
// across the whole tree rather than to assert one specific node.
var fixtures = []struct {
	name string
	src  string
}{
	{
		name: "var_and_function",
		src: `var x : Number = 1;
function add(a, b) { return a + b; }
`,
	},
	{
		name: "class_with_operator_overload",
		src: `class Vector
{
	var x, y;

	function Vector(x, y) { this.x = x; this.y = y; }

	function +(rhs) { return new Vector(this.x + rhs.x, this.y + rhs.y); }
}
`,
	},
	{
		name: "if_else_and_loops",
		src: `if (a < b) { c = 1; } else { c = 2; }
while (c > 0) { c = c - 1; }
for (var i = 0; i < 10; i++) { print(i); }
`,
	},
	{
		name: "goto_and_label",
		src: `function f() {
	i = 0;
loop:
	i = i + 1;
	if (i < 10) goto loop;
}
`,
	},
	{
		name: "try_catch_finally",
		src: `try { risky(); } catch (e : Error) { handle(e); } finally { cleanup(); }
`,
	},
}

// TestParserFixtures snapshots ast.Dump(root) for a fixed set of as2js
// programs exercising the main grammar areas (declarations, classes and
// operator overloads, control flow, goto/label, exception handling).
func TestParserFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			root, diags := parseProgram(t, fx.src, nil)
			if diags.HasErrors() {
				t.Fatalf("unexpected parse errors in fixture %s: %d", fx.name, diags.Errors())
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_ast", fx.name), ast.Dump(root))
		})
	}
}
