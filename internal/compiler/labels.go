package compiler

import (
	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
)

// linkLabels implements §4.7.4's "goto linking" rule for one function: every
// GOTO inside fn (not inside a nested function, which has its own label
// table) resolves against fn.Labels(), set at parse time.
func (c *Compiler) linkLabels(fn *ast.Node) {
	for _, g := range collectGotos(fn) {
		label, ok := fn.Label(g.GetString())
		if !ok {
			c.diags.Emitf(diag.Error, diag.LabelNotFound, g.Pos, "no label %q in this function", g.GetString())
			continue
		}
		g.SetGotoExit(label)

		entry := label.GotoEnter()
		if entry == nil {
			entry = ast.New(ast.DIRECTIVE_LIST, label.Pos)
			label.SetGotoEnter(entry)
		}
		// A proxy node, not g itself: AppendChild would reparent g out of
		// the statement list it actually executes in. The proxy's instance
		// link is the non-owning back-reference §3.3 calls for.
		ref := ast.New(ast.GOTO, g.Pos)
		ref.SetString(g.GetString())
		ref.SetInstance(g)
		entry.AppendChild(ref)
	}
}

// collectGotos gathers every GOTO reachable from n without crossing into a
// nested FUNCTION (whose gotos belong to its own label table).
func collectGotos(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	var walk func(*ast.Node)
	walk = func(cur *ast.Node) {
		if cur == nil || cur.Kind == ast.FUNCTION {
			return
		}
		if cur.Kind == ast.GOTO {
			out = append(out, cur)
		}
		for _, child := range cur.Children() {
			walk(child)
		}
	}
	for _, child := range n.Children() {
		walk(child)
	}
	return out
}
