// Package compiler implements the post-parse semantic pass (component G): a
// tree walk that decorates the parser's output with instance/type links,
// rewrites overloaded operators against user-class definitions, links goto
// statements to their labels, and reports the closed set of compiler
// diagnostics (§4.7). Apart from populating links, its only tree change is
// an operator rewrite: the operator node is replaced by a newly built node
// in the same slot of its parent, and the operator's operands are moved
// under that new node.
package compiler

import (
	"io"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/rconfig"
	"github.com/go-as2js/as2js/internal/symboldb"
)

// Retriever opens an imported script by filename (§4.7.3). The default
// implementation resolves nothing, matching the "no imports resolvable"
// baseline a test fixture is expected to override.
type Retriever interface {
	Retrieve(filename string) (io.ReadCloser, error)
}

type nullRetriever struct{}

func (nullRetriever) Retrieve(filename string) (io.ReadCloser, error) { return nil, nil }

// Compiler holds everything one compile pass needs beyond the tree itself:
// the dialect options the parser already consulted, the diagnostic sink,
// the loaded resource config, the symbol database, and the pluggable input
// retriever for imports.
type Compiler struct {
	opts      *options.Set
	diags     *diag.Context
	cfg       rconfig.Config
	db        *symboldb.DB
	retriever Retriever

	memberCache map[*ast.Node]map[string]*ast.Node
	tmpCounter  int
}

// New constructs a Compiler, loading the resource config and symbol
// database per §4.7.1/§4.7.2. A nil diags uses diag.Default.
func New(opts *options.Set, diags *diag.Context) *Compiler {
	if diags == nil {
		diags = diag.Default
	}
	cfg := rconfig.Load(diags)
	return &Compiler{
		opts:        opts,
		diags:       diags,
		cfg:         cfg,
		db:          symboldb.Load(cfg.DB, diags),
		retriever:   nullRetriever{},
		memberCache: make(map[*ast.Node]map[string]*ast.Node),
	}
}

// SetRetriever installs a non-default import resolver, e.g. a test fixture
// serving fixed file contents.
func (c *Compiler) SetRetriever(r Retriever) {
	if r == nil {
		r = nullRetriever{}
	}
	c.retriever = r
}

// DB returns the loaded symbol database, so a caller can Save it back after
// the pass records newly-seen top-level declarations.
func (c *Compiler) DB() *symboldb.DB { return c.db }

// Compile decorates root in place and returns the number of ERROR/FATAL
// diagnostics the pass itself produced. A return of 0 means the tree is
// fully decorated and every invariant of §3.3 holds (§4.7.6).
func (c *Compiler) Compile(root *ast.Node) int {
	before := c.diags.Errors()

	if root == nil || root.Kind != ast.ROOT || root.ChildCount() == 0 {
		return c.diags.Errors() - before
	}
	program := root.Children()[0]
	scopes := []*ast.Node{program}

	c.walk(program, scopes)
	c.recordTopLevelDeclarations(program)

	return c.diags.Errors() - before
}

// recordTopLevelDeclarations adds every direct child of program that
// declName names (class, interface, function, enum, namespace) to the
// symbol database, under the package named by the most recent PACKAGE
// directive before it (or "" before any), so a later compile of a sibling
// file can find them (§4.7.2 "elements may be added at pass end").
// Declarations inside a braced package body are not visited.
func (c *Compiler) recordTopLevelDeclarations(program *ast.Node) {
	pkgName := ""
	for _, child := range program.Children() {
		if child.Kind == ast.PACKAGE {
			pkgName = child.GetString()
			continue
		}
		name, ok := declName(child)
		if !ok {
			continue
		}
		c.db.Add(pkgName, name, symboldb.Element{
			Type:     child.Kind.String(),
			Filename: child.Pos.Filename,
			Line:     child.Pos.Line,
		})
	}
}
