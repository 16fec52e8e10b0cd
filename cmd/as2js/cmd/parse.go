package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpression string
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse as2js source code and display the AST",
	Long: `Parse as2js source code and display its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full node-by-node tree instead of the pretty
printer's default one-line-per-node summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpression, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full node tree with links, flags, and attributes")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input []byte
	filename := "<eval>"

	switch {
	case parseExpression != "":
		input = []byte(parseExpression)
	case len(args) > 0:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = data
	default:
		filename = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = data
	}

	var source string
	var diags []diag.Diagnostic
	ctx := diag.NewContext()
	ctx.SetCallback(func(d diag.Diagnostic) { diags = append(diags, d) })
	source = string(input)

	opts := options.New()
	l := lexer.New(filename, input, opts, lexer.WithDiagnostics(ctx))
	root := parser.New(l, opts, ctx).Parse()

	for _, d := range diags {
		fmt.Fprint(os.Stderr, diag.Format(d, source, false))
	}
	if ctx.HasErrors() {
		return fmt.Errorf("parsing failed with %d error(s)", ctx.Errors())
	}

	if parseDumpAST {
		fmt.Print(ast.Dump(root))
	} else {
		printOutline(root, 0)
	}
	return nil
}

// printOutline prints one line per node (its kind only), a terser
// view than ast.Dump for a quick look at the tree's shape.
func printOutline(n *ast.Node, depth int) {
	if n == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%s\n", indent, n.Kind.String())
	for _, child := range n.Children() {
		printOutline(child, depth+1)
	}
}
