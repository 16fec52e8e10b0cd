package cmd

import (
	"fmt"
	"os"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/compiler"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/go-as2js/as2js/internal/parser"
	"github.com/spf13/cobra"
)

var compileDumpAST bool

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Lex, parse, and run the semantic pass over an as2js file",
	Long: `Compile runs the full front-end pipeline over a script: lexing,
parsing, and the semantic pass that resolves identifiers and member
access, rewrites overloaded operators, and links goto statements to
their labels.

It reports every diagnostic the pipeline produces and exits non-zero if
any stage reported an error. There is no code generation stage: this
front-end does not emit JavaScript or execute the script.`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().BoolVar(&compileDumpAST, "dump-ast", false, "dump the decorated node tree after compiling")
}

func compileScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	var diags []diag.Diagnostic
	ctx := diag.NewContext()
	ctx.SetCallback(func(d diag.Diagnostic) { diags = append(diags, d) })

	opts := options.New()
	l := lexer.New(filename, content, opts, lexer.WithDiagnostics(ctx))
	root := parser.New(l, opts, ctx).Parse()

	if !ctx.HasErrors() {
		c := compiler.New(opts, ctx)
		c.Compile(root)
	}

	for _, d := range diags {
		fmt.Fprint(os.Stderr, diag.Format(d, source, false))
	}

	if ctx.HasErrors() {
		return fmt.Errorf("compilation failed with %d error(s)", ctx.Errors())
	}

	if compileDumpAST {
		fmt.Print(ast.Dump(root))
	} else if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d warning(s), 0 error(s)\n", filename, ctx.Warnings())
	} else {
		fmt.Printf("%s: compiled cleanly\n", filename)
	}
	return nil
}
