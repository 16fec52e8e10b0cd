package cmd

import (
	"fmt"
	"os"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/lexer"
	"github.com/go-as2js/as2js/internal/options"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr  string
	showPos      bool
	showPayload  bool
	onlyErrors   bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an as2js file or expression",
	Long: `Tokenize (lex) an as2js program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
as2js source code is tokenized.

Examples:
  # Tokenize a script file
  as2js lex script.js

  # Tokenize an inline expression
  as2js lex -e "var x = 42;"

  # Show token payloads and positions
  as2js lex --show-payload --show-pos script.js

  # Show only illegal tokens
  as2js lex --only-errors script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:page-line)")
	lexCmd.Flags().BoolVar(&showPayload, "show-payload", false, "show token payload values")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input []byte
	filename := "<eval>"

	if lexEvalExpr != "" {
		input = []byte(lexEvalExpr)
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(input))
		fmt.Fprintln(os.Stderr, "---")
	}

	diags := diag.NewContext()
	opts := options.New()
	l := lexer.New(filename, input, opts, lexer.WithDiagnostics(diags))

	tokenCount := 0
	for {
		tok := l.GetNextToken()
		isIllegal := tok.Kind == ast.ILLEGAL

		if !onlyErrors || isIllegal {
			tokenCount++
			printToken(tok)
		}
		if tok.Kind == ast.EOF {
			break
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "---")
		fmt.Fprintf(os.Stderr, "Tokens printed: %d\n", tokenCount)
		fmt.Fprintf(os.Stderr, "Errors: %d\n", diags.Errors())
	}

	if diags.HasErrors() {
		return fmt.Errorf("lexing failed with %d error(s)", diags.Errors())
	}
	return nil
}

func printToken(tok *ast.Node) {
	output := tok.Kind.String()
	if showPayload {
		switch tok.Kind {
		case ast.IDENTIFIER, ast.VIDENTIFIER, ast.STRING, ast.REGULAR_EXPRESSION, ast.TEMPLATE_STRING:
			output += fmt.Sprintf(" %q", tok.GetString())
		case ast.INTEGER:
			output += fmt.Sprintf(" %d", tok.GetInteger().Get())
		case ast.FLOATING_POINT:
			output += fmt.Sprintf(" %g", tok.GetFloat().Get())
		}
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.PageLine)
	}
	fmt.Println(output)
}
