package lexer

import "github.com/go-as2js/as2js/internal/ast"

// keywords is the closed table from §4.5.7. Identifiers matching one of
// these names lex as the corresponding Kind instead of IDENTIFIER.
var keywords = map[string]ast.Kind{
	"var":          ast.VAR,
	"function":     ast.FUNCTION,
	"class":        ast.CLASS,
	"if":           ast.IF,
	"else":         ast.ELSE,
	"while":        ast.WHILE,
	"for":          ast.FOR,
	"return":       ast.RETURN,
	"this":         ast.THIS,
	"super":        ast.SUPER,
	"true":         ast.TRUE,
	"false":        ast.FALSE,
	"null":         ast.NULL,
	"undefined":    ast.UNDEFINED,
	"typeof":       ast.TYPEOF,
	"instanceof":   ast.INSTANCEOF,
	"new":          ast.NEW,
	"delete":       ast.DELETE,
	"void":         ast.VOID,
	"yield":        ast.YIELD,
	"abstract":     ast.ABSTRACT,
	"as":           ast.AS,
	"is":           ast.IS,
	"in":           ast.IN,
	"break":        ast.BREAK,
	"continue":     ast.CONTINUE,
	"goto":         ast.GOTO,
	"implements":   ast.IMPLEMENTS,
	"import":       ast.IMPORT,
	"export":       ast.EXPORT,
	"extends":      ast.EXTENDS,
	"interface":    ast.INTERFACE,
	"namespace":    ast.NAMESPACE,
	"package":      ast.PACKAGE,
	"public":       ast.PUBLIC,
	"private":      ast.PRIVATE,
	"protected":    ast.PROTECTED,
	"static":       ast.STATIC,
	"final":        ast.FINAL,
	"finally":      ast.FINALLY,
	"catch":        ast.CATCH,
	"throw":        ast.THROW,
	"throws":       ast.THROWS,
	"try":          ast.TRY,
	"do":           ast.DO,
	"switch":       ast.SWITCH,
	"case":         ast.CASE,
	"default":      ast.DEFAULT,
	"with":         ast.WITH,
	"use":          ast.USE,
	"enum":         ast.ENUM,
	"debugger":     ast.DEBUGGER,
	"ensure":       ast.ENSURE,
	"invariant":    ast.INVARIANT,
	"require":      ast.REQUIRE,
	"native":       ast.NATIVE,
	"inline":       ast.INLINE,
	"transient":    ast.TRANSIENT,
	"volatile":     ast.VOLATILE,
	"synchronized": ast.SYNCHRONIZED,
	"then":         ast.THEN,
	"byte":         ast.BYTE,
	"char":         ast.CHAR,
	"short":        ast.SHORT,
	"long":         ast.LONG,
	"float":        ast.FLOAT,
	"double":       ast.DOUBLE,
	"boolean":      ast.BOOLEAN,
	"Infinity":     ast.FLOATING_POINT,
	"NaN":          ast.FLOATING_POINT,
	"__LINE__":     ast.LINE_KEYWORD,
	"__FILE__":     ast.FILE_KEYWORD,
}

// LookupKeyword reports the Kind for a scanned identifier, or
// (ast.IDENTIFIER, false) when it is not a reserved word.
func LookupKeyword(text string) (ast.Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
