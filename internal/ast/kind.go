// Package ast implements the uniform AST node described by §3.3: a single
// node type carrying a closed-enumeration type tag, a kind-restricted
// payload slot, children, links, flags and attributes — rather than one Go
// type per grammar production. The type tag doubles as both the lexer's
// token kind and the parser's structural-construct kind: identifier and
// literal tokens are reused in place as tree nodes, and an operator node
// such as ADD carries the same Kind as the `+` token it is built from.
package ast

// Kind is the closed enumeration of node type tags: one per token kind,
// operator, and structural construct (§3.3).
type Kind int

const (
	// Special
	ILLEGAL Kind = iota
	EOF

	// Literals and identifiers
	IDENTIFIER
	VIDENTIFIER
	STRING
	INTEGER
	FLOATING_POINT
	REGULAR_EXPRESSION
	TRUE
	FALSE
	NULL
	UNDEFINED
	THIS
	SUPER

	// Template literals
	TEMPLATE_LITERAL
	TEMPLATE_STRING

	// Structural / containers
	ROOT
	PROGRAM
	DIRECTIVE_LIST
	ATTRIBUTES
	PARAM
	PARAM_MATCH
	VAR_ATTRIBUTES
	LABEL

	// Declarations
	PACKAGE
	NAMESPACE
	IMPORT
	CLASS
	INTERFACE
	ENUM
	ENUM_VALUE
	FUNCTION
	VAR
	VARIABLE

	// Array/object/literal constructs
	ARRAY_LITERAL
	OBJECT_LITERAL
	OBJECT_PROPERTY

	// Statements
	IF
	ELSE
	WHILE
	DO
	FOR
	FOR_IN
	FOR_EACH
	SWITCH
	CASE
	DEFAULT
	TRY
	CATCH
	FINALLY
	THROW
	RETURN
	BREAK
	CONTINUE
	GOTO
	WITH
	DEBUGGER

	// Postfix / call / member
	CALL
	INDEX
	MEMBER
	SCOPE
	POSTFIX_INCREMENT
	POSTFIX_DECREMENT

	// Prefix / unary
	LOGICAL_NOT
	BITWISE_NOT
	UNARY_PLUS
	UNARY_MINUS
	PREFIX_INCREMENT
	PREFIX_DECREMENT
	TYPEOF
	DELETE
	VOID
	NEW

	// Multiplicative / additive / power
	ADD
	SUBTRACT
	MULTIPLY
	DIVIDE
	MODULO
	POWER

	// Shift / rotate
	SHIFT_LEFT
	SHIFT_RIGHT
	SHIFT_RIGHT_UNSIGNED
	ROTATE_LEFT
	ROTATE_RIGHT

	// Relational
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	MIN // <?
	MAX // >?
	IS
	AS
	IN
	INSTANCEOF
	MATCH     // ~=
	NOT_MATCH // !~

	// Equality
	EQUAL
	NOT_EQUAL
	STRICT_EQUAL
	STRICT_NOT_EQUAL
	COMPARE     // <=>
	SMART_MATCH // ~~

	// Bitwise / logical
	BITWISE_AND
	BITWISE_OR
	BITWISE_XOR
	LOGICAL_AND
	LOGICAL_OR
	LOGICAL_XOR

	// Range / rest
	RANGE
	REST

	// Conditional / comma
	CONDITIONAL
	COMMA

	// Assignment
	ASSIGNMENT
	ASSIGNMENT_ADD
	ASSIGNMENT_SUBTRACT
	ASSIGNMENT_MULTIPLY
	ASSIGNMENT_DIVIDE
	ASSIGNMENT_MODULO
	ASSIGNMENT_POWER
	ASSIGNMENT_SHIFT_LEFT
	ASSIGNMENT_SHIFT_RIGHT
	ASSIGNMENT_SHIFT_RIGHT_UNSIGNED
	ASSIGNMENT_ROTATE_LEFT
	ASSIGNMENT_ROTATE_RIGHT
	ASSIGNMENT_BITWISE_AND
	ASSIGNMENT_BITWISE_OR
	ASSIGNMENT_BITWISE_XOR
	ASSIGNMENT_LOGICAL_AND
	ASSIGNMENT_LOGICAL_OR
	ASSIGNMENT_LOGICAL_XOR
	ASSIGNMENT_MIN
	ASSIGNMENT_MAX

	// Keyword-only tokens. These never become their own tree node: the
	// parser consumes them directly into an attribute bit, a type-name
	// string, or a pragma/synthetic-literal value and discards the token.
	ABSTRACT
	IMPLEMENTS
	EXPORT
	EXTENDS
	PUBLIC
	PRIVATE
	PROTECTED
	STATIC
	FINAL
	THROWS
	USE
	ENSURE
	INVARIANT
	REQUIRE
	NATIVE
	INLINE
	TRANSIENT
	VOLATILE
	SYNCHRONIZED
	THEN
	BYTE
	CHAR
	SHORT
	LONG
	FLOAT
	DOUBLE
	BOOLEAN
	YIELD
	LINE_KEYWORD
	FILE_KEYWORD

	// Punctuation-only tokens. Grouping/separator characters that never
	// survive into the tree as their own node; the parser consumes them
	// while building the surrounding construct.
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	SEMICOLON
	COLON
	QUESTION
	INCREMENT
	DECREMENT

	kindCount
)

var kindNames = [...]string{
	ILLEGAL:                         "ILLEGAL",
	EOF:                             "EOF",
	IDENTIFIER:                      "IDENTIFIER",
	VIDENTIFIER:                     "VIDENTIFIER",
	STRING:                          "STRING",
	INTEGER:                         "INTEGER",
	FLOATING_POINT:                  "FLOATING_POINT",
	REGULAR_EXPRESSION:              "REGULAR_EXPRESSION",
	TRUE:                            "TRUE",
	FALSE:                           "FALSE",
	NULL:                            "NULL",
	UNDEFINED:                       "UNDEFINED",
	THIS:                            "THIS",
	SUPER:                           "SUPER",
	TEMPLATE_LITERAL:                "TEMPLATE_LITERAL",
	TEMPLATE_STRING:                 "TEMPLATE_STRING",
	ROOT:                            "ROOT",
	PROGRAM:                         "PROGRAM",
	DIRECTIVE_LIST:                  "DIRECTIVE_LIST",
	ATTRIBUTES:                      "ATTRIBUTES",
	PARAM:                           "PARAM",
	PARAM_MATCH:                     "PARAM_MATCH",
	VAR_ATTRIBUTES:                  "VAR_ATTRIBUTES",
	LABEL:                           "LABEL",
	PACKAGE:                         "PACKAGE",
	NAMESPACE:                       "NAMESPACE",
	IMPORT:                          "IMPORT",
	CLASS:                           "CLASS",
	INTERFACE:                       "INTERFACE",
	ENUM:                            "ENUM",
	ENUM_VALUE:                      "ENUM_VALUE",
	FUNCTION:                        "FUNCTION",
	VAR:                             "VAR",
	VARIABLE:                        "VARIABLE",
	ARRAY_LITERAL:                   "ARRAY_LITERAL",
	OBJECT_LITERAL:                  "OBJECT_LITERAL",
	OBJECT_PROPERTY:                 "OBJECT_PROPERTY",
	IF:                              "IF",
	ELSE:                            "ELSE",
	WHILE:                           "WHILE",
	DO:                              "DO",
	FOR:                             "FOR",
	FOR_IN:                          "FOR_IN",
	FOR_EACH:                        "FOR_EACH",
	SWITCH:                          "SWITCH",
	CASE:                            "CASE",
	DEFAULT:                         "DEFAULT",
	TRY:                             "TRY",
	CATCH:                           "CATCH",
	FINALLY:                         "FINALLY",
	THROW:                           "THROW",
	RETURN:                          "RETURN",
	BREAK:                           "BREAK",
	CONTINUE:                        "CONTINUE",
	GOTO:                            "GOTO",
	WITH:                            "WITH",
	DEBUGGER:                        "DEBUGGER",
	CALL:                            "CALL",
	INDEX:                           "INDEX",
	MEMBER:                          "MEMBER",
	SCOPE:                           "SCOPE",
	POSTFIX_INCREMENT:               "POSTFIX_INCREMENT",
	POSTFIX_DECREMENT:               "POSTFIX_DECREMENT",
	LOGICAL_NOT:                     "LOGICAL_NOT",
	BITWISE_NOT:                     "BITWISE_NOT",
	UNARY_PLUS:                      "UNARY_PLUS",
	UNARY_MINUS:                     "UNARY_MINUS",
	PREFIX_INCREMENT:                "PREFIX_INCREMENT",
	PREFIX_DECREMENT:                "PREFIX_DECREMENT",
	TYPEOF:                          "TYPEOF",
	DELETE:                          "DELETE",
	VOID:                            "VOID",
	NEW:                             "NEW",
	ADD:                             "ADD",
	SUBTRACT:                        "SUBTRACT",
	MULTIPLY:                        "MULTIPLY",
	DIVIDE:                          "DIVIDE",
	MODULO:                          "MODULO",
	POWER:                           "POWER",
	SHIFT_LEFT:                      "SHIFT_LEFT",
	SHIFT_RIGHT:                     "SHIFT_RIGHT",
	SHIFT_RIGHT_UNSIGNED:            "SHIFT_RIGHT_UNSIGNED",
	ROTATE_LEFT:                     "ROTATE_LEFT",
	ROTATE_RIGHT:                    "ROTATE_RIGHT",
	LESS:                            "LESS",
	LESS_EQUAL:                      "LESS_EQUAL",
	GREATER:                         "GREATER",
	GREATER_EQUAL:                   "GREATER_EQUAL",
	MIN:                             "MIN",
	MAX:                             "MAX",
	IS:                              "IS",
	AS:                              "AS",
	IN:                              "IN",
	INSTANCEOF:                      "INSTANCEOF",
	MATCH:                           "MATCH",
	NOT_MATCH:                       "NOT_MATCH",
	EQUAL:                           "EQUAL",
	NOT_EQUAL:                       "NOT_EQUAL",
	STRICT_EQUAL:                    "STRICT_EQUAL",
	STRICT_NOT_EQUAL:                "STRICT_NOT_EQUAL",
	COMPARE:                         "COMPARE",
	SMART_MATCH:                     "SMART_MATCH",
	BITWISE_AND:                     "BITWISE_AND",
	BITWISE_OR:                      "BITWISE_OR",
	BITWISE_XOR:                     "BITWISE_XOR",
	LOGICAL_AND:                     "LOGICAL_AND",
	LOGICAL_OR:                      "LOGICAL_OR",
	LOGICAL_XOR:                     "LOGICAL_XOR",
	RANGE:                           "RANGE",
	REST:                            "REST",
	CONDITIONAL:                     "CONDITIONAL",
	COMMA:                           "COMMA",
	ASSIGNMENT:                      "ASSIGNMENT",
	ASSIGNMENT_ADD:                  "ASSIGNMENT_ADD",
	ASSIGNMENT_SUBTRACT:             "ASSIGNMENT_SUBTRACT",
	ASSIGNMENT_MULTIPLY:             "ASSIGNMENT_MULTIPLY",
	ASSIGNMENT_DIVIDE:               "ASSIGNMENT_DIVIDE",
	ASSIGNMENT_MODULO:               "ASSIGNMENT_MODULO",
	ASSIGNMENT_POWER:                "ASSIGNMENT_POWER",
	ASSIGNMENT_SHIFT_LEFT:           "ASSIGNMENT_SHIFT_LEFT",
	ASSIGNMENT_SHIFT_RIGHT:          "ASSIGNMENT_SHIFT_RIGHT",
	ASSIGNMENT_SHIFT_RIGHT_UNSIGNED: "ASSIGNMENT_SHIFT_RIGHT_UNSIGNED",
	ASSIGNMENT_ROTATE_LEFT:          "ASSIGNMENT_ROTATE_LEFT",
	ASSIGNMENT_ROTATE_RIGHT:         "ASSIGNMENT_ROTATE_RIGHT",
	ASSIGNMENT_BITWISE_AND:          "ASSIGNMENT_BITWISE_AND",
	ASSIGNMENT_BITWISE_OR:           "ASSIGNMENT_BITWISE_OR",
	ASSIGNMENT_BITWISE_XOR:          "ASSIGNMENT_BITWISE_XOR",
	ASSIGNMENT_LOGICAL_AND:          "ASSIGNMENT_LOGICAL_AND",
	ASSIGNMENT_LOGICAL_OR:           "ASSIGNMENT_LOGICAL_OR",
	ASSIGNMENT_LOGICAL_XOR:          "ASSIGNMENT_LOGICAL_XOR",
	ASSIGNMENT_MIN:                  "ASSIGNMENT_MIN",
	ASSIGNMENT_MAX:                  "ASSIGNMENT_MAX",
	ABSTRACT:                        "ABSTRACT",
	IMPLEMENTS:                      "IMPLEMENTS",
	EXPORT:                          "EXPORT",
	EXTENDS:                         "EXTENDS",
	PUBLIC:                          "PUBLIC",
	PRIVATE:                         "PRIVATE",
	PROTECTED:                       "PROTECTED",
	STATIC:                          "STATIC",
	FINAL:                           "FINAL",
	THROWS:                          "THROWS",
	USE:                             "USE",
	ENSURE:                          "ENSURE",
	INVARIANT:                       "INVARIANT",
	REQUIRE:                         "REQUIRE",
	NATIVE:                          "NATIVE",
	INLINE:                          "INLINE",
	TRANSIENT:                       "TRANSIENT",
	VOLATILE:                        "VOLATILE",
	SYNCHRONIZED:                    "SYNCHRONIZED",
	THEN:                            "THEN",
	BYTE:                            "BYTE",
	CHAR:                            "CHAR",
	SHORT:                           "SHORT",
	LONG:                            "LONG",
	FLOAT:                           "FLOAT",
	DOUBLE:                          "DOUBLE",
	BOOLEAN:                         "BOOLEAN",
	YIELD:                           "YIELD",
	LINE_KEYWORD:                    "LINE_KEYWORD",
	FILE_KEYWORD:                    "FILE_KEYWORD",
	LPAREN:                          "LPAREN",
	RPAREN:                          "RPAREN",
	LBRACKET:                        "LBRACKET",
	RBRACKET:                        "RBRACKET",
	LBRACE:                          "LBRACE",
	RBRACE:                          "RBRACE",
	SEMICOLON:                       "SEMICOLON",
	COLON:                           "COLON",
	QUESTION:                        "QUESTION",
	INCREMENT:                       "INCREMENT",
	DECREMENT:                       "DECREMENT",
}

// String returns the enumeration name, e.g. "ADD".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsAssignment reports whether k is one of the ASSIGNMENT_* family,
// including plain ASSIGNMENT.
func (k Kind) IsAssignment() bool {
	return k >= ASSIGNMENT && k <= ASSIGNMENT_MAX
}

// operatorSpellings maps an expression-operator Kind to the symbol a class
// would spell it with when declaring an operator overload (e.g. `function
// +(rhs)`), per §4.7.4/§4.7.5. Shared between the parser (which accepts
// these spellings as function names) and the compiler (which looks an
// overload up by the operator node it is rewriting).
var operatorSpellings = map[Kind]string{
	ADD: "+", SUBTRACT: "-", MULTIPLY: "*", DIVIDE: "/", MODULO: "%", POWER: "**",
	EQUAL: "==", STRICT_EQUAL: "===", NOT_EQUAL: "!=", STRICT_NOT_EQUAL: "!==",
	LESS: "<", LESS_EQUAL: "<=", GREATER: ">", GREATER_EQUAL: ">=",
	COMPARE: "<=>", SMART_MATCH: "~~", MATCH: "~=", NOT_MATCH: "!~",
	LOGICAL_NOT: "!", BITWISE_NOT: "~",
	BITWISE_AND: "&", BITWISE_OR: "|", BITWISE_XOR: "^",
	MIN: "<?", MAX: ">?",
	PREFIX_INCREMENT: "++x", POSTFIX_INCREMENT: "x++",
	PREFIX_DECREMENT: "--x", POSTFIX_DECREMENT: "x--",
	// Raw lexer tokens: the ++/-- seen ahead of a function name in an
	// overload declaration (`function ++(a)`) has no prefix/postfix
	// distinction until the parser builds a PREFIX_INCREMENT/
	// POSTFIX_INCREMENT node around a use of it.
	INCREMENT: "++", DECREMENT: "--",
	ASSIGNMENT_ADD: "+=", ASSIGNMENT_SUBTRACT: "-=", ASSIGNMENT_MULTIPLY: "*=",
	ASSIGNMENT_DIVIDE: "/=", ASSIGNMENT_MODULO: "%=", ASSIGNMENT_POWER: "**=",
	ASSIGNMENT_SHIFT_LEFT: "<<=", ASSIGNMENT_SHIFT_RIGHT: ">>=",
	ASSIGNMENT_SHIFT_RIGHT_UNSIGNED: ">>>=",
	ASSIGNMENT_ROTATE_LEFT:          "<<<=",
	ASSIGNMENT_ROTATE_RIGHT:         ">>>>=",
	ASSIGNMENT_BITWISE_AND:          "&=",
	ASSIGNMENT_BITWISE_OR:           "|=",
	ASSIGNMENT_BITWISE_XOR:          "^=",
	ASSIGNMENT_LOGICAL_AND:          "&&=",
	ASSIGNMENT_LOGICAL_OR:           "||=",
	ASSIGNMENT_LOGICAL_XOR:          "^^=",
	ASSIGNMENT_MIN:                  "<?=",
	ASSIGNMENT_MAX:                  ">?=",
}

// OperatorSpelling returns the overload-function-name spelling for k, and
// whether k is an operator that can be overloaded at all.
func (k Kind) OperatorSpelling() (string, bool) {
	s, ok := operatorSpellings[k]
	return s, ok
}

