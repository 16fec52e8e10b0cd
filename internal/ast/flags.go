package ast

// Flag is a per-kind internal boolean, distinct from an Attribute: it
// records a structural fact the parser observed (e.g. "this FOR used the
// `in` form") rather than something inherited from an enclosing scope.
type Flag int

const (
	ForFlagIn Flag = iota
	FunctionFlagGetter
	FunctionFlagSetter
	IdentifierFlagTyped
	VariableFlagConst
	SwitchFlagDefault

	flagCount
)

var flagNames = [...]string{
	ForFlagIn:           "FOR_FLAG_IN",
	FunctionFlagGetter:  "FUNCTION_FLAG_GETTER",
	FunctionFlagSetter:  "FUNCTION_FLAG_SETTER",
	IdentifierFlagTyped: "IDENTIFIER_FLAG_TYPED",
	VariableFlagConst:   "VARIABLE_FLAG_CONST",
	SwitchFlagDefault:   "SWITCH_FLAG_DEFAULT",
}

func (f Flag) String() string {
	if f >= 0 && int(f) < len(flagNames) {
		return flagNames[f]
	}
	return "UNKNOWN_FLAG"
}

// flagValidity lists, per Flag, the Kinds allowed to carry it. A kind not
// listed here raises INTERNAL_ERROR on SetFlag/GetFlag (§3.3 "Setting a
// flag unsupported by the node's type is a programmer error").
var flagValidity = map[Flag][]Kind{
	ForFlagIn:           {FOR_IN, FOR_EACH},
	FunctionFlagGetter:  {FUNCTION},
	FunctionFlagSetter:  {FUNCTION},
	IdentifierFlagTyped: {IDENTIFIER, VIDENTIFIER},
	VariableFlagConst:   {VARIABLE},
	SwitchFlagDefault:   {SWITCH},
}

func flagAllowedOn(f Flag, k Kind) bool {
	for _, allowed := range flagValidity[f] {
		if allowed == k {
			return true
		}
	}
	return false
}

type flagSet uint64

func (s flagSet) has(f Flag) bool   { return s&(1<<uint(f)) != 0 }
func (s *flagSet) set(f Flag, v bool) {
	if v {
		*s |= 1 << uint(f)
	} else {
		*s &^= 1 << uint(f)
	}
}
