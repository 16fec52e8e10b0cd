package ast

// Attribute is one member of the closed attribute enumeration (§3.3.3).
// Unlike a Flag, an attribute may be inherited from an enclosing scope via
// the `attributes` link and is subject to mutual-exclusion checks.
type Attribute int

const (
	Public Attribute = iota
	Private
	Protected
	Internal
	Transient
	Volatile
	Static
	Abstract
	Virtual
	Array
	RequireElse
	EnsureThen
	Native
	Deprecated
	Unsafe
	Constructor
	Final
	Enumerable
	True
	False
	Unused
	Dynamic
	Foreach
	NoBreak
	AutoBreak
	Defined
	TypeAttr

	attributeCount
)

var attributeNames = [...]string{
	Public:      "PUBLIC",
	Private:     "PRIVATE",
	Protected:   "PROTECTED",
	Internal:    "INTERNAL",
	Transient:   "TRANSIENT",
	Volatile:    "VOLATILE",
	Static:      "STATIC",
	Abstract:    "ABSTRACT",
	Virtual:     "VIRTUAL",
	Array:       "ARRAY",
	RequireElse: "REQUIRE_ELSE",
	EnsureThen:  "ENSURE_THEN",
	Native:      "NATIVE",
	Deprecated:  "DEPRECATED",
	Unsafe:      "UNSAFE",
	Constructor: "CONSTRUCTOR",
	Final:       "FINAL",
	Enumerable:  "ENUMERABLE",
	True:        "TRUE",
	False:       "FALSE",
	Unused:      "UNUSED",
	Dynamic:     "DYNAMIC",
	Foreach:     "FOREACH",
	NoBreak:     "NOBREAK",
	AutoBreak:   "AUTOBREAK",
	Defined:     "DEFINED",
	TypeAttr:    "TYPE",
}

func (a Attribute) String() string {
	if a >= 0 && int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "UNKNOWN_ATTRIBUTE"
}

// conflictGroups lists the mutually-exclusive attribute sets from §3.3.3.
// Setting an attribute already in conflict with one that is set fails with
// INVALID_ATTRIBUTES and leaves the earlier attribute untouched.
var conflictGroups = [][]Attribute{
	{Public, Private, Protected},
	{Abstract, Static, Virtual, Final},
	{True, False},
	{Foreach, NoBreak, AutoBreak},
	{RequireElse, EnsureThen},
	{Native, Unsafe},
}

func conflictsWith(a Attribute) []Attribute {
	for _, group := range conflictGroups {
		for _, member := range group {
			if member == a {
				var rest []Attribute
				for _, other := range group {
					if other != a {
						rest = append(rest, other)
					}
				}
				return rest
			}
		}
	}
	return nil
}

// typeAttributeKinds lists the Kinds on which Attribute TYPE may be
// queried/set — the fixed sub-list the spec calls out as
// "g_node_types_support_type". Any other kind raises INTERNAL_ERROR.
var typeAttributeKinds = map[Kind]bool{
	IDENTIFIER:  true,
	VIDENTIFIER: true,
	VARIABLE:    true,
	PARAM:       true,
	FUNCTION:    true,
	CLASS:       true,
}

type attributeSet uint64

func (s attributeSet) has(a Attribute) bool { return s&(1<<uint(a)) != 0 }
func (s *attributeSet) set(a Attribute, v bool) {
	if v {
		*s |= 1 << uint(a)
	} else {
		*s &^= 1 << uint(a)
	}
}
