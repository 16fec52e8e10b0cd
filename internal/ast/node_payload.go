package ast

import "github.com/go-as2js/as2js/internal/numeric"

// SetString sets the string payload. Calling it on a node whose Kind does
// not carry a string payload raises INTERNAL_ERROR (§3.3.1).
func (n *Node) SetString(value string) {
	n.requirePayload(payloadString, "set_string")
	n.str = value
	n.payloadKind = payloadString
}

// GetString returns the string payload. Calling it on a node whose Kind
// does not carry a string payload raises INTERNAL_ERROR, with the message
// format required by §8.3.
func (n *Node) GetString() string {
	n.requirePayload(payloadString, "get_string")
	return n.str
}

// SetInteger sets the Integer payload.
func (n *Node) SetInteger(value numeric.Integer) {
	n.requirePayload(payloadInteger, "set_integer")
	n.intVal = value
	n.payloadKind = payloadInteger
}

// GetInteger returns the Integer payload.
func (n *Node) GetInteger() numeric.Integer {
	n.requirePayload(payloadInteger, "get_integer")
	return n.intVal
}

// SetFloat sets the Float payload.
func (n *Node) SetFloat(value numeric.Float) {
	n.requirePayload(payloadFloat, "set_float")
	n.floatVal = value
	n.payloadKind = payloadFloat
}

// GetFloat returns the Float payload.
func (n *Node) GetFloat() numeric.Float {
	n.requirePayload(payloadFloat, "get_float")
	return n.floatVal
}

func (n *Node) requirePayload(want payloadKind, accessor string) {
	if payloadValidity[n.Kind] != want {
		internalErrorf("%s() called with non-%s node type: %q", accessor, payloadKindName(want), n.Kind.String())
	}
}

func payloadKindName(k payloadKind) string {
	switch k {
	case payloadString:
		return "string"
	case payloadInteger:
		return "integer"
	case payloadFloat:
		return "float"
	default:
		return "none"
	}
}
