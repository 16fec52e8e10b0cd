package ast

// SetFlag sets or clears flag on n. Setting a flag unsupported by n's Kind
// raises INTERNAL_ERROR (§3.3 "programmer error").
func (n *Node) SetFlag(flag Flag, value bool) {
	if !flagAllowedOn(flag, n.Kind) {
		internalErrorf("flag %s is not valid on node type %q", flag.String(), n.Kind.String())
	}
	n.flags.set(flag, value)
}

// GetFlag reports whether flag is set on n, raising INTERNAL_ERROR if flag
// is not valid for n's Kind.
func (n *Node) GetFlag(flag Flag) bool {
	if !flagAllowedOn(flag, n.Kind) {
		internalErrorf("flag %s is not valid on node type %q", flag.String(), n.Kind.String())
	}
	return n.flags.has(flag)
}

// SetAttribute sets or clears attribute on n.
//
// Setting TYPE on a node whose Kind is outside the fixed TYPE-bearing list
// raises INTERNAL_ERROR. Setting an attribute that conflicts with one
// already set (per the conflict groups in §3.3.3) leaves the earlier
// attribute unchanged, records nothing, and returns false; the caller is
// expected to emit an INVALID_ATTRIBUTES diagnostic.
func (n *Node) SetAttribute(attr Attribute, value bool) bool {
	if attr == TypeAttr && !typeAttributeKinds[n.Kind] {
		internalErrorf("attribute TYPE is not valid on node type %q", n.Kind.String())
	}

	if value {
		for _, other := range conflictsWith(attr) {
			if n.attributes.has(other) {
				return false
			}
		}
	}

	n.attributes.set(attr, value)
	return true
}

// GetAttribute reports whether attr is set on n.
func (n *Node) GetAttribute(attr Attribute) bool {
	if attr == TypeAttr && !typeAttributeKinds[n.Kind] {
		internalErrorf("attribute TYPE is not valid on node type %q", n.Kind.String())
	}
	return n.attributes.has(attr)
}
