package ast

import (
	"fmt"
	"strings"
)

// Dump renders n and its subtree in the node pretty-printer's stable
// textual format (§4.4), which the parser fixture harness (§8.4) and the
// go-snaps-based tests in internal/parser are built on:
//
//	N<seq>: <indent><prefix>#<kind-code>: <kind>[ = '<char>'][ <payload>][ flags][ attrs] (<pos>)
//	  instance: ...
//	  type node: ...
//	  attribute node: ...
//	  goto exit: ...
//	  goto enter: ...
//	  children:
//	    ...
//
// A sequential id (N0, N1, ...) stands in for the original's raw node
// address: addresses are not reproducible across Go processes (nor, in
// practice, diffable in a snapshot test), while a traversal-order id is
// both deterministic and still lets a reader see that two link references
// point at the same node.
func Dump(root *Node) string {
	var sb strings.Builder
	d := &dumper{out: &sb, ids: map[*Node]int{}}
	d.dump(root, 0, "")
	return sb.String()
}

type dumper struct {
	out  *strings.Builder
	ids  map[*Node]int
	next int
}

func (d *dumper) idFor(n *Node) int {
	if id, ok := d.ids[n]; ok {
		return id
	}
	id := d.next
	d.ids[n] = id
	d.next++
	return id
}

func (d *dumper) dump(n *Node, depth int, prefix string) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(d.out, "N%d: %s%s%s: %s", d.idFor(n), indent, prefix, kindCode(n.Kind), n.Kind.String())

	if n.payloadKind != payloadNone {
		fmt.Fprintf(d.out, " %s", d.payloadText(n))
	}
	if flagText := d.flagsText(n); flagText != "" {
		fmt.Fprintf(d.out, " %s", flagText)
	}
	if attrText := d.attributesText(n); attrText != "" {
		fmt.Fprintf(d.out, " %s", attrText)
	}
	fmt.Fprintf(d.out, " (%s)\n", n.Pos.String())

	linkIndent := strings.Repeat("  ", depth+1)
	d.dumpLink(n.links.Instance, depth+1, linkIndent, "instance")
	d.dumpLink(n.links.Type, depth+1, linkIndent, "type node")
	d.dumpLink(n.links.Attributes, depth+1, linkIndent, "attribute node")
	d.dumpLink(n.links.GotoExit, depth+1, linkIndent, "goto exit")
	d.dumpLink(n.links.GotoEnter, depth+1, linkIndent, "goto enter")

	if len(n.labels) > 0 {
		fmt.Fprintf(d.out, "%slabels:\n", linkIndent)
		for name, lbl := range n.labels {
			fmt.Fprintf(d.out, "%s  %s ->\n", linkIndent, name)
			d.dump(lbl, depth+3, ":")
		}
	}

	if len(n.variables) > 0 {
		fmt.Fprintf(d.out, "%svariables:\n", linkIndent)
		for _, v := range n.variables {
			d.dump(v, depth+2, "=")
		}
	}

	if len(n.children) > 0 {
		fmt.Fprintf(d.out, "%schildren:\n", linkIndent)
		for _, c := range n.children {
			d.dump(c, depth+2, "")
		}
	}
}

func (d *dumper) dumpLink(target *Node, depth int, indent, label string) {
	if target == nil {
		return
	}
	fmt.Fprintf(d.out, "%s%s:\n", indent, label)
	d.dump(target, depth+1, "-")
}

func (d *dumper) payloadText(n *Node) string {
	switch n.payloadKind {
	case payloadString:
		if len(n.str) == 1 {
			return fmt.Sprintf("= '%s' %q", n.str, n.str)
		}
		return fmt.Sprintf("%q", n.str)
	case payloadInteger:
		return fmt.Sprintf("%d", n.intVal.Get())
	case payloadFloat:
		return fmt.Sprintf("%g", n.floatVal.Get())
	default:
		return ""
	}
}

func (d *dumper) flagsText(n *Node) string {
	var names []string
	for f := Flag(0); f < flagCount; f++ {
		if flagAllowedOn(f, n.Kind) && n.flags.has(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ",") + "]"
}

func (d *dumper) attributesText(n *Node) string {
	var names []string
	for a := Attribute(0); a < attributeCount; a++ {
		if n.attributes.has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "{" + strings.Join(names, ",") + "}"
}

// kindCode returns a short numeric-looking code for the kind, the way the
// original dumper prefixes every line with the raw enum value alongside
// its symbolic name.
func kindCode(k Kind) string {
	return fmt.Sprintf("#%03d", int(k))
}
