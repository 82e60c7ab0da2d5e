// # internal/audit/decorator.go
package audit

import (
	"strings"

	"geninfo/internal/cst"
)

// IgnoreMarker is the single-line comment that exempts one command from the
// missing-docstring check. Matched byte for byte.
const IgnoreMarker = "# geninfo-ignore: missing-docstring"

// commandKeys are the decorator match keys that make a function command-like.
// Exact match only; nothing else is ever treated as a command decorator.
var commandKeys = map[string]bool{
	"command": true,
	"group":   true,
}

// decoratorMatchKey reduces one decorator to its match key. A dotted target
// drops its first segment (the receiver, either a library alias or a parent
// group) and joins the rest without separator; a bare name stands as-is.
// Unrecognized decorator shapes produce an empty key.
func decoratorMatchKey(deco cst.Node) string {
	if deco.NamedChildCount() == 0 {
		return ""
	}
	expr := deco.NamedChild(0)
	if expr.Kind() == cst.KindCall {
		fn, ok := expr.Field("function")
		if !ok {
			return ""
		}
		expr = fn
	}

	switch expr.Kind() {
	case cst.KindIdentifier:
		return expr.Text()
	case cst.KindAttribute:
		segments := attributeSegments(expr)
		if len(segments) < 2 {
			return ""
		}
		return strings.Join(segments[1:], "")
	default:
		return ""
	}
}

func attributeSegments(attr cst.Node) []string {
	object, okObj := attr.Field("object")
	name, okName := attr.Field("attribute")
	if !okObj || !okName {
		return nil
	}

	var head []string
	switch object.Kind() {
	case cst.KindIdentifier:
		head = []string{object.Text()}
	case cst.KindAttribute:
		head = attributeSegments(object)
	default:
		return nil
	}
	if head == nil {
		return nil
	}
	return append(head, name.Text())
}

// isCommandLike reports whether a decorated definition carries a command or
// group decorator.
func isCommandLike(decorated cst.Node) bool {
	for i := uint(0); i < decorated.NamedChildCount(); i++ {
		child := decorated.NamedChild(i)
		if child.Kind() != cst.KindDecorator {
			continue
		}
		if commandKeys[decoratorMatchKey(child)] {
			return true
		}
	}
	return false
}

// hasIgnoreMarker checks the leading trivia of the decorated definition for
// the exemption comment.
func hasIgnoreMarker(decorated cst.Node) bool {
	return decorated.HasLeadingComment(IgnoreMarker)
}
