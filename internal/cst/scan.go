// # internal/cst/scan.go
package cst

import "iter"

// Scan lazily yields every node of the target kind found by a pre-order walk
// of root's children. A child is always tested against target; the walk
// descends into a child only when its kind is in boundary, so the boundary
// set decides how deep matches are searched (Containers crosses into
// function/class bodies, ModuleScope stops at their edge).
//
// The sequence is finite and forward-only. It is not safe to resume after
// the underlying file has been mutated; materialize what you need before
// mutating, or re-issue the scan against a freshly parsed file.
func Scan(root Node, target Kind, boundary KindSet) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		scanChildren(root, target, boundary, yield)
	}
}

func scanChildren(n Node, target Kind, boundary KindSet, yield func(Node) bool) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		kind := child.Kind()
		if kind == target {
			if !yield(child) {
				return false
			}
		}
		if boundary.Has(kind) {
			if !scanChildren(child, target, boundary, yield) {
				return false
			}
		}
	}
	return true
}

// First returns the first node matched by Scan, if any.
func First(root Node, target Kind, boundary KindSet) (Node, bool) {
	for n := range Scan(root, target, boundary) {
		return n, true
	}
	return Node{}, false
}
