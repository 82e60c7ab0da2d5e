// # internal/cst/node.go
package cst

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node is a lightweight handle on one syntax tree node. The zero value is
// invalid; every accessor that may fail returns an ok flag instead.
type Node struct {
	file  *File
	inner *sitter.Node
}

func (n Node) Kind() Kind {
	return kindOf(n.inner.Kind())
}

// GrammarKind exposes the raw grammar kind string, mainly for logging.
func (n Node) GrammarKind() string {
	return n.inner.Kind()
}

func (n Node) Text() string {
	return string(n.file.Source[n.inner.StartByte():n.inner.EndByte()])
}

func (n Node) StartByte() uint {
	return n.inner.StartByte()
}

func (n Node) EndByte() uint {
	return n.inner.EndByte()
}

// Line is the 1-based line of the node's first byte.
func (n Node) Line() int {
	return int(n.inner.StartPosition().Row) + 1
}

func (n Node) ChildCount() uint {
	return n.inner.ChildCount()
}

func (n Node) Child(i uint) Node {
	return Node{file: n.file, inner: n.inner.Child(i)}
}

func (n Node) NamedChildCount() uint {
	return n.inner.NamedChildCount()
}

func (n Node) NamedChild(i uint) Node {
	return Node{file: n.file, inner: n.inner.NamedChild(i)}
}

func (n Node) Field(name string) (Node, bool) {
	child := n.inner.ChildByFieldName(name)
	if child == nil {
		return Node{}, false
	}
	return Node{file: n.file, inner: child}, true
}

func (n Node) Parent() (Node, bool) {
	p := n.inner.Parent()
	if p == nil {
		return Node{}, false
	}
	return Node{file: n.file, inner: p}, true
}

func (n Node) PrevSibling() (Node, bool) {
	s := n.inner.PrevSibling()
	if s == nil {
		return Node{}, false
	}
	return Node{file: n.file, inner: s}, true
}

// FirstBodyStatement returns the first non-comment statement of a function
// or class definition body, if any.
func (n Node) FirstBodyStatement() (Node, bool) {
	body, ok := n.Field("body")
	if !ok {
		return Node{}, false
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child.Kind() == KindComment {
			continue
		}
		return child, true
	}
	return Node{}, false
}

// Docstring returns the string literal serving as the definition's
// docstring: the first body statement when it is a bare string expression.
func (n Node) Docstring() (Node, bool) {
	first, ok := n.FirstBodyStatement()
	if !ok || first.Kind() != KindExpressionStatement {
		return Node{}, false
	}
	if first.NamedChildCount() != 1 {
		return Node{}, false
	}
	expr := first.NamedChild(0)
	if expr.Kind() != KindString {
		return Node{}, false
	}
	return expr, true
}
