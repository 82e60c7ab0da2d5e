// # internal/cst/parser.go
package cst

import (
	"bytes"
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"geninfo/internal/errors"
)

var pythonLanguage = sitter.NewLanguage(tree_sitter_python.Language())

// File is one parsed source file. It owns the original bytes and the tree;
// both stay valid until Close. A File is owned by a single analysis run and
// must not be shared.
type File struct {
	Path   string
	Source []byte
	tree   *sitter.Tree
}

func Parse(path string, source []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(pythonLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeParse, "parse failed").WithContext(errors.CtxPath, path)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, errors.New(errors.CodeParse, "source is not syntactically valid").WithContext(errors.CtxPath, path)
	}

	return &File{Path: path, Source: source, tree: tree}, nil
}

func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnresolvedPath, fmt.Sprintf("cannot read %s", path))
	}
	return Parse(path, source)
}

// Close releases the underlying tree. Nodes obtained from this file must not
// be used afterwards.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

func (f *File) Root() Node {
	return Node{file: f, inner: f.tree.RootNode()}
}

// Serialize reconstructs the source text by walking every leaf token in
// document order and emitting its leading trivia bytes followed by the token
// bytes. For an unmutated tree the result is byte-identical to the input.
func (f *File) Serialize() []byte {
	var buf bytes.Buffer
	cursor := uint(0)

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		count := n.ChildCount()
		if count == 0 {
			if n.StartByte() > cursor {
				buf.Write(f.Source[cursor:n.StartByte()])
				cursor = n.StartByte()
			}
			if n.EndByte() > cursor {
				buf.Write(f.Source[cursor:n.EndByte()])
				cursor = n.EndByte()
			}
			return
		}
		for i := uint(0); i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(f.tree.RootNode())

	buf.Write(f.Source[cursor:])
	return buf.Bytes()
}

// Splice returns a new content buffer with source[start:end] replaced.
// Every byte outside the span is carried over unchanged. The receiver is not
// modified; callers needing to scan the result must parse it again.
func (f *File) Splice(start, end uint, replacement string) []byte {
	out := make([]byte, 0, len(f.Source)-int(end-start)+len(replacement))
	out = append(out, f.Source[:start]...)
	out = append(out, replacement...)
	out = append(out, f.Source[end:]...)
	return out
}
