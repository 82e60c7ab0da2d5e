// # internal/cst/trivia.go
package cst

type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaComment
)

// Trivia is one segment of the whitespace/comment run preceding a node.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// LeadingTrivia returns the whitespace and comment segments between the end
// of the previous non-comment sibling (or the enclosing node's start) and
// this node's first byte, in document order. Comment segments carry the
// comment text without its trailing newline; whitespace segments carry the
// exact bytes between tokens. Empty whitespace runs are omitted.
func (n Node) LeadingTrivia() []Trivia {
	var comments []Node
	cur := n
	for {
		prev, ok := cur.PrevSibling()
		if !ok || prev.Kind() != KindComment {
			break
		}
		comments = append([]Node{prev}, comments...)
		cur = prev
	}

	start := uint(0)
	if prev, ok := cur.PrevSibling(); ok {
		start = prev.EndByte()
	} else if parent, ok := n.Parent(); ok {
		start = parent.StartByte()
	}

	var out []Trivia
	appendWS := func(from, to uint) {
		if to > from {
			out = append(out, Trivia{Kind: TriviaWhitespace, Text: string(n.file.Source[from:to])})
		}
	}

	cursor := start
	for _, c := range comments {
		appendWS(cursor, c.StartByte())
		out = append(out, Trivia{Kind: TriviaComment, Text: c.Text()})
		cursor = c.EndByte()
	}
	appendWS(cursor, n.StartByte())

	return out
}

// HasLeadingComment reports whether any leading trivia comment equals text
// exactly.
func (n Node) HasLeadingComment(text string) bool {
	for _, t := range n.LeadingTrivia() {
		if t.Kind == TriviaComment && t.Text == text {
			return true
		}
	}
	return false
}
