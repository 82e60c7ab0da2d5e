// # internal/cst/trivia_test.go
package cst

import (
	"testing"
)

func TestLeadingTriviaSegments(t *testing.T) {
	file := mustParse(t, `x = 1

# first comment
# second comment
y = 2
`)

	var target Node
	found := false
	for n := range Scan(file.Root(), KindExpressionStatement, ModuleScope) {
		target = n
		found = true
	}
	if !found {
		t.Fatal("no statements found")
	}

	trivia := target.LeadingTrivia()
	var comments []string
	for _, seg := range trivia {
		if seg.Kind == TriviaComment {
			comments = append(comments, seg.Text)
		}
	}

	if len(comments) != 2 {
		t.Fatalf("Expected 2 comment segments, got %v", trivia)
	}
	if comments[0] != "# first comment" || comments[1] != "# second comment" {
		t.Errorf("Unexpected comments: %v", comments)
	}
}

func TestHasLeadingCommentExactMatch(t *testing.T) {
	file := mustParse(t, `# geninfo-ignore: missing-docstring
@commands.command()
async def cmd(self):
    pass
`)

	decorated, ok := First(file.Root(), KindDecoratedDefinition, Containers)
	if !ok {
		t.Fatal("decorated definition not found")
	}

	if !decorated.HasLeadingComment("# geninfo-ignore: missing-docstring") {
		t.Error("Expected exact marker comment to match")
	}
	if decorated.HasLeadingComment("# geninfo-ignore") {
		t.Error("Prefix of the marker must not match")
	}
}

func TestLeadingTriviaIndentedStatement(t *testing.T) {
	file := mustParse(t, `class A:
    # note
    @commands.command()
    async def cmd(self):
        pass
`)

	decorated, ok := First(file.Root(), KindDecoratedDefinition, Containers)
	if !ok {
		t.Fatal("decorated definition not found")
	}
	if !decorated.HasLeadingComment("# note") {
		t.Error("Comment inside the class body should be leading trivia of the definition")
	}
}
