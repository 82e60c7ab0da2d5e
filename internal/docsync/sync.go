// # internal/docsync/sync.go
package docsync

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"geninfo/internal/cst"
	"geninfo/internal/resolver"
)

const defaultIndent = "    "

// Request describes one class docstring to bring in line with the manifest.
// Text must already have its placeholders substituted.
type Request struct {
	PackageDir string
	EntryFile  string
	ClassName  string
	Text       string
}

type Result struct {
	Path    string
	Written bool
}

// Sync resolves the class starting from the package entry file and rewrites
// its docstring to match the requested text. The rewrite touches exactly the
// docstring span; every other byte of the file is preserved. Nothing is
// written when the file already matches, so a second run is a no-op.
func Sync(req Request) (Result, error) {
	target, err := resolver.New(req.PackageDir).Resolve(req.EntryFile, req.ClassName)
	if err != nil {
		return Result{}, err
	}
	defer target.File.Close()

	rewritten := rewriteDocstring(target.File, target.Class, req.Text)
	if bytes.Equal(rewritten, target.File.Source) {
		return Result{Path: target.Path, Written: false}, nil
	}

	logRewriteDiff(target.Path, target.File.Source, rewritten)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(target.Path, rewritten, mode); err != nil {
		return Result{}, err
	}
	return Result{Path: target.Path, Written: true}, nil
}

// rewriteDocstring produces the new file content: the existing docstring
// literal replaced in place, or a fresh one inserted as the first body
// statement using the body's indentation.
func rewriteDocstring(file *cst.File, class cst.Node, text string) []byte {
	literal := `"""` + text + `"""`

	if doc, ok := class.Docstring(); ok {
		return file.Splice(doc.StartByte(), doc.EndByte(), literal)
	}

	first, ok := class.FirstBodyStatement()
	if !ok {
		// Body holds no statement we can anchor on; append a docstring line
		// after the header with the default indent.
		body, hasBody := class.Field("body")
		if !hasBody {
			return file.Source
		}
		return file.Splice(body.StartByte(), body.StartByte(), literal+"\n"+defaultIndent)
	}

	indent := leadingIndent(file.Source, first.StartByte())
	return file.Splice(first.StartByte(), first.StartByte(), literal+"\n"+indent)
}

// leadingIndent returns the whitespace between the last newline and offset,
// or the default indent when the statement does not start a line.
func leadingIndent(source []byte, offset uint) string {
	start := int(offset)
	i := start
	for i > 0 && source[i-1] != '\n' {
		if source[i-1] != ' ' && source[i-1] != '\t' {
			return defaultIndent
		}
		i--
	}
	return string(source[i:start])
}

func logRewriteDiff(path string, before, after []byte) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return
	}
	slog.Debug("rewriting class docstring", "path", path, "diff", text)
}
