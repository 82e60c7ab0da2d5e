// # internal/docsync/sync_test.go
package docsync

import (
	"os"
	"path/filepath"
	"testing"
)

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestSyncInsertsDocstringInImportedFile(t *testing.T) {
	entrySource := "from .b import Foo\n"
	dir := writePackage(t, map[string]string{
		"__init__.py": entrySource,
		"b.py":        "class Foo:\n    def __init__(self):\n        pass\n",
	})

	result, err := Sync(Request{
		PackageDir: dir,
		EntryFile:  filepath.Join(dir, "__init__.py"),
		ClassName:  "Foo",
		Text:       "Tracks X.",
	})
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if !result.Written {
		t.Fatal("Expected a write on first run")
	}
	if result.Path != filepath.Join(dir, "b.py") {
		t.Errorf("Expected b.py to be rewritten, got %s", result.Path)
	}

	want := "class Foo:\n    \"\"\"Tracks X.\"\"\"\n    def __init__(self):\n        pass\n"
	if got := readFile(t, filepath.Join(dir, "b.py")); got != want {
		t.Errorf("b.py mismatch:\ngot  %q\nwant %q", got, want)
	}
	if got := readFile(t, filepath.Join(dir, "__init__.py")); got != entrySource {
		t.Errorf("__init__.py must stay untouched, got %q", got)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"__init__.py": "class Foo:\n    pass\n",
	})
	req := Request{
		PackageDir: dir,
		EntryFile:  filepath.Join(dir, "__init__.py"),
		ClassName:  "Foo",
		Text:       "Does things.",
	}

	first, err := Sync(req)
	if err != nil {
		t.Fatalf("First sync failed: %v", err)
	}
	if !first.Written {
		t.Error("First run should write")
	}

	second, err := Sync(req)
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}
	if second.Written {
		t.Error("Second run must be a no-op")
	}
}

func TestSyncReplacesExistingDocstring(t *testing.T) {
	source := "import json\n\n\nclass Foo:\n    \"\"\"Stale description.\"\"\"\n\n    # internals below\n    value = 1  # kept\n"
	dir := writePackage(t, map[string]string{"__init__.py": source})

	result, err := Sync(Request{
		PackageDir: dir,
		EntryFile:  filepath.Join(dir, "__init__.py"),
		ClassName:  "Foo",
		Text:       "Fresh description.",
	})
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if !result.Written {
		t.Fatal("Expected a write")
	}

	want := "import json\n\n\nclass Foo:\n    \"\"\"Fresh description.\"\"\"\n\n    # internals below\n    value = 1  # kept\n"
	if got := readFile(t, filepath.Join(dir, "__init__.py")); got != want {
		t.Errorf("Only the docstring span may change:\ngot  %q\nwant %q", got, want)
	}
}

func TestSyncPreservesUnusualIndentation(t *testing.T) {
	source := "class Foo:\n        value = 1\n"
	dir := writePackage(t, map[string]string{"__init__.py": source})

	_, err := Sync(Request{
		PackageDir: dir,
		EntryFile:  filepath.Join(dir, "__init__.py"),
		ClassName:  "Foo",
		Text:       "Wide.",
	})
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	want := "class Foo:\n        \"\"\"Wide.\"\"\"\n        value = 1\n"
	if got := readFile(t, filepath.Join(dir, "__init__.py")); got != want {
		t.Errorf("Indent should follow the sibling statement:\ngot  %q\nwant %q", got, want)
	}
}
