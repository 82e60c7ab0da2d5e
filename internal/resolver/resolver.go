// # internal/resolver/resolver.go
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"geninfo/internal/cst"
	"geninfo/internal/errors"
)

// Target is a resolved class definition. The caller owns File and must
// Close it when done.
type Target struct {
	Path  string
	File  *cst.File
	Class cst.Node
}

// Resolver follows single-level relative import chains inside one package
// directory until it finds the file defining a class.
type Resolver struct {
	pkgDir string
}

func New(pkgDir string) *Resolver {
	return &Resolver{pkgDir: pkgDir}
}

// Resolve parses entryPath and searches it for a class definition named
// className at any scope. When the file instead imports the name through a
// one-level relative import, the chain is followed. Absolute imports, deeper
// relative imports and dangling targets are classified failures; all of them
// abort the caller's run.
func (r *Resolver) Resolve(entryPath, className string) (*Target, error) {
	path := entryPath
	visited := make(map[string]bool)

	for {
		if visited[path] {
			return nil, errors.New(errors.CodeUnresolvedPath, "import chain loops back on itself").
				WithContext(errors.CtxPath, path).
				WithContext(errors.CtxClass, className)
		}
		visited[path] = true

		file, err := cst.ParseFile(path)
		if err != nil {
			return nil, err
		}

		if class, ok := findClass(file, className); ok {
			return &Target{Path: path, File: file, Class: class}, nil
		}

		next, err := r.nextHop(file, className)
		file.Close()
		if err != nil {
			return nil, err
		}
		if next == "" {
			return nil, errors.New(errors.CodeMissingClass,
				fmt.Sprintf("no definition or import of class %s", className)).
				WithContext(errors.CtxPath, path).
				WithContext(errors.CtxClass, className)
		}
		path = next
	}
}

func findClass(file *cst.File, className string) (cst.Node, bool) {
	for class := range cst.Scan(file.Root(), cst.KindClassDefinition, cst.Containers) {
		if name, ok := class.Field("name"); ok && name.Text() == className {
			return class, true
		}
	}
	return cst.Node{}, false
}

// nextHop finds the first import statement binding className and computes
// the file it should come from. It returns "" when no import names the
// class.
func (r *Resolver) nextHop(file *cst.File, className string) (string, error) {
	root := file.Root()

	var imports []cst.Node
	for imp := range cst.Scan(root, cst.KindImport, cst.Containers) {
		imports = append(imports, imp)
	}
	for imp := range cst.Scan(root, cst.KindImportFrom, cst.Containers) {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].StartByte() < imports[j].StartByte()
	})

	for _, imp := range imports {
		if !importNames(imp, className) {
			continue
		}

		// A plain `import a.b` can only bind the name absolutely.
		if imp.Kind() == cst.KindImport {
			return "", errors.New(errors.CodeAbsoluteImport,
				fmt.Sprintf("expected relative import of class %s", className)).
				WithContext(errors.CtxPath, file.Path)
		}

		module, ok := imp.Field("module_name")
		if !ok {
			continue
		}
		if module.Kind() != cst.KindRelativeImport {
			return "", errors.New(errors.CodeAbsoluteImport,
				fmt.Sprintf("expected relative import of class %s", className)).
				WithContext(errors.CtxPath, file.Path)
		}
		if level := relativeLevel(module); level > 1 {
			return "", errors.New(errors.CodeDeepRelativeImport,
				"relative import reaches beyond the package").
				WithContext(errors.CtxPath, file.Path)
		}

		target := r.pkgDir
		for _, segment := range moduleSegments(module) {
			target = filepath.Join(target, segment)
		}
		target += ".py"

		if info, err := os.Stat(target); err != nil || info.IsDir() {
			return "", errors.New(errors.CodeUnresolvedPath,
				fmt.Sprintf("%s is not a file, finding class %s failed", target, className)).
				WithContext(errors.CtxPath, file.Path)
		}
		return target, nil
	}

	return "", nil
}

// importNames reports whether the import statement binds className as one of
// its imported symbols. Star imports never match; aliased imports are
// matched on the original name, not the alias.
func importNames(imp cst.Node, className string) bool {
	module, hasModule := imp.Field("module_name")

	for i := uint(0); i < imp.NamedChildCount(); i++ {
		child := imp.NamedChild(i)
		if hasModule && child.StartByte() == module.StartByte() && child.EndByte() == module.EndByte() {
			continue
		}

		switch child.Kind() {
		case cst.KindWildcardImport:
			return false
		case cst.KindAliasedImport:
			if name, ok := child.Field("name"); ok && lastSegment(name.Text()) == className {
				return true
			}
		case cst.KindDottedName, cst.KindIdentifier:
			if lastSegment(child.Text()) == className {
				return true
			}
		}
	}
	return false
}

func relativeLevel(relative cst.Node) int {
	for i := uint(0); i < relative.ChildCount(); i++ {
		child := relative.Child(i)
		if child.Kind() == cst.KindImportPrefix {
			return strings.Count(child.Text(), ".")
		}
	}
	return 0
}

// moduleSegments returns the dotted module path of a relative import, e.g.
// ["a", "b"] for `from .a.b import X` and nil for `from . import X`.
func moduleSegments(relative cst.Node) []string {
	for i := uint(0); i < relative.ChildCount(); i++ {
		child := relative.Child(i)
		if child.Kind() == cst.KindDottedName {
			return strings.Split(child.Text(), ".")
		}
	}
	return nil
}

func lastSegment(dotted string) string {
	if i := strings.LastIndexByte(dotted, '.'); i >= 0 {
		return dotted[i+1:]
	}
	return dotted
}
