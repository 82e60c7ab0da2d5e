// # internal/audit/docstrings.go
package audit

import (
	"geninfo/internal/cst"
)

// AuditDocstrings scans every given source file of one package for
// command-like function definitions and reports docstring defects: a missing
// docstring without the ignore marker, or a stale marker on a function that
// has since gained a docstring.
func AuditDocstrings(pkg string, files []string) ([]Finding, error) {
	var findings []Finding

	for _, path := range files {
		file, err := cst.ParseFile(path)
		if err != nil {
			return nil, err
		}

		for decorated := range cst.Scan(file.Root(), cst.KindDecoratedDefinition, cst.Containers) {
			def, ok := decorated.Field("definition")
			if !ok || def.Kind() != cst.KindFunctionDefinition {
				continue
			}
			if !isCommandLike(decorated) {
				continue
			}

			name := ""
			if n, ok := def.Field("name"); ok {
				name = n.Text()
			}

			_, hasDoc := def.Docstring()
			marked := hasIgnoreMarker(decorated)

			switch {
			case !hasDoc && !marked:
				findings = append(findings, Finding{
					Kind:    MissingDocstring,
					Package: pkg,
					File:    path,
					Symbol:  name,
					Line:    def.Line(),
				})
			case hasDoc && marked:
				findings = append(findings, Finding{
					Kind:    UnusedIgnoreMarker,
					Package: pkg,
					File:    path,
					Symbol:  name,
					Line:    def.Line(),
				})
			}
		}

		file.Close()
	}

	return findings, nil
}
