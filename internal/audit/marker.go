// # internal/audit/marker.go
package audit

import (
	"geninfo/internal/cst"
)

// MarkerName is the top-level declaration every cog package must carry.
const MarkerName = "__red_end_user_data_statement__"

// AuditMarker checks the package entry file for the required marker name.
// The search is bounded to module scope: a marker inside a with-block or an
// if-branch counts, one inside a function or class body does not.
func AuditMarker(pkg, entryPath string) ([]Finding, error) {
	file, err := cst.ParseFile(entryPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	for name := range cst.Scan(file.Root(), cst.KindIdentifier, cst.ModuleScope) {
		if name.Text() == MarkerName {
			return nil, nil
		}
	}

	return []Finding{{
		Kind:    MissingMarker,
		Package: pkg,
		File:    entryPath,
	}}, nil
}
