// # internal/audit/findings.go
package audit

import "fmt"

type FindingKind string

const (
	MissingDocstring   FindingKind = "missing-docstring"
	UnusedIgnoreMarker FindingKind = "unused-ignore-marker"
	MissingMarker      FindingKind = "missing-marker-statement"
)

// Finding is one non-fatal documentation defect. Findings are accumulated
// across all packages; any finding fails the run's final verdict.
type Finding struct {
	Kind    FindingKind
	Package string
	File    string
	Symbol  string
	Line    int
}

func (f Finding) String() string {
	switch f.Kind {
	case MissingDocstring:
		return fmt.Sprintf("command `%s` misses help docstring (%s:%d)", f.Symbol, f.File, f.Line)
	case UnusedIgnoreMarker:
		return fmt.Sprintf("command `%s` has unused missing-docstring ignore comment (%s:%d)", f.Symbol, f.File, f.Line)
	case MissingMarker:
		return fmt.Sprintf("cog package `%s` is missing end user data statement", f.Package)
	default:
		return fmt.Sprintf("%s in %s", f.Kind, f.Package)
	}
}
