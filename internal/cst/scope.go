// # internal/cst/scope.go
package cst

// KindSet is a fixed set of node kinds used to bound how far Scan descends.
type KindSet map[Kind]struct{}

func NewKindSet(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s KindSet) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

func (s KindSet) Union(other KindSet) KindSet {
	out := make(KindSet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// structural statement kinds that a search descends through regardless of
// which boundary set is in use. None of these opens a lexical scope.
var structuralKinds = NewKindSet(
	KindBlock,
	KindIf,
	KindElifClause,
	KindElseClause,
	KindFor,
	KindWhile,
	KindTry,
	KindExceptClause,
	KindExceptGroupClause,
	KindFinallyClause,
	KindWith,
	KindWithClause,
	KindWithItem,
	KindMatch,
	KindCaseClause,
)

// Containers bounds a search that may cross into function and class bodies.
// A Scan bounded by it finds matches at any nesting depth.
var Containers = structuralKinds.Union(NewKindSet(
	KindDecoratedDefinition,
	KindFunctionDefinition,
	KindClassDefinition,
))

// ModuleScope bounds a search to names reachable without entering a
// function, class, lambda or comprehension body. Statement-level constructs
// that merely look compound (with-items, imports, assignments, simple
// statements) are still descended into.
var ModuleScope = structuralKinds.Union(NewKindSet(
	KindAsPattern,
	KindExpressionStatement,
	KindAssignment,
	KindAugmentedAssignment,
	KindImport,
	KindImportFrom,
	KindFutureImport,
	KindDottedName,
	KindAliasedImport,
	KindReturn,
	KindDelete,
	KindGlobal,
	KindNonlocal,
	KindAssert,
))
