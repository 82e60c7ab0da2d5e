// # internal/cst/kind.go
package cst

// Kind is a closed enumeration of the grammar node kinds this tool cares
// about. Anything the grammar produces that we never classify maps to
// KindOther, so switches over Kind stay exhaustive.
type Kind int

const (
	KindOther Kind = iota
	KindModule
	KindComment
	KindIdentifier
	KindString
	KindExpressionStatement
	KindAssignment
	KindAugmentedAssignment
	KindImport
	KindImportFrom
	KindFutureImport
	KindImportPrefix
	KindRelativeImport
	KindDottedName
	KindAliasedImport
	KindWildcardImport
	KindDecorator
	KindDecoratedDefinition
	KindFunctionDefinition
	KindClassDefinition
	KindLambda
	KindListComprehension
	KindSetComprehension
	KindDictComprehension
	KindGeneratorExpression
	KindBlock
	KindIf
	KindElifClause
	KindElseClause
	KindFor
	KindWhile
	KindTry
	KindExceptClause
	KindExceptGroupClause
	KindFinallyClause
	KindWith
	KindWithClause
	KindWithItem
	KindAsPattern
	KindMatch
	KindCaseClause
	KindReturn
	KindDelete
	KindGlobal
	KindNonlocal
	KindAssert
	KindCall
	KindAttribute
)

var kindByName = map[string]Kind{
	"module":                   KindModule,
	"comment":                  KindComment,
	"identifier":               KindIdentifier,
	"string":                   KindString,
	"expression_statement":     KindExpressionStatement,
	"assignment":               KindAssignment,
	"augmented_assignment":     KindAugmentedAssignment,
	"import_statement":         KindImport,
	"import_from_statement":    KindImportFrom,
	"future_import_statement":  KindFutureImport,
	"import_prefix":            KindImportPrefix,
	"relative_import":          KindRelativeImport,
	"dotted_name":              KindDottedName,
	"aliased_import":           KindAliasedImport,
	"wildcard_import":          KindWildcardImport,
	"decorator":                KindDecorator,
	"decorated_definition":     KindDecoratedDefinition,
	"function_definition":      KindFunctionDefinition,
	"class_definition":         KindClassDefinition,
	"lambda":                   KindLambda,
	"list_comprehension":       KindListComprehension,
	"set_comprehension":        KindSetComprehension,
	"dictionary_comprehension": KindDictComprehension,
	"generator_expression":     KindGeneratorExpression,
	"block":                    KindBlock,
	"if_statement":             KindIf,
	"elif_clause":              KindElifClause,
	"else_clause":              KindElseClause,
	"for_statement":            KindFor,
	"while_statement":          KindWhile,
	"try_statement":            KindTry,
	"except_clause":            KindExceptClause,
	"except_group_clause":      KindExceptGroupClause,
	"finally_clause":           KindFinallyClause,
	"with_statement":           KindWith,
	"with_clause":              KindWithClause,
	"with_item":                KindWithItem,
	"as_pattern":               KindAsPattern,
	"match_statement":          KindMatch,
	"case_clause":              KindCaseClause,
	"return_statement":         KindReturn,
	"delete_statement":         KindDelete,
	"global_statement":         KindGlobal,
	"nonlocal_statement":       KindNonlocal,
	"assert_statement":         KindAssert,
	"call":                     KindCall,
	"attribute":                KindAttribute,
}

var nameByKind = func() map[Kind]string {
	m := make(map[Kind]string, len(kindByName))
	for name, kind := range kindByName {
		m[kind] = name
	}
	return m
}()

func kindOf(grammarKind string) Kind {
	if k, ok := kindByName[grammarKind]; ok {
		return k
	}
	return KindOther
}

func (k Kind) String() string {
	if name, ok := nameByKind[k]; ok {
		return name
	}
	return "other"
}
