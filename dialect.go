package sqlprep

import "github.com/stephenafamo/sqlprep/token"

// QueryBuilder describes how a database spells placeholders and literals
type QueryBuilder interface {
	// Placeholder returns the placeholder marker and whether it is followed by
	// a 1-based position, e.g. ("$", true) for $1 or ("?", false) for ?
	// The marker must be a single punctuation character.
	Placeholder() (marker string, numbered bool)

	// ValueToString returns the literal SQL text of the value.
	// It must handle every Kind and never panic.
	ValueToString(Value) string
}

// SyntaxProvider is a [QueryBuilder] that also describes its lexical conventions
type SyntaxProvider interface {
	QueryBuilder
	Syntax() token.Syntax
}

// IdentifierQuoter is a [QueryBuilder] that can quote identifiers
type IdentifierQuoter interface {
	QueryBuilder
	QuoteIdentifier(name string) string
}

// SyntaxOf returns the lexical conventions of the query builder,
// falling back to [token.DefaultSyntax]
func SyntaxOf(qb QueryBuilder) token.Syntax {
	if sp, ok := qb.(SyntaxProvider); ok {
		return sp.Syntax()
	}

	return token.DefaultSyntax
}
