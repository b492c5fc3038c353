// Package token splits SQL text into a lossless sequence of tokens.
//
// The scanner only knows enough SQL to tell literals and comments apart from the
// rest of the statement. It is not a parser: its job is to let callers find
// placeholder markers without ever looking inside a string or identifier.
package token

import "fmt"

// Kind classifies a token
type Kind int

const (
	// Space is a run of whitespace
	Space Kind = iota
	// Unquoted is a run of letters, digits and underscores
	Unquoted
	// Quoted is a string, identifier or dollar-quoted literal including its delimiters
	Quoted
	// Punctuation is a single character that is neither space, word nor quote
	Punctuation
	// Comment is a line or block comment including its delimiters
	Comment
)

func (k Kind) String() string {
	switch k {
	case Space:
		return "Space"
	case Unquoted:
		return "Unquoted"
	case Quoted:
		return "Quoted"
	case Punctuation:
		return "Punctuation"
	case Comment:
		return "Comment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a slice of the source text.
// Concatenating the Text of every token reproduces the input exactly.
type Token struct {
	Kind Kind
	Text string
	// Offset is the byte offset of the token in the source
	Offset int
	// Unterminated is set on a Quoted or Comment token that ran into the end of input
	Unterminated bool
}

func (t Token) String() string {
	return t.Text
}

// Escape controls whether a backslash escapes the next character inside quotes
type Escape int

const (
	// EscapeNone never treats backslash specially
	EscapeNone Escape = iota
	// EscapeAlways lets a backslash escape inside single and double quotes
	EscapeAlways
	// EscapePrefixed lets a backslash escape only inside E'...' strings
	EscapePrefixed
)

// Syntax holds the lexical conventions of a dialect
type Syntax struct {
	// Quotes lists the opening quote characters. '[' is closed by ']'.
	Quotes string
	// Backslash controls backslash escapes inside quotes
	Backslash Escape
	// DollarQuotes enables $tag$...$tag$ literals
	DollarQuotes bool
	// LineComments are prefixes that start a comment running to the end of the line
	LineComments []string
	// SpacedDashComments makes -- start a comment only when it is followed by
	// whitespace, a control character or the end of the input, as MySQL does
	SpacedDashComments bool
	// BlockComments enables /* ... */ comments
	BlockComments bool
}

// DefaultSyntax is used when a dialect does not describe its own conventions
//
//nolint:gochecknoglobals
var DefaultSyntax = Syntax{
	Quotes:        "'\"`",
	Backslash:     EscapeAlways,
	LineComments:  []string{"--"},
	BlockComments: true,
}
