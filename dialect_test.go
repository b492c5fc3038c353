package sqlprep

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stephenafamo/sqlprep/token"
	"github.com/stretchr/testify/require"
)

// testDialect writes integers bare, strings in doubled single quotes
// and everything else through Value.String
type testDialect struct {
	marker   string
	numbered bool
}

var (
	unnumbered = testDialect{marker: "?"}
	numbered   = testDialect{marker: "$", numbered: true}
)

func (d testDialect) Placeholder() (string, bool) {
	return d.marker, d.numbered
}

func (d testDialect) ValueToString(v Value) string {
	switch v.Kind() {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case KindString:
		return "'" + strings.ReplaceAll(v.AsString(), "'", "''") + "'"
	default:
		return v.String()
	}
}

type syntaxDialect struct{ testDialect }

func (syntaxDialect) Syntax() token.Syntax {
	return token.Syntax{Quotes: "'"}
}

func TestSyntaxOf(t *testing.T) {
	require.Equal(t, token.DefaultSyntax, SyntaxOf(unnumbered))
	require.Equal(t, token.Syntax{Quotes: "'"}, SyntaxOf(syntaxDialect{unnumbered}))

	// with only single quotes a double quote is punctuation
	sql, err := InjectParameters(`SELECT "?", ?`, []Value{Int(1), Int(2)}, syntaxDialect{unnumbered})
	require.NoError(t, err)
	require.Equal(t, `SELECT "1", 2`, sql)
}
