package dialect

import (
	"strconv"

	"github.com/lib/pq"
	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/internal/literal"
	"github.com/stephenafamo/sqlprep/token"
)

//nolint:gochecknoglobals
var (
	Dialect dialect

	syntax = token.Syntax{
		Quotes:        `'"`,
		Backslash:     token.EscapePrefixed,
		DollarQuotes:  true,
		LineComments:  []string{"--"},
		BlockComments: true,
	}
)

type dialect struct{}

func (d dialect) Placeholder() (string, bool) {
	return "$", true
}

func (d dialect) Syntax() token.Syntax {
	return syntax
}

func (d dialect) QuoteIdentifier(s string) string {
	return pq.QuoteIdentifier(s)
}

func (d dialect) ValueToString(v sqlprep.Value) string {
	switch v.Kind() {
	case sqlprep.KindBool:
		return literal.Bool(v.AsBool())
	case sqlprep.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case sqlprep.KindUint:
		return strconv.FormatUint(v.AsUint(), 10)
	case sqlprep.KindFloat:
		if sign, ok := literal.NonFinite(v.AsFloat()); ok {
			switch sign {
			case 1:
				return "'Infinity'"
			case -1:
				return "'-Infinity'"
			default:
				return "'NaN'"
			}
		}
		return literal.Float(v.AsFloat(), v.Bits())
	case sqlprep.KindString:
		return quoteString(v.AsString())
	case sqlprep.KindBytes:
		// bytea hex format, in an escape string so it reads the same
		// whatever standard_conforming_strings is
		return `E'\\x` + literal.Hex(v.AsBytes()) + `'`
	case sqlprep.KindDate:
		return "'" + v.AsTime().Format(literal.DateLayout) + "'"
	case sqlprep.KindTime:
		return "'" + v.AsTime().Format(literal.TimeLayout) + "'"
	case sqlprep.KindDateTime:
		return "'" + v.AsTime().Format(literal.DateTimeLayout) + "'"
	case sqlprep.KindDateTimeTZ:
		return "'" + v.AsTime().Format(literal.DateTimeTZLayout) + "'"
	case sqlprep.KindUUID:
		return "'" + v.AsUUID().String() + "'"
	case sqlprep.KindJSON:
		return quoteString(string(v.AsJSON()))
	default:
		return literal.Null
	}
}

// plain '...' when nothing needs escaping, E'...' otherwise
func quoteString(s string) string {
	escaped := literal.BackslashEscape(s)
	if escaped == s {
		return "'" + s + "'"
	}

	return "E'" + escaped + "'"
}

// QuestionMarks is the postgres dialect reading ? placeholders,
// for queries written for drivers that rebind
//
//nolint:gochecknoglobals
var QuestionMarks questionMarks

type questionMarks struct{ dialect }

func (questionMarks) Placeholder() (string, bool) {
	return "?", false
}
