package dialect

import (
	"strconv"

	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/internal/literal"
	"github.com/stephenafamo/sqlprep/token"
)

//nolint:gochecknoglobals
var (
	Dialect dialect

	syntax = token.Syntax{
		Quotes:        "'\"`[",
		Backslash:     token.EscapeNone,
		LineComments:  []string{"--"},
		BlockComments: true,
	}
)

type dialect struct{}

func (d dialect) Placeholder() (string, bool) {
	return "?", false
}

func (d dialect) Syntax() token.Syntax {
	return syntax
}

func (d dialect) QuoteIdentifier(s string) string {
	return literal.QuoteIdent(s, `"`)
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
		// SQLite stores NaN as NULL and reads 9e999 as infinity
		if sign, ok := literal.NonFinite(v.AsFloat()); ok {
			switch sign {
			case 1:
				return "9e999"
			case -1:
				return "-9e999"
			default:
				return literal.Null
			}
		}
		return literal.Float(v.AsFloat(), v.Bits())
	case sqlprep.KindString:
		return literal.Quote(v.AsString())
	case sqlprep.KindBytes:
		return "x'" + literal.Hex(v.AsBytes()) + "'"
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
		return literal.Quote(string(v.AsJSON()))
	default:
		return literal.Null
	}
}
