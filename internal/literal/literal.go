// Package literal holds the encoding rules shared by the dialects
package literal

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Layouts used for temporal literals
const (
	DateLayout       = "2006-01-02"
	TimeLayout       = "15:04:05.999999"
	DateTimeLayout   = "2006-01-02 15:04:05.999999"
	DateTimeTZLayout = "2006-01-02 15:04:05.999999-07:00"
)

const Null = "NULL"

// Quote wraps s in single quotes, doubling any embedded single quote
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteIdent wraps an identifier in q, doubling any embedded q
func QuoteIdent(s string, q string) string {
	return q + strings.ReplaceAll(s, q, q+q) + q
}

//nolint:gochecknoglobals
var (
	backslashReplacer = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\x00", `\0`,
		"\b", `\b`,
		"\f", `\f`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	mysqlReplacer = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\x00", `\0`,
		"\b", `\b`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\x1a", `\Z`,
	)
)

// BackslashEscape escapes s for a string literal that honours backslash escapes
func BackslashEscape(s string) string {
	return backslashReplacer.Replace(s)
}

// MySQLEscape is [BackslashEscape] with the escape set understood by MySQL
func MySQLEscape(s string) string {
	return mysqlReplacer.Replace(s)
}

// Hex is the upper case hexadecimal form of b
func Hex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Bool is the SQL keyword for b
func Bool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Float formats a finite float with the shortest representation that
// round trips at the given bit size
func Float(f float64, bits int) string {
	if bits != 32 {
		bits = 64
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// NonFinite reports whether f is NaN or an infinity, and which one:
// 0 for NaN, +1 or -1 for the infinities
func NonFinite(f float64) (sign int, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, true
	case math.IsInf(f, 1):
		return 1, true
	case math.IsInf(f, -1):
		return -1, true
	default:
		return 0, false
	}
}
