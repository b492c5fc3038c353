package expr

import (
	"errors"
	"fmt"

	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/token"
)

// Raw is SQL text written as is
type Raw string

func (r Raw) WriteSQL(w sqlprep.SQLWriter, _ sqlprep.QueryBuilder) error {
	_, err := w.WriteString(string(r))
	return err
}

// RawQuery creates a clause from a query using ? for placeholders
func RawQuery(q string, args ...any) Clause {
	return Clause{query: q, args: args}
}

// A Raw Clause with arguments
type Clause struct {
	query string // The clause with ? used for placeholders
	args  []any  // The replacements for the placeholders in order
}

// WriteSQL writes the clause, binding each ? outside quotes and comments to
// the next argument. Arguments that are expressions are written in place,
// everything else is pushed to the writer as a value.
// A ? escaped with a back-slash (\?) is written as a plain ?.
func (r Clause) WriteSQL(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder) error {
	total := 0
	tokens := token.New(r.query, sqlprep.SyntaxOf(qb))

	for tok, ok := tokens.Next(); ok; tok, ok = tokens.Next() {
		if tok.Kind != token.Punctuation {
			if _, err := w.WriteString(tok.Text); err != nil {
				return err
			}
			continue
		}

		if tok.Text == `\` {
			if next, ok := tokens.Peek(); ok && next.Kind == token.Punctuation && next.Text == "?" {
				tokens.Next()
				if _, err := w.WriteString("?"); err != nil {
					return err
				}
				continue
			}
		}

		if tok.Text != "?" {
			if _, err := w.WriteString(tok.Text); err != nil {
				return err
			}
			continue
		}

		if total >= len(r.args) {
			total += r.countRemaining(tokens)
			return &RawError{args: len(r.args), placeholders: total + 1, clause: r.query}
		}

		if err := writeArg(w, qb, r.args[total]); err != nil {
			return err
		}
		total++
	}

	if len(r.args) != total {
		return &RawError{args: len(r.args), placeholders: total, clause: r.query}
	}

	return nil
}

func writeArg(w sqlprep.SQLWriter, qb sqlprep.QueryBuilder, arg any) error {
	if e, ok := arg.(sqlprep.Expression); ok {
		return e.WriteSQL(w, qb)
	}

	val, err := sqlprep.ValueOf(arg)
	if err != nil {
		return fmt.Errorf("clause arg %T: %w", arg, err)
	}

	return w.PushParam(val, qb)
}

func (r Clause) countRemaining(tokens *token.Tokenizer) int {
	n := 0
	escaped := false
	for tok, ok := tokens.Next(); ok; tok, ok = tokens.Next() {
		if tok.Kind != token.Punctuation {
			escaped = false
			continue
		}
		if tok.Text == "?" && !escaped {
			n++
		}
		escaped = tok.Text == `\`
	}
	return n
}

// RawError is returned when the number of placeholders and args of a clause differ
type RawError struct {
	args         int
	placeholders int
	clause       string
}

func (s *RawError) Error() string {
	return fmt.Sprintf(
		"Bad Statement: has %d placeholders but %d args: %s",
		s.placeholders, s.args, s.clause,
	)
}

func (s *RawError) Equal(I error) bool {
	var s2 *RawError
	if errors.As(I, &s2) {
		return s2.args == s.args && s2.placeholders == s.placeholders
	}

	return false
}

func (s *RawError) Is(target error) bool {
	return s.Equal(target)
}
