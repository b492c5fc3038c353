package sqlprep

import (
	"strconv"

	"github.com/stephenafamo/sqlprep/token"
)

// Inject copies query into w, handing every placeholder of qb's syntax to
// w.PushParam together with the value it refers to.
//
// Unnumbered placeholders take the values in order. A numbered placeholder such
// as $2 takes values[1]; numbers may repeat or appear in any order. A marker
// that is not followed by a positive integer is copied as is, and nothing inside
// quotes or comments is ever treated as a placeholder.
//
// A placeholder referring past the end of values fails with an [*IndexError].
// Surplus values are ignored.
func Inject(w SQLWriter, query string, values []Value, qb QueryBuilder) error {
	marker, numbered := qb.Placeholder()
	tokens := token.New(query, SyntaxOf(qb))

	next := 0
	for tok, ok := tokens.Next(); ok; tok, ok = tokens.Next() {
		if tok.Kind != token.Punctuation || tok.Text != marker {
			if _, err := w.WriteString(tok.Text); err != nil {
				return err
			}
			continue
		}

		if !numbered {
			if next >= len(values) {
				return &IndexError{Placeholder: tok.Text, Index: next + 1, Count: len(values), Offset: tok.Offset}
			}
			if err := w.PushParam(values[next], qb); err != nil {
				return err
			}
			next++
			continue
		}

		position, ok := placeholderPosition(tokens)
		if !ok {
			if _, err := w.WriteString(tok.Text); err != nil {
				return err
			}
			continue
		}

		// consume the number
		num, _ := tokens.Next()
		if position > len(values) {
			return &IndexError{Placeholder: tok.Text + num.Text, Index: position, Count: len(values), Offset: tok.Offset}
		}
		if err := w.PushParam(values[position-1], qb); err != nil {
			return err
		}
	}

	return nil
}

// placeholderPosition reports the position following a numbered marker
// without consuming it
func placeholderPosition(tokens *token.Tokenizer) (int, bool) {
	next, ok := tokens.Peek()
	if !ok || next.Kind != token.Unquoted {
		return 0, false
	}

	n, err := strconv.Atoi(next.Text)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}

// InjectParameters returns query with every placeholder replaced by the
// literal form of its value. See [Inject] for the matching rules.
// On error no partial query is returned.
func InjectParameters(query string, values []Value, qb QueryBuilder) (string, error) {
	w := NewStringWriter()
	if err := Inject(w, query, values, qb); err != nil {
		return "", err
	}

	return w.Result()
}

// InjectArgs is like [InjectParameters] but converts the arguments with [ValueOf]
func InjectArgs(query string, args []any, qb QueryBuilder) (string, error) {
	values, err := ValuesOf(args...)
	if err != nil {
		return "", err
	}

	return InjectParameters(query, values, qb)
}

// Rebind parses query with the placeholder syntax of from and rewrites it with
// the placeholder syntax of to, returning the values in the order the new
// placeholders expect them. Numbered placeholders are renumbered by occurrence,
// so "$2 AND $1" becomes "$1 AND $2" with the two values swapped.
func Rebind(query string, values []Value, from, to QueryBuilder) (string, Values, error) {
	w := CollectorFor(to)
	if err := Inject(w, query, values, from); err != nil {
		return "", nil, err
	}

	return w.Parts()
}
