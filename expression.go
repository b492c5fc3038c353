package sqlprep

import (
	"fmt"
)

// Expression represents a section of a query
type Expression interface {
	// Writes the textual representation of the expression to the writer.
	// Bound values go through w.PushParam so the writer decides whether
	// they are inlined or collected.
	WriteSQL(w SQLWriter, qb QueryBuilder) error
}

type ExpressionFunc func(w SQLWriter, qb QueryBuilder) error

func (e ExpressionFunc) WriteSQL(w SQLWriter, qb QueryBuilder) error {
	return e(w, qb)
}

// Express writes e to w.
// Strings and byte slices are written as SQL text, expressions write
// themselves, and anything else is bound as a value.
func Express(w SQLWriter, qb QueryBuilder, e any) error {
	switch v := e.(type) {
	case string:
		_, err := w.WriteString(v)
		return err
	case []byte:
		_, err := w.Write(v)
		return err
	case Value:
		return w.PushParam(v, qb)
	case Expression:
		return v.WriteSQL(w, qb)
	default:
		val, err := ValueOf(e)
		if err != nil {
			return fmt.Errorf("express %T: %w", e, err)
		}
		return w.PushParam(val, qb)
	}
}

// ExpressIf expands an express if the condition evaluates to true
// it can also add a prefix and suffix
func ExpressIf(w SQLWriter, qb QueryBuilder, e any, cond bool, prefix, suffix string) error {
	if !cond {
		return nil
	}

	if _, err := w.WriteString(prefix); err != nil {
		return err
	}
	if err := Express(w, qb, e); err != nil {
		return err
	}
	_, err := w.WriteString(suffix)

	return err
}

// ExpressSlice is used to express a slice of expressions along with a prefix and suffix
func ExpressSlice[T any](w SQLWriter, qb QueryBuilder, expressions []T, prefix, sep, suffix string) error {
	if len(expressions) == 0 {
		return nil
	}

	if _, err := w.WriteString(prefix); err != nil {
		return err
	}

	for k, e := range expressions {
		if k != 0 {
			if _, err := w.WriteString(sep); err != nil {
				return err
			}
		}

		if err := Express(w, qb, e); err != nil {
			return err
		}
	}

	_, err := w.WriteString(suffix)
	return err
}
