package sqlprep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var expression = ExpressionFunc(func(w SQLWriter, qb QueryBuilder) error {
	w.WriteString("Hello ")
	if err := w.PushParam(String("first"), qb); err != nil {
		return err
	}
	w.WriteString(" ")
	return w.PushParam(Int(2), qb)
})

func TestBuild(t *testing.T) {
	sql, values, err := Build(expression, numbered)
	require.NoError(t, err)
	require.Equal(t, "Hello $1 $2", sql)
	require.Equal(t, Values{String("first"), Int(2)}, values)

	inline, err := BuildInline(expression, numbered)
	require.NoError(t, err)
	require.Equal(t, "Hello 'first' 2", inline)
}

func TestMustBuild(t *testing.T) {
	sql, values := MustBuild(expression, unnumbered)
	require.Equal(t, "Hello ? ?", sql)
	require.Len(t, values, 2)

	failing := ExpressionFunc(func(SQLWriter, QueryBuilder) error {
		return errors.New("failed")
	})
	require.Panics(t, func() { MustBuild(failing, unnumbered) })
}

func TestExpress(t *testing.T) {
	w := CollectorFor(numbered)
	require.NoError(t, Express(w, numbered, "SELECT "))
	require.NoError(t, Express(w, numbered, []byte("a, ")))
	require.NoError(t, Express(w, numbered, 3))
	require.NoError(t, Express(w, numbered, []byte(", ")))
	require.NoError(t, Express(w, numbered, Null()))
	require.NoError(t, Express(w, numbered, ExpressionFunc(func(w SQLWriter, _ QueryBuilder) error {
		_, err := w.WriteString(" FROM t")
		return err
	})))

	sql, values, err := w.Parts()
	require.NoError(t, err)
	require.Equal(t, "SELECT a, $1, $2 FROM t", sql)
	require.Equal(t, Values{Int(3), Null()}, values)

	err = Express(NewStringWriter(), numbered, struct{}{})
	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestExpressIf(t *testing.T) {
	w := NewStringWriter()
	require.NoError(t, ExpressIf(w, unnumbered, 1, false, "(", ")"))
	require.NoError(t, ExpressIf(w, unnumbered, 2, true, "(", ")"))

	sql, err := w.Result()
	require.NoError(t, err)
	require.Equal(t, "(2)", sql)
}

func TestExpressSlice(t *testing.T) {
	w := NewStringWriter()
	require.NoError(t, ExpressSlice(w, unnumbered, []any{"a", 1, String("b")}, "[", ", ", "]"))
	require.NoError(t, ExpressSlice[any](w, unnumbered, nil, "(", ", ", ")"))

	sql, err := w.Result()
	require.NoError(t, err)
	require.Equal(t, "[a, 1, 'b']", sql)
}
