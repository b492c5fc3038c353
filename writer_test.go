package sqlprep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringWriter(t *testing.T) {
	w := NewStringWriter()

	_, err := w.WriteString("SELECT ")
	require.NoError(t, err)
	require.NoError(t, w.PushParam(String("a'b"), unnumbered))
	_, err = w.Write([]byte(", "))
	require.NoError(t, err)
	require.NoError(t, w.PushParam(Null(), unnumbered))

	sql, err := w.Result()
	require.NoError(t, err)
	require.Equal(t, "SELECT 'a''b', NULL", sql)
}

func TestCollectingWriter(t *testing.T) {
	cases := map[string]struct {
		qb       testDialect
		expected string
	}{
		"unnumbered": {qb: unnumbered, expected: "a = ? AND b = ?"},
		"numbered":   {qb: numbered, expected: "a = $1 AND b = $2"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := CollectorFor(tc.qb)
			w.WriteString("a = ")
			require.NoError(t, w.PushParam(Int(1), tc.qb))
			w.WriteString(" AND b = ")
			require.NoError(t, w.PushParam(String("x"), tc.qb))
			require.Equal(t, 2, w.Len())

			sql, values, err := w.Parts()
			require.NoError(t, err)
			require.Equal(t, tc.expected, sql)
			require.Equal(t, Values{Int(1), String("x")}, values)
		})
	}
}

// the placeholder belongs to the writer, not to the dialect passed to PushParam
func TestCollectingWriterOwnMarker(t *testing.T) {
	w := NewCollectingWriter("@p", true)
	require.NoError(t, w.PushParam(Int(1), unnumbered))
	require.NoError(t, w.PushParam(Int(2), numbered))

	sql, err := w.Result()
	require.NoError(t, err)
	require.Equal(t, "@p1@p2", sql)
}

func TestWriterConsumed(t *testing.T) {
	writers := map[string]SQLWriter{
		"string":     NewStringWriter(),
		"collecting": CollectorFor(numbered),
	}

	for name, w := range writers {
		t.Run(name, func(t *testing.T) {
			_, err := w.WriteString("SELECT 1")
			require.NoError(t, err)

			sql, err := w.Result()
			require.NoError(t, err)
			require.Equal(t, "SELECT 1", sql)

			_, err = w.Result()
			require.ErrorIs(t, err, ErrWriterConsumed)

			_, err = w.WriteString("x")
			require.ErrorIs(t, err, ErrWriterConsumed)

			_, err = w.Write([]byte("x"))
			require.ErrorIs(t, err, ErrWriterConsumed)

			require.ErrorIs(t, w.PushParam(Int(1), numbered), ErrWriterConsumed)
		})
	}

	t.Run("parts", func(t *testing.T) {
		w := CollectorFor(numbered)
		_, _, err := w.Parts()
		require.NoError(t, err)

		_, _, err = w.Parts()
		require.ErrorIs(t, err, ErrWriterConsumed)
	})
}
