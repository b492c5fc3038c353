package sqlprep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestInjectParameters(t *testing.T) {
	tests := map[string]struct {
		qb       QueryBuilder
		query    string
		values   []Value
		expected string
		err      error
	}{
		"no placeholders": {
			qb:       unnumbered,
			query:    "SELECT * FROM users WHERE a = 1",
			values:   []Value{Int(1)},
			expected: "SELECT * FROM users WHERE a = 1",
		},
		"empty": {
			qb: numbered,
		},
		"ordered": {
			qb:       unnumbered,
			query:    "WHERE A = ? AND C = ?",
			values:   []Value{String("B"), String("D")},
			expected: "WHERE A = 'B' AND C = 'D'",
		},
		"inside quotes": {
			qb:       unnumbered,
			query:    "WHERE A = '?' AND B = ?",
			values:   []Value{String("C")},
			expected: "WHERE A = '?' AND B = 'C'",
		},
		"inside comments": {
			qb:       unnumbered,
			query:    "SELECT ? -- is it ?\n/* ? */ + ?",
			values:   []Value{Int(1), Int(2)},
			expected: "SELECT 1 -- is it ?\n/* ? */ + 2",
		},
		"adjacent": {
			qb:       unnumbered,
			query:    "(?,?)",
			values:   []Value{Int(1), Int(2)},
			expected: "(1,2)",
		},
		"surplus values": {
			qb:       unnumbered,
			query:    "SELECT ?",
			values:   []Value{Int(1), Int(2), Int(3)},
			expected: "SELECT 1",
		},
		"numbered out of order": {
			qb:       numbered,
			query:    "WHERE A = $2 AND C = $1",
			values:   []Value{String("B"), String("D")},
			expected: "WHERE A = 'D' AND C = 'B'",
		},
		"numbered repeated": {
			qb:       numbered,
			query:    "WHERE A = $1 OR B = $1",
			values:   []Value{Int(7)},
			expected: "WHERE A = 7 OR B = 7",
		},
		"numbered multi digit": {
			qb:       numbered,
			query:    "SELECT $10",
			values:   []Value{Int(1), Int(2), Int(3), Int(4), Int(5), Int(6), Int(7), Int(8), Int(9), Int(10)},
			expected: "SELECT 10",
		},
		"numbered with cast": {
			qb:       numbered,
			query:    "SELECT $1::int, ($2)",
			values:   []Value{Int(1), Int(2)},
			expected: "SELECT 1::int, (2)",
		},
		"marker without number": {
			qb:       numbered,
			query:    "SELECT $ a, $abc, $0, $1",
			values:   []Value{Int(1)},
			expected: "SELECT $ a, $abc, $0, 1",
		},
		"marker at the end": {
			qb:       numbered,
			query:    "SELECT $",
			expected: "SELECT $",
		},
		"marker inside quotes": {
			qb:       numbered,
			query:    `SELECT '$1', "$1", $1`,
			values:   []Value{String("x")},
			expected: `SELECT '$1', "$1", 'x'`,
		},
		"unterminated quote": {
			qb:       unnumbered,
			query:    "SELECT ?, 'abc ?",
			values:   []Value{Int(1)},
			expected: "SELECT 1, 'abc ?",
		},
		"too few values": {
			qb:     unnumbered,
			query:  "WHERE A = ? AND B = ?",
			values: []Value{Int(1)},
			err:    &IndexError{Placeholder: "?", Index: 2, Count: 1, Offset: 20},
		},
		"numbered out of range": {
			qb:     numbered,
			query:  "WHERE A = $1 AND B = $3",
			values: []Value{Int(1), Int(2)},
			err:    &IndexError{Placeholder: "$3", Index: 3, Count: 2, Offset: 21},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sql, err := InjectParameters(tc.query, tc.values, tc.qb)
			if diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
			if err != nil {
				require.ErrorIs(t, err, ErrIndexOutOfRange)
				require.Empty(t, sql)
				return
			}

			require.Equal(t, tc.expected, sql)
		})
	}
}

func TestInjectArgs(t *testing.T) {
	sql, err := InjectArgs("SELECT ?, ?, ?", []any{nil, 5, "five"}, unnumbered)
	require.NoError(t, err)
	require.Equal(t, "SELECT NULL, 5, 'five'", sql)

	_, err = InjectArgs("SELECT ?", []any{struct{}{}}, unnumbered)
	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestInjectCollecting(t *testing.T) {
	w := CollectorFor(numbered)
	err := Inject(w, "WHERE a = ? AND b IN (?, ?)", []Value{Int(1), Int(2), Int(3)}, unnumbered)
	require.NoError(t, err)

	sql, values, err := w.Parts()
	require.NoError(t, err)
	require.Equal(t, "WHERE a = $1 AND b IN ($2, $3)", sql)
	require.Equal(t, Values{Int(1), Int(2), Int(3)}, values)
}

func TestRebind(t *testing.T) {
	tests := map[string]struct {
		query, expected string
		from, to        QueryBuilder
		values          []Value
		expectedValues  Values
	}{
		"to numbered": {
			query:          "a = ? AND b = ?",
			from:           unnumbered,
			to:             numbered,
			values:         []Value{Int(1), Int(2)},
			expected:       "a = $1 AND b = $2",
			expectedValues: Values{Int(1), Int(2)},
		},
		"to unnumbered": {
			query:          "a = $2 AND b = $1 AND c = $2",
			from:           numbered,
			to:             unnumbered,
			values:         []Value{Int(1), Int(2)},
			expected:       "a = ? AND b = ? AND c = ?",
			expectedValues: Values{Int(2), Int(1), Int(2)},
		},
		"renumbered": {
			query:          "a = $2 AND b = $1",
			from:           numbered,
			to:             numbered,
			values:         []Value{String("x"), String("y")},
			expected:       "a = $1 AND b = $2",
			expectedValues: Values{String("y"), String("x")},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sql, values, err := Rebind(tc.query, tc.values, tc.from, tc.to)
			require.NoError(t, err)
			require.Equal(t, tc.expected, sql)
			if diff := cmp.Diff(tc.expectedValues, values); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
		})
	}

	_, _, err := Rebind("$3", []Value{Int(1)}, numbered, unnumbered)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

// re-joining the pieces around the placeholders gives back the query
func TestInjectLossless(t *testing.T) {
	queries := []string{
		"SELECT 'it''s', \"a\"\"b\", `c` FROM t -- trailing ?",
		"INSERT INTO t VALUES (?, ?) /* two ? */",
		"SELECT $$ ? $$, E'\\' ?', ?",
		"  \t\nSELECTé ?",
	}

	for _, q := range queries {
		w := CollectorFor(unnumbered)
		values := []Value{Int(1), Int(2), Int(3)}
		require.NoError(t, Inject(w, q, values, unnumbered))

		sql, err := w.Result()
		require.NoError(t, err)
		require.Equal(t, q, sql)
	}
}
