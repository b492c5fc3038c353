package sqlprep

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingDB struct {
	queries []string
	args    [][]any
}

func (r *recordingDB) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	r.queries = append(r.queries, query)
	r.args = append(r.args, args)
	return nil, sql.ErrConnDone
}

func (r *recordingDB) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)
	r.args = append(r.args, args)
	return nil, nil
}

func TestNewExecutor(t *testing.T) {
	db := &recordingDB{}
	dest := &bytes.Buffer{}
	exec := DebugToWriter(NewExecutor(db), numbered, dest)

	_, err := exec.ExecContext(context.Background(), "UPDATE t SET a = $1", "x")
	require.NoError(t, err)

	rows, err := exec.QueryContext(context.Background(), "SELECT $1", 1)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.Nil(t, rows)

	require.Equal(t, []string{"UPDATE t SET a = $1", "SELECT $1"}, db.queries)
	require.Equal(t, [][]any{{"x"}, {1}}, db.args)
	require.Equal(t, "UPDATE t SET a = 'x'\n\nSELECT 1\n\n", dest.String())
}
