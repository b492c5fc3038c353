package sqlprep

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/scan"
	"github.com/stephenafamo/scan/stdscan"
)

// StdInterface is an interface that *sql.DB, *sql.Tx and *sql.Conn satisfy
type StdInterface interface {
	stdscan.Queryer
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NewExecutor wraps a *sql.DB, *sql.Tx or *sql.Conn so that it can be
// passed to [Debug] and the other executor wrappers
func NewExecutor[T StdInterface](wrapped T) Executor {
	return stdExecutor[T]{wrapped: wrapped}
}

type stdExecutor[T StdInterface] struct {
	wrapped T
}

func (e stdExecutor[T]) QueryContext(ctx context.Context, query string, args ...any) (scan.Rows, error) {
	rows, err := e.wrapped.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (e stdExecutor[T]) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.wrapped.ExecContext(ctx, query, args...)
}
