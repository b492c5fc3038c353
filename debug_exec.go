package sqlprep

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stephenafamo/scan"
)

// Executor runs queries. See [NewExecutor] to wrap a *sql.DB.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (scan.Rows, error)
}

// DebugPrinter is used to print queries.
// inlined is the query with its arguments written as literals; it is empty
// when the arguments could not be inlined.
type DebugPrinter interface {
	PrintQuery(query, inlined string, args ...any)
}

// an implementation of the [DebugPrinter]
type writerPrinter struct{ io.Writer }

// implements [DebugPrinter]
func (w writerPrinter) PrintQuery(query, inlined string, args ...any) {
	if inlined != "" {
		fmt.Fprintln(w.Writer, inlined)
		fmt.Fprintf(w.Writer, "\n")
		return
	}

	fmt.Fprintln(w.Writer, query)
	for i, arg := range args {
		val := arg
		if valuer, ok := val.(driver.Valuer); ok {
			val, _ = valuer.Value()
		}
		fmt.Fprintf(w.Writer, "%d: %T: %v\n", i, arg, val)
	}
	fmt.Fprintf(w.Writer, "\n")
}

// LogPrinter returns a [DebugPrinter] that logs every query at debug level
func LogPrinter(logger zerolog.Logger) DebugPrinter {
	return logPrinter{logger: logger}
}

type logPrinter struct {
	logger zerolog.Logger
}

func (l logPrinter) PrintQuery(query, inlined string, args ...any) {
	event := l.logger.Debug()
	if inlined != "" {
		event.Str("query", inlined).Msg("executing query")
		return
	}

	event.Str("query", query).Int("args", len(args)).Msg("executing query")
}

// Debug wraps an [Executor] and prints the queries to os.Stdout
// with their arguments inlined in the syntax of qb
func Debug(exec Executor, qb QueryBuilder) Executor {
	return DebugToWriter(exec, qb, nil)
}

// DebugToWriter wraps an existing [Executor] and writes all
// queries to the given [io.Writer]
// if w is nil, it fallsback to [os.Stdout]
func DebugToWriter(exec Executor, qb QueryBuilder, w io.Writer) Executor {
	if w == nil {
		w = os.Stdout
	}
	return DebugToPrinter(exec, qb, writerPrinter{w})
}

// DebugToPrinter wraps an existing [Executor] and writes all
// queries to the given [DebugPrinter]
// if p is nil, it fallsback to writing to [os.Stdout]
func DebugToPrinter(exec Executor, qb QueryBuilder, p DebugPrinter) Executor {
	if p == nil {
		p = writerPrinter{os.Stdout}
	}
	return debugExecutor{printer: p, qb: qb, exec: exec}
}

type debugExecutor struct {
	printer DebugPrinter
	qb      QueryBuilder
	exec    Executor
}

func (d debugExecutor) print(query string, args []any) {
	inlined, err := InjectArgs(query, args, d.qb)
	if err != nil {
		inlined = ""
	}
	d.printer.PrintQuery(query, inlined, args...)
}

func (d debugExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	d.print(query, args)
	return d.exec.ExecContext(ctx, query, args...)
}

func (d debugExecutor) QueryContext(ctx context.Context, query string, args ...any) (scan.Rows, error) {
	d.print(query, args)
	return d.exec.QueryContext(ctx, query, args...)
}
