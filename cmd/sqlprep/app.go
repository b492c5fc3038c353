package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/stephenafamo/sqlprep"
	"github.com/stephenafamo/sqlprep/internal/config"
	"github.com/stephenafamo/sqlprep/internal/logging"
	"github.com/urfave/cli/v2"
)

var errNoQuery = errors.New("no query given: pass it as an argument, with --file or on stdin")

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "sqlprep",
		Usage:     "Inline or rebind the parameters of a SQL statement",
		UsageText: "sqlprep [-c FILE] inline|bind [options] [QUERY]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		// JSON arguments contain commas
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or disabled",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "inline",
				Usage:     "Replace every placeholder with the literal of its value",
				ArgsUsage: "[QUERY]",
				Flags:     queryFlags(),
				Action:    runInline,
			},
			{
				Name:      "bind",
				Usage:     "Rewrite the placeholders, optionally for another dialect, and list the values",
				ArgsUsage: "[QUERY]",
				Flags: append(queryFlags(),
					&cli.StringFlag{
						Name:  "to",
						Usage: "Write placeholders for `DIALECT` instead of the input dialect",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the query and values as a JSON object",
					},
				),
				Action: runBind,
			},
		},
	}
}

func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dialect",
			Aliases: []string{"d"},
			Usage:   "One of " + strings.Join(config.Dialects, ", "),
		},
		&cli.StringFlag{
			Name:  "dsn",
			Usage: "Derive the dialect from a connection string",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read the query from `FILE`",
		},
		&cli.StringSliceFlag{
			Name:    "arg",
			Aliases: []string{"a"},
			Usage:   "A value as JSON, e.g. 1, \"text\", null. Repeat in placeholder order",
		},
		&cli.StringFlag{
			Name:  "args-file",
			Usage: "Read the values from a JSON array in `FILE`",
		},
	}
}

// statement is what both commands work on
type statement struct {
	query  string
	values sqlprep.Values
	qb     sqlprep.QueryBuilder
}

func loadStatement(c *cli.Context) (*statement, error) {
	overrides := map[string]any{}
	for flag, key := range map[string]string{
		"dialect":    "dialect",
		"dsn":        "dsn",
		"log-level":  "logging.level",
		"log-format": "logging.format",
	} {
		if c.IsSet(flag) {
			overrides[key] = c.String(flag)
		}
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: c.App.ErrWriter,
	})
	logger := logging.Logger()

	name, err := cfg.ResolveDialect()
	if err != nil {
		return nil, err
	}

	qb, err := queryBuilder(name)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("dialect", name).Msg("dialect resolved")

	query, err := readQuery(c)
	if err != nil {
		return nil, err
	}

	values, err := readValues(c)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("values", len(values)).Int("bytes", len(query)).Msg("statement read")

	return &statement{query: query, values: values, qb: qb}, nil
}

func readQuery(c *cli.Context) (string, error) {
	if path := c.String("file"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading query: %w", err)
		}
		return string(b), nil
	}

	if c.Args().Present() {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	if c.App.Reader == nil {
		return "", errNoQuery
	}

	b, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("reading query from stdin: %w", err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return "", errNoQuery
	}

	return string(b), nil
}

func readValues(c *cli.Context) (sqlprep.Values, error) {
	if path := c.String("args-file"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading args: %w", err)
		}
		return decodeArgList(b)
	}

	raw := c.StringSlice("arg")
	values := make(sqlprep.Values, len(raw))
	for i, arg := range raw {
		v, err := decodeArg([]byte(arg))
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

func runInline(c *cli.Context) error {
	stmt, err := loadStatement(c)
	if err != nil {
		return err
	}

	sql, err := sqlprep.InjectParameters(stmt.query, stmt.values, stmt.qb)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, sql)
	return err
}

func runBind(c *cli.Context) error {
	stmt, err := loadStatement(c)
	if err != nil {
		return err
	}

	to := stmt.qb
	if c.IsSet("to") {
		if to, err = queryBuilder(c.String("to")); err != nil {
			return err
		}
	}

	sql, values, err := sqlprep.Rebind(stmt.query, stmt.values, stmt.qb, to)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, sql, values)
	}

	if _, err := fmt.Fprintln(c.App.Writer, sql); err != nil {
		return err
	}
	for i, v := range values {
		if _, err := fmt.Fprintf(c.App.Writer, "%d: %s: %s\n", i+1, v.Kind(), v); err != nil {
			return err
		}
	}

	return nil
}

type bindOutput struct {
	Query string `json:"query"`
	Args  []any  `json:"args"`
}

func writeJSON(w io.Writer, sql string, values sqlprep.Values) error {
	out := bindOutput{Query: sql, Args: make([]any, len(values))}
	for i, v := range values {
		arg, err := jsonArg(v)
		if err != nil {
			return fmt.Errorf("arg %d: %w", i+1, err)
		}
		out.Args[i] = arg
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
