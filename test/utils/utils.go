package testutils

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stephenafamo/sqlprep"
)

type Testcases map[string]Testcase

// Also used to generate documentation
type Testcase struct {
	Query         string
	Values        []sqlprep.Value
	ExpectedSQL   string
	ExpectedError error
	Doc           string
}

var (
	oneOrMoreSpace      = regexp.MustCompile(`\s+`)
	spaceAroundBrackets = regexp.MustCompile(`\s*([\(|\)])\s*`)
)

func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = oneOrMoreSpace.ReplaceAllLiteralString(s, " ")
	s = spaceAroundBrackets.ReplaceAllString(s, " $1 ")
	return s
}

type FormatFunc = func(string) (string, error)

func QueryDiff(a, b string, clean FormatFunc) (string, error) {
	if clean == nil {
		clean = func(s string) (string, error) { return Clean(s), nil }
	}

	cleanA, err := clean(a)
	if err != nil {
		return "", fmt.Errorf("%s\n%w", a, err)
	}

	cleanB, err := clean(b)
	if err != nil {
		return "", fmt.Errorf("%s\n%w", b, err)
	}

	return cmp.Diff(cleanA, cleanB), nil
}

func ValuesDiff(a, b []sqlprep.Value) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

func ErrDiff(a, b error) string {
	return cmp.Diff(a, b, cmpopts.EquateErrors())
}

// RunInjectTests inlines the values of every case.
// The SQL is compared exactly since whitespace inside literals matters.
func RunInjectTests(t *testing.T, qb sqlprep.QueryBuilder, cases Testcases) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sql, err := sqlprep.InjectParameters(tc.Query, tc.Values, qb)
			if diff := ErrDiff(tc.ExpectedError, err); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
			if err != nil {
				if sql != "" {
					t.Fatalf("expected no partial result, got %q", sql)
				}
				return
			}
			if diff := cmp.Diff(tc.ExpectedSQL, sql); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
		})
	}
}

// RunReinjectTests inlines the values of every case, then injects the output
// again with no values. Inlined SQL has no placeholders left, so the second
// pass must return it unchanged.
func RunReinjectTests(t *testing.T, qb sqlprep.QueryBuilder, cases Testcases) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			inlined, err := sqlprep.InjectParameters(tc.Query, tc.Values, qb)
			if err != nil {
				t.Fatalf("error: %v", err)
			}

			again, err := sqlprep.InjectParameters(inlined, nil, qb)
			if err != nil {
				t.Fatalf("reinject %q: %v", inlined, err)
			}
			if diff := cmp.Diff(inlined, again); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
		})
	}
}

type ExpressionTestcases map[string]ExpressionTestcase

// Also used to generate documentation
type ExpressionTestcase struct {
	Expression     sqlprep.Expression
	ExpectedSQL    string
	ExpectedValues []sqlprep.Value
	ExpectedInline string
	ExpectedError  error
	Doc            string
}

// RunExpressionTests builds every expression twice: once collecting the
// values and once with the values inlined (when ExpectedInline is set)
func RunExpressionTests(t *testing.T, qb sqlprep.QueryBuilder, cases ExpressionTestcases) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sql, values, err := sqlprep.Build(tc.Expression, qb)

			if diff := ErrDiff(tc.ExpectedError, err); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
			if err != nil {
				return
			}
			if diff, _ := QueryDiff(tc.ExpectedSQL, sql, nil); diff != "" {
				fmt.Println(sql)
				fmt.Println(values)
				t.Fatalf("diff: %s", diff)
			}
			if diff := ValuesDiff(tc.ExpectedValues, values); diff != "" {
				t.Fatalf("diff: %s", diff)
			}

			if tc.ExpectedInline == "" {
				return
			}
			inline, err := sqlprep.BuildInline(tc.Expression, qb)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if diff, _ := QueryDiff(tc.ExpectedInline, inline, nil); diff != "" {
				t.Fatalf("diff: %s", diff)
			}
		})
	}
}
