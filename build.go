package sqlprep

// MustBuild builds an expression and panics on error
// useful for initializing queries that need to be reused
func MustBuild(e Expression, qb QueryBuilder) (string, Values) {
	sql, values, err := Build(e, qb)
	if err != nil {
		panic(err)
	}

	return sql, values
}

// Build writes e with placeholders in qb's syntax and returns the collected values
func Build(e Expression, qb QueryBuilder) (string, Values, error) {
	w := CollectorFor(qb)
	if err := e.WriteSQL(w, qb); err != nil {
		return "", nil, err
	}

	return w.Parts()
}

// BuildInline writes e with every value inlined as a literal
func BuildInline(e Expression, qb QueryBuilder) (string, error) {
	w := NewStringWriter()
	if err := e.WriteSQL(w, qb); err != nil {
		return "", err
	}

	return w.Result()
}
