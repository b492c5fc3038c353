package main

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/stephenafamo/sqlprep"
)

// decodeArg reads a single JSON value.
// Integral numbers become integers, objects and arrays become JSON values.
func decodeArg(b []byte) (sqlprep.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return sqlprep.Value{}, fmt.Errorf("%q is not valid JSON: %w", b, err)
	}
	if dec.More() {
		return sqlprep.Value{}, fmt.Errorf("%q holds more than one JSON value", b)
	}

	return argValue(v)
}

func decodeArgList(b []byte) (sqlprep.Values, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var list []any
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("args file must hold a JSON array: %w", err)
	}

	values := make(sqlprep.Values, len(list))
	for i, item := range list {
		v, err := argValue(item)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

func argValue(v any) (sqlprep.Value, error) {
	switch v := v.(type) {
	case nil:
		return sqlprep.Null(), nil
	case bool:
		return sqlprep.Bool(v), nil
	case string:
		return sqlprep.String(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return sqlprep.Int64(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return sqlprep.Value{}, fmt.Errorf("number %s: %w", v, err)
		}
		return sqlprep.Float64(f), nil
	case map[string]any, []any:
		return sqlprep.JSON(v)
	default:
		return sqlprep.Value{}, fmt.Errorf("unexpected JSON value %T", v)
	}
}

// jsonArg is the inverse of argValue for the --json output
func jsonArg(v sqlprep.Value) (any, error) {
	switch v.Kind() {
	case sqlprep.KindJSON:
		return json.RawMessage(v.AsJSON()), nil
	case sqlprep.KindFloat:
		// JSON has no NaN or infinity
		if f := v.AsFloat(); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%s cannot be written as JSON", v)
		}
		return v.AsFloat(), nil
	case sqlprep.KindBytes:
		return v.AsBytes(), nil
	default:
		return v.Value()
	}
}
