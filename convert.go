package sqlprep

import (
	"database/sql/driver"
	stdjson "encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid"
)

// UnsupportedTypeError is returned when a Go value has no [Value] representation
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot bind a value of type %s", e.Type)
}

// ValueOf converts a Go value into a [Value].
//
// Besides the basic types it understands time.Time, uuid.UUID, json.RawMessage,
// pointers (a nil pointer is NULL) and anything implementing driver.Valuer, which
// includes the sql.Null* types and the aarondl/opt containers.
func ValueOf(arg any) (Value, error) {
	switch v := arg.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int8(v), nil
	case int16:
		return Int16(v), nil
	case int32:
		return Int32(v), nil
	case int64:
		return Int64(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint8(v), nil
	case uint16:
		return Uint16(v), nil
	case uint32:
		return Uint32(v), nil
	case uint64:
		return Uint64(v), nil
	case float32:
		return Float32(v), nil
	case float64:
		return Float64(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Bytes(v), nil
	case time.Time:
		return DateTimeTZ(v), nil
	case uuid.UUID:
		return UUID(v), nil
	case uuid.NullUUID:
		if !v.Valid {
			return Null(), nil
		}
		return UUID(v.UUID), nil
	case stdjson.RawMessage:
		if v == nil {
			return Null(), nil
		}
		return RawJSON(v), nil
	case driver.Valuer:
		return valueOfValuer(v)
	}

	return valueOfReflect(reflect.ValueOf(arg))
}

// ValuesOf converts every argument with [ValueOf]
func ValuesOf(args ...any) (Values, error) {
	values := make(Values, len(args))
	for i, arg := range args {
		v, err := ValueOf(arg)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

// Nullable converts an optional value, mapping the null state to NULL
func Nullable[T any](v null.Val[T]) (Value, error) {
	val, ok := v.Get()
	if !ok {
		return Null(), nil
	}

	return ValueOf(val)
}

func valueOfValuer(valuer driver.Valuer) (Value, error) {
	rv := reflect.ValueOf(valuer)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null(), nil
	}

	dv, err := valuer.Value()
	if err != nil {
		return Value{}, fmt.Errorf("calling Value on %T: %w", valuer, err)
	}

	// only the types allowed by database/sql/driver are accepted here so that a
	// misbehaving Valuer cannot recurse forever
	switch v := dv.(type) {
	case nil:
		return Null(), nil
	case int64:
		return Int64(v), nil
	case float64:
		return Float64(v), nil
	case bool:
		return Bool(v), nil
	case []byte:
		return Bytes(v), nil
	case string:
		return String(v), nil
	case time.Time:
		return DateTimeTZ(v), nil
	default:
		return Value{}, fmt.Errorf("%T.Value returned %T which is not a driver.Value", valuer, dv)
	}
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null(), nil
		}
		return ValueOf(rv.Elem().Interface())
	}

	// named types over the basic kinds, e.g. `type Status string`
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindInt, bits: intBits(rv), i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{kind: KindUint, bits: intBits(rv), u: rv.Uint()}, nil
	case reflect.Float32:
		return Float32(float32(rv.Float())), nil
	case reflect.Float64:
		return Float64(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
	}

	return Value{}, &UnsupportedTypeError{Type: rv.Type()}
}

func intBits(rv reflect.Value) int {
	switch rv.Kind() {
	case reflect.Int, reflect.Uint:
		return 0
	default:
		return rv.Type().Bits()
	}
}
