package sqlprep

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofrs/uuid"
)

// Kind identifies the variant held by a [Value]
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindDate
	KindTime
	KindDateTime
	KindDateTimeTZ
	KindUUID
	KindJSON
)

var kindNames = [...]string{
	KindNull:       "null",
	KindBool:       "bool",
	KindInt:        "int",
	KindUint:       "uint",
	KindFloat:      "float",
	KindString:     "string",
	KindBytes:      "bytes",
	KindDate:       "date",
	KindTime:       "time",
	KindDateTime:   "datetime",
	KindDateTimeTZ: "datetimetz",
	KindUUID:       "uuid",
	KindJSON:       "json",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single bound parameter.
// The zero Value is NULL.
type Value struct {
	kind Kind
	// width in bits for numeric kinds, 0 means the platform int
	bits int

	i   int64
	u   uint64
	f   float64
	s   string
	b   []byte
	t   time.Time
	uid uuid.UUID
}

func Null() Value { return Value{} }

func Bool(v bool) Value {
	if v {
		return Value{kind: KindBool, u: 1}
	}
	return Value{kind: KindBool}
}

func Int(v int) Value     { return Value{kind: KindInt, i: int64(v)} }
func Int8(v int8) Value   { return Value{kind: KindInt, bits: 8, i: int64(v)} }
func Int16(v int16) Value { return Value{kind: KindInt, bits: 16, i: int64(v)} }
func Int32(v int32) Value { return Value{kind: KindInt, bits: 32, i: int64(v)} }
func Int64(v int64) Value { return Value{kind: KindInt, bits: 64, i: v} }

func Uint(v uint) Value     { return Value{kind: KindUint, u: uint64(v)} }
func Uint8(v uint8) Value   { return Value{kind: KindUint, bits: 8, u: uint64(v)} }
func Uint16(v uint16) Value { return Value{kind: KindUint, bits: 16, u: uint64(v)} }
func Uint32(v uint32) Value { return Value{kind: KindUint, bits: 32, u: uint64(v)} }
func Uint64(v uint64) Value { return Value{kind: KindUint, bits: 64, u: v} }

func Float32(v float32) Value { return Value{kind: KindFloat, bits: 32, f: float64(v)} }
func Float64(v float64) Value { return Value{kind: KindFloat, bits: 64, f: v} }

func String(v string) Value { return Value{kind: KindString, s: v} }

// Bytes keeps a reference to v; the slice must not be modified afterwards
func Bytes(v []byte) Value {
	if v == nil {
		v = []byte{}
	}
	return Value{kind: KindBytes, b: v}
}

// Date keeps only the calendar date of t
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// TimeOfDay keeps only the wall clock of t
func TimeOfDay(t time.Time) Value { return Value{kind: KindTime, t: t} }

// DateTime is a timestamp without a time zone
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// DateTimeTZ is a timestamp with a time zone offset
func DateTimeTZ(t time.Time) Value { return Value{kind: KindDateTimeTZ, t: t} }

func UUID(v uuid.UUID) Value { return Value{kind: KindUUID, uid: v} }

// JSON marshals v and holds the compact document
func JSON(v any) (Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("marshal json value: %w", err)
	}
	return RawJSON(b), nil
}

// RawJSON holds an already encoded JSON document
func RawJSON(doc []byte) Value {
	return Value{kind: KindJSON, s: string(doc)}
}

func (v Value) Kind() Kind { return v.kind }

// Bits is the declared width of a numeric value; 0 for the platform int
func (v Value) Bits() int { return v.bits }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() bool      { return v.u != 0 }
func (v Value) AsInt() int64      { return v.i }
func (v Value) AsUint() uint64    { return v.u }
func (v Value) AsFloat() float64  { return v.f }
func (v Value) AsString() string  { return v.s }
func (v Value) AsBytes() []byte   { return v.b }
func (v Value) AsTime() time.Time { return v.t }
func (v Value) AsUUID() uuid.UUID { return v.uid }
func (v Value) AsJSON() []byte    { return []byte(v.s) }

// Equal reports whether both values hold the same variant, width and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.bits != o.bits {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool, KindUint:
		return v.u == o.u
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString, KindJSON:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.b, o.b)
	case KindDate, KindTime, KindDateTime, KindDateTimeTZ:
		return v.t.Equal(o.t)
	case KindUUID:
		return v.uid == o.uid
	default:
		return false
	}
}

// Value implements the driver.Valuer interface
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.AsBool(), nil
	case KindInt:
		return v.i, nil
	case KindUint:
		if v.u > math.MaxInt64 {
			return strconv.FormatUint(v.u, 10), nil
		}
		return int64(v.u), nil
	case KindFloat:
		return v.f, nil
	case KindString:
		return v.s, nil
	case KindBytes:
		return v.b, nil
	case KindDate, KindTime, KindDateTime, KindDateTimeTZ:
		return v.t, nil
	case KindUUID:
		return v.uid.String(), nil
	case KindJSON:
		return []byte(v.s), nil
	default:
		return nil, fmt.Errorf("unknown value kind %s", v.kind)
	}
}

// String is a debugging representation, not SQL
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.AsBool())
	case KindInt:
		return v.numericName("int") + "(" + strconv.FormatInt(v.i, 10) + ")"
	case KindUint:
		return v.numericName("uint") + "(" + strconv.FormatUint(v.u, 10) + ")"
	case KindFloat:
		return v.numericName("float") + "(" + strconv.FormatFloat(v.f, 'g', -1, v.floatBits()) + ")"
	case KindString:
		return strconv.Quote(v.s)
	case KindBytes:
		return fmt.Sprintf("bytes(%X)", v.b)
	case KindDate, KindTime, KindDateTime, KindDateTimeTZ:
		return v.kind.String() + "(" + v.t.Format(time.RFC3339Nano) + ")"
	case KindUUID:
		return "uuid(" + v.uid.String() + ")"
	case KindJSON:
		return "json(" + v.s + ")"
	default:
		return v.kind.String()
	}
}

func (v Value) numericName(base string) string {
	if v.bits == 0 {
		return base
	}
	return base + strconv.Itoa(v.bits)
}

func (v Value) floatBits() int {
	if v.bits == 32 {
		return 32
	}
	return 64
}

// Values is an ordered list of bound parameters
type Values []Value

// Args converts the values into arguments for database/sql style APIs
func (vs Values) Args() []any {
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v
	}
	return args
}
