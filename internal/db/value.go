package db

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type ValueType int

const (
	TypeNull ValueType = iota
	TypeInt
	TypeUint
	TypeFloat
	TypeText
	TypeBytes
	TypeTime
	TypeBool
	TypeDecimal
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInt:
		return "int"
	case TypeUint:
		return "uint"
	case TypeFloat:
		return "float"
	case TypeText:
		return "text"
	case TypeBytes:
		return "bytes"
	case TypeTime:
		return "time"
	case TypeBool:
		return "bool"
	case TypeDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value is a single result cell. Exactly one of the payload fields is
// meaningful, selected by Type.
type Value struct {
	Type ValueType

	i int64
	u uint64
	f float64
	s string
	b []byte
	t time.Time
}

func Null() Value            { return Value{Type: TypeNull} }
func Int(v int64) Value      { return Value{Type: TypeInt, i: v} }
func Uint(v uint64) Value    { return Value{Type: TypeUint, u: v} }
func Float(v float64) Value  { return Value{Type: TypeFloat, f: v} }
func Text(v string) Value    { return Value{Type: TypeText, s: v} }
func Bytes(v []byte) Value   { return Value{Type: TypeBytes, b: v} }
func Time(v time.Time) Value { return Value{Type: TypeTime, t: v} }
func Bool(v bool) Value      { return Value{Type: TypeBool, i: boolToInt(v)} }

// Decimal keeps an exact numeric literal as the backend wrote it.
func Decimal(v string) Value { return Value{Type: TypeDecimal, s: v} }

func (v Value) IsNull() bool    { return v.Type == TypeNull }
func (v Value) Int() int64      { return v.i }
func (v Value) Uint() uint64    { return v.u }
func (v Value) Float() float64  { return v.f }
func (v Value) Text() string    { return v.s }
func (v Value) Bytes() []byte   { return v.b }
func (v Value) Time() time.Time { return v.t }
func (v Value) Bool() bool      { return v.i != 0 }

// Interface returns the payload as a plain Go value, nil for NULL.
func (v Value) Interface() any {
	switch v.Type {
	case TypeInt:
		return v.i
	case TypeUint:
		return v.u
	case TypeFloat:
		return v.f
	case TypeText:
		return v.s
	case TypeBytes:
		return v.b
	case TypeTime:
		return v.t
	case TypeBool:
		return v.Bool()
	case TypeDecimal:
		return json.Number(v.s)
	default:
		return nil
	}
}

// String renders the value for terminal output.
func (v Value) String() string {
	switch v.Type {
	case TypeNull:
		return "NULL"
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeUint:
		return strconv.FormatUint(v.u, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeText, TypeDecimal:
		return v.s
	case TypeBytes:
		return string(v.b)
	case TypeTime:
		return v.t.Format(time.RFC3339Nano)
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeNull:
		return []byte("null"), nil
	case TypeInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case TypeUint:
		return strconv.AppendUint(nil, v.u, 10), nil
	case TypeFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return json.Marshal(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
		return json.Marshal(v.f)
	case TypeText:
		return json.Marshal(v.s)
	case TypeBytes:
		if utf8.Valid(v.b) {
			return json.Marshal(string(v.b))
		}
		return json.Marshal(base64.StdEncoding.EncodeToString(v.b))
	case TypeTime:
		return v.t.MarshalJSON()
	case TypeBool:
		return json.Marshal(v.Bool())
	case TypeDecimal:
		if data, err := json.Marshal(json.Number(v.s)); err == nil {
			return data, nil
		}
		return json.Marshal(v.s)
	default:
		return nil, fmt.Errorf("marshal value: unknown type %v", v.Type)
	}
}

// NewValue converts what the driver scanned into a Value. Drivers that
// speak a text protocol hand back []byte for most columns, so the column's
// database type name decides how those bytes are read.
func NewValue(raw any, dbType string) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case int64:
		return Int(v)
	case int32:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int:
		return Int(int64(v))
	case uint64:
		return Uint(v)
	case uint32:
		return Uint(uint64(v))
	case uint16:
		return Uint(uint64(v))
	case uint8:
		return Uint(uint64(v))
	case uint:
		return Uint(uint64(v))
	case float64:
		return Float(v)
	case float32:
		return Float(float64(v))
	case bool:
		return Bool(v)
	case time.Time:
		return Time(v)
	case []byte:
		return fromText(string(v), v, dbType)
	case string:
		return fromText(v, nil, dbType)
	default:
		return Text(fmt.Sprint(v))
	}
}

func fromText(s string, b []byte, dbType string) Value {
	upper := strings.ToUpper(strings.TrimSpace(dbType))

	switch {
	case strings.HasPrefix(upper, "UNSIGNED"):
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u)
		}
	case isIntegerType(upper):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u)
		}
	case isFloatType(upper):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	case isDecimalType(upper):
		if isNumberLiteral(s) {
			return Decimal(s)
		}
	case upper == "BOOL" || upper == "BOOLEAN":
		if v, err := strconv.ParseBool(s); err == nil {
			return Bool(v)
		}
	case isBinaryType(upper):
		if b == nil {
			b = []byte(s)
		}
		return Bytes(b)
	}
	return Text(s)
}

func isIntegerType(t string) bool {
	switch t {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR",
		"INT2", "INT4", "INT8", "SERIAL", "BIGSERIAL":
		return true
	}
	return false
}

func isFloatType(t string) bool {
	switch t {
	case "FLOAT", "DOUBLE", "REAL", "FLOAT4", "FLOAT8", "DOUBLE PRECISION":
		return true
	}
	return false
}

func isDecimalType(t string) bool {
	return strings.HasPrefix(t, "DECIMAL") || strings.HasPrefix(t, "NUMERIC")
}

// isNumberLiteral reports whether s can be written into JSON as a number.
// PostgreSQL's NaN and Infinity cannot.
func isNumberLiteral(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func isBinaryType(t string) bool {
	switch t {
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY",
		"BIT", "GEOMETRY", "BYTEA":
		return true
	}
	return false
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
