package datum

import (
	"fmt"
	"strings"
)

// TypeID identifies the logical family of a DataType.
type TypeID int

// Known type identifiers.
const (
	NULL TypeID = iota
	BOOL
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	STRING
	BINARY
	DATE32
	TIMESTAMP
	DICTIONARY
)

var typeIDNames = map[TypeID]string{
	NULL:       "null",
	BOOL:       "bool",
	INT8:       "int8",
	INT16:      "int16",
	INT32:      "int32",
	INT64:      "int64",
	UINT8:      "uint8",
	UINT16:     "uint16",
	UINT32:     "uint32",
	UINT64:     "uint64",
	FLOAT32:    "float",
	FLOAT64:    "double",
	STRING:     "string",
	BINARY:     "binary",
	DATE32:     "date32",
	TIMESTAMP:  "timestamp",
	DICTIONARY: "dictionary",
}

// String returns the lowercase name of the type family.
func (id TypeID) String() string {
	if s, ok := typeIDNames[id]; ok {
		return s
	}
	return fmt.Sprintf("TypeID(%d)", int(id))
}

// DataType describes the runtime type of a Datum.
//
// Contract:
// - Equals is structural: parameterized types compare their parameters too.
// - String is stable and suitable for diagnostics.
type DataType interface {
	ID() TypeID
	String() string
	Equals(other DataType) bool
}

// ValueTyper is implemented by encoded types whose logical element type
// differs from their storage type, such as dictionary types.
type ValueTyper interface {
	ValueType() DataType
}

// ValueTypeOf returns the decoded value type of t, or t itself when t is not
// an encoded type.
func ValueTypeOf(t DataType) DataType {
	if vt, ok := t.(ValueTyper); ok {
		return vt.ValueType()
	}
	return t
}

// PrimitiveType is a parameterless type identified by its TypeID alone.
type PrimitiveType struct {
	id TypeID
}

// Primitive types.
var (
	Null    DataType = PrimitiveType{id: NULL}
	Bool    DataType = PrimitiveType{id: BOOL}
	Int8    DataType = PrimitiveType{id: INT8}
	Int16   DataType = PrimitiveType{id: INT16}
	Int32   DataType = PrimitiveType{id: INT32}
	Int64   DataType = PrimitiveType{id: INT64}
	Uint8   DataType = PrimitiveType{id: UINT8}
	Uint16  DataType = PrimitiveType{id: UINT16}
	Uint32  DataType = PrimitiveType{id: UINT32}
	Uint64  DataType = PrimitiveType{id: UINT64}
	Float32 DataType = PrimitiveType{id: FLOAT32}
	Float64 DataType = PrimitiveType{id: FLOAT64}
	String  DataType = PrimitiveType{id: STRING}
	Binary  DataType = PrimitiveType{id: BINARY}
	Date32  DataType = PrimitiveType{id: DATE32}
)

// ID returns the type identifier.
func (t PrimitiveType) ID() TypeID { return t.id }

// String returns the type name.
func (t PrimitiveType) String() string { return t.id.String() }

// Equals reports whether other is the same primitive type.
func (t PrimitiveType) Equals(other DataType) bool {
	o, ok := other.(PrimitiveType)
	return ok && o.id == t.id
}

// TimeUnit is the resolution of a timestamp.
type TimeUnit int

// Timestamp resolutions.
const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

// String returns the short unit suffix.
func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// TimestampType is a point in time with a resolution and optional time zone.
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

// ID returns TIMESTAMP.
func (t *TimestampType) ID() TypeID { return TIMESTAMP }

// String renders the type as timestamp[unit, tz=zone].
func (t *TimestampType) String() string {
	if t.TimeZone == "" {
		return fmt.Sprintf("timestamp[%s]", t.Unit)
	}
	return fmt.Sprintf("timestamp[%s, tz=%s]", t.Unit, t.TimeZone)
}

// Equals compares unit and time zone.
func (t *TimestampType) Equals(other DataType) bool {
	o, ok := other.(*TimestampType)
	if !ok || o == nil {
		return false
	}
	return o.Unit == t.Unit && o.TimeZone == t.TimeZone
}

// DictionaryType stores indices of IndexType into a dictionary of values of
// type Value.
type DictionaryType struct {
	IndexType DataType
	Value     DataType
	Ordered   bool
}

// ID returns DICTIONARY.
func (t *DictionaryType) ID() TypeID { return DICTIONARY }

// ValueType returns the decoded element type.
func (t *DictionaryType) ValueType() DataType { return t.Value }

// String renders the type with its index and value types.
func (t *DictionaryType) String() string {
	var b strings.Builder
	b.WriteString("dictionary<values=")
	b.WriteString(typeString(t.Value))
	b.WriteString(", indices=")
	b.WriteString(typeString(t.IndexType))
	if t.Ordered {
		b.WriteString(", ordered")
	}
	b.WriteString(">")
	return b.String()
}

// Equals compares index type, value type and ordering.
func (t *DictionaryType) Equals(other DataType) bool {
	o, ok := other.(*DictionaryType)
	if !ok || o == nil {
		return false
	}
	return o.Ordered == t.Ordered &&
		TypeEqual(o.IndexType, t.IndexType) &&
		TypeEqual(o.Value, t.Value)
}

// TypeEqual reports whether a and b are structurally equal.
// Two nil types are equal; a nil and a non-nil type are not.
func TypeEqual(a, b DataType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

func typeString(t DataType) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
