package datum

import "fmt"

// Kind tags the shape of a Datum.
type Kind int

// Datum shapes.
const (
	KindNone Kind = iota
	KindScalar
	KindArray
	KindChunkedArray
)

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindChunkedArray:
		return "chunked_array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsArrayLike reports whether k is a contiguous or chunked array.
func (k Kind) IsArrayLike() bool {
	return k == KindArray || k == KindChunkedArray
}

// Datum is an immutable scalar, array or chunked array carrying a runtime
// type.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent reads.
// - Len returns 1 for scalars and the element count otherwise.
type Datum interface {
	Kind() Kind
	Type() DataType
	Len() int64
}

// IsNil reports whether d is nil or a nil *Scalar, *Array or *ChunkedArray.
func IsNil(d Datum) bool {
	switch v := d.(type) {
	case nil:
		return true
	case *Scalar:
		return v == nil
	case *Array:
		return v == nil
	case *ChunkedArray:
		return v == nil
	}
	return false
}

// IsArrayLike reports whether d is non-nil and array-like.
func IsArrayLike(d Datum) bool {
	return !IsNil(d) && d.Kind().IsArrayLike()
}

// Scalar is a single, possibly null, value.
type Scalar struct {
	typ   DataType
	value any
	valid bool
}

// NewScalar returns a valid scalar holding v.
func NewScalar(t DataType, v any) *Scalar {
	return &Scalar{typ: t, value: v, valid: true}
}

// NewNullScalar returns a null scalar of type t.
func NewNullScalar(t DataType) *Scalar {
	return &Scalar{typ: t}
}

// Kind returns KindScalar.
func (s *Scalar) Kind() Kind { return KindScalar }

// Type returns the scalar type.
func (s *Scalar) Type() DataType { return s.typ }

// Len returns 1.
func (s *Scalar) Len() int64 { return 1 }

// Value returns the held value, or nil for a null scalar.
func (s *Scalar) Value() any { return s.value }

// IsValid reports whether the scalar is non-null.
func (s *Scalar) IsValid() bool { return s.valid }

func (s *Scalar) String() string {
	if !s.valid {
		return fmt.Sprintf("%s null", typeString(s.typ))
	}
	return fmt.Sprintf("%s %v", typeString(s.typ), s.value)
}

// Array is a contiguous sequence of values. A nil element is null.
type Array struct {
	typ    DataType
	values []any
}

// NewArray returns an array of type t. The values slice is copied.
func NewArray(t DataType, values ...any) *Array {
	cp := make([]any, len(values))
	copy(cp, values)
	return &Array{typ: t, values: cp}
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// Type returns the element type.
func (a *Array) Type() DataType { return a.typ }

// Len returns the number of elements.
func (a *Array) Len() int64 { return int64(len(a.values)) }

// Value returns element i.
func (a *Array) Value(i int) any { return a.values[i] }

// IsNull reports whether element i is null.
func (a *Array) IsNull(i int) bool { return a.values[i] == nil }

// NullCount returns the number of null elements.
func (a *Array) NullCount() int64 {
	var n int64
	for _, v := range a.values {
		if v == nil {
			n++
		}
	}
	return n
}

func (a *Array) String() string {
	return fmt.Sprintf("%s%v", typeString(a.typ), a.values)
}

// ChunkedArray is a logical array split into chunks of the same type.
type ChunkedArray struct {
	typ    DataType
	chunks []*Array
}

// NewChunkedArray returns a chunked array of type t over the given chunks.
// It panics if a chunk's type differs from t.
func NewChunkedArray(t DataType, chunks ...*Array) *ChunkedArray {
	for i, c := range chunks {
		if !TypeEqual(c.Type(), t) {
			panic(fmt.Sprintf("datum: chunk %d has type %s, want %s", i, typeString(c.Type()), typeString(t)))
		}
	}
	cp := make([]*Array, len(chunks))
	copy(cp, chunks)
	return &ChunkedArray{typ: t, chunks: cp}
}

// Kind returns KindChunkedArray.
func (c *ChunkedArray) Kind() Kind { return KindChunkedArray }

// Type returns the element type.
func (c *ChunkedArray) Type() DataType { return c.typ }

// Len returns the total element count across chunks.
func (c *ChunkedArray) Len() int64 {
	var n int64
	for _, ch := range c.chunks {
		n += ch.Len()
	}
	return n
}

// Chunks returns the chunks. The returned slice must not be modified.
func (c *ChunkedArray) Chunks() []*Array { return c.chunks }
