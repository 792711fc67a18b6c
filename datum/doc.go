// Package datum defines the value model exchanged with the compute facade.
//
// A [Datum] is an immutable scalar, array or chunked array tagged with a
// runtime [DataType]. Type equality is structural ([TypeEqual]); encoded types
// such as [DictionaryType] expose their decoded element type through the
// [ValueTyper] capability, queried with [ValueTypeOf].
//
// The concrete values in this package ([Scalar], [Array], [ChunkedArray])
// carry enough information for name selection and argument validation, not
// a columnar memory layout.
package datum
