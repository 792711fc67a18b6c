package compute

import (
	"fmt"

	"github.com/jonwraymond/toolcompute/datum"
)

// FunctionOptions is the closed set of per-family option aggregates passed to
// an Invoker. Only the types in this package implement it.
type FunctionOptions interface {
	// TypeName returns the option family name, e.g. "CompareOptions".
	TypeName() string

	isFunctionOptions()
}

// ArithmeticOptions controls overflow checking for arithmetic functions.
type ArithmeticOptions struct {
	// CheckOverflow selects the checked variant of the function, which
	// reports integer overflow as an error instead of wrapping.
	CheckOverflow bool
}

// TypeName returns "ArithmeticOptions".
func (ArithmeticOptions) TypeName() string { return "ArithmeticOptions" }
func (ArithmeticOptions) isFunctionOptions() {}

// CompareOperator is the closed set of comparison operators.
type CompareOperator int8

// Comparison operators.
const (
	Equal CompareOperator = iota
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	numCompareOperators
)

// String returns the canonical function name of the operator, or a
// placeholder for values outside the enumeration.
func (op CompareOperator) String() string {
	if !op.valid() {
		return fmt.Sprintf("CompareOperator(%d)", int(op))
	}
	return compareFunctionNames[op]
}

func (op CompareOperator) valid() bool {
	return op >= 0 && op < numCompareOperators
}

// CompareOptions selects the comparison operator.
type CompareOptions struct {
	Op CompareOperator
}

// TypeName returns "CompareOptions".
func (CompareOptions) TypeName() string { return "CompareOptions" }
func (CompareOptions) isFunctionOptions() {}

// SetLookupOptions carries the reference collection for is_in and index_in.
type SetLookupOptions struct {
	// ValueSet is the reference collection. It must be an array or chunked
	// array.
	ValueSet datum.Datum

	// SkipNulls makes nulls in the looked-up values never match, even if
	// ValueSet contains a null.
	SkipNulls bool
}

// NewSetLookupOptions wraps a bare value set into default options.
func NewSetLookupOptions(valueSet datum.Datum) SetLookupOptions {
	return SetLookupOptions{ValueSet: valueSet}
}

// TypeName returns "SetLookupOptions".
func (SetLookupOptions) TypeName() string { return "SetLookupOptions" }
func (SetLookupOptions) isFunctionOptions() {}

// ElementWiseAggregateOptions controls element_wise_max and element_wise_min.
type ElementWiseAggregateOptions struct {
	// SkipNulls ignores nulls among the arguments of each row. When false, a
	// null anywhere in the row yields null.
	SkipNulls bool
}

// DefaultElementWiseAggregateOptions returns options with SkipNulls set.
func DefaultElementWiseAggregateOptions() ElementWiseAggregateOptions {
	return ElementWiseAggregateOptions{SkipNulls: true}
}

// TypeName returns "ElementWiseAggregateOptions".
func (ElementWiseAggregateOptions) TypeName() string { return "ElementWiseAggregateOptions" }
func (ElementWiseAggregateOptions) isFunctionOptions() {}
