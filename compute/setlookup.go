package compute

import (
	"context"
	"fmt"

	"github.com/jonwraymond/toolcompute/datum"
)

// ValidateSetLookup checks that a lookup of values in opts.ValueSet is well
// typed. The value set must be array-like. Its element type must equal the
// values' type, or the dictionary value type when the values are
// dictionary-encoded, unless the value set is empty.
func ValidateSetLookup(values datum.Datum, opts SetLookupOptions) error {
	if !datum.IsArrayLike(opts.ValueSet) {
		kind := datum.KindNone
		if !datum.IsNil(opts.ValueSet) {
			kind = opts.ValueSet.Kind()
		}
		return fmt.Errorf("%w: set lookup value set must be Array or ChunkedArray, got %s", ErrInvalidArgument, kind)
	}
	if datum.IsNil(values) {
		return fmt.Errorf("%w: set lookup values are nil", ErrInvalidArgument)
	}

	if opts.ValueSet.Len() == 0 {
		return nil
	}

	valuesType := datum.ValueTypeOf(values.Type())
	if !datum.TypeEqual(valuesType, opts.ValueSet.Type()) {
		return &TypeMismatchError{
			ValuesType:   valuesType,
			ValueSetType: opts.ValueSet.Type(),
		}
	}
	return nil
}

func execSetLookup(ctx context.Context, name string, values datum.Datum, opts SetLookupOptions, ectx *ExecContext) (datum.Datum, error) {
	if err := ValidateSetLookup(values, opts); err != nil {
		return nil, err
	}
	return CallFunction(ctx, name, []datum.Datum{values}, opts, ectx)
}

// IsIn returns, for each element of values, whether it is contained in
// opts.ValueSet.
func IsIn(ctx context.Context, values datum.Datum, opts SetLookupOptions, ectx *ExecContext) (datum.Datum, error) {
	return execSetLookup(ctx, FuncIsIn, values, opts, ectx)
}

// IsInValueSet is IsIn with default options around valueSet.
func IsInValueSet(ctx context.Context, values, valueSet datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return execSetLookup(ctx, FuncIsIn, values, NewSetLookupOptions(valueSet), ectx)
}

// IndexIn returns, for each element of values, its index in opts.ValueSet,
// or null if absent.
func IndexIn(ctx context.Context, values datum.Datum, opts SetLookupOptions, ectx *ExecContext) (datum.Datum, error) {
	return execSetLookup(ctx, FuncIndexIn, values, opts, ectx)
}

// IndexInValueSet is IndexIn with default options around valueSet.
func IndexInValueSet(ctx context.Context, values, valueSet datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return execSetLookup(ctx, FuncIndexIn, values, NewSetLookupOptions(valueSet), ectx)
}
