package compute

import (
	"context"

	"github.com/jonwraymond/toolcompute/datum"
)

func callUnary(ctx context.Context, name string, arg datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, name, []datum.Datum{arg}, nil, ectx)
}

func callBinary(ctx context.Context, name string, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, name, []datum.Datum{left, right}, nil, ectx)
}

// Boolean functions

// Invert negates each boolean element.
func Invert(ctx context.Context, arg datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncInvert, arg, ectx)
}

// And is the boolean AND of left and right. A null on either side yields null.
func And(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncAnd, left, right, ectx)
}

// KleeneAnd is the boolean AND of left and right under Kleene logic:
// false AND null is false.
func KleeneAnd(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncAndKleene, left, right, ectx)
}

// Or is the boolean OR of left and right. A null on either side yields null.
func Or(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncOr, left, right, ectx)
}

// KleeneOr is the boolean OR of left and right under Kleene logic:
// true OR null is true.
func KleeneOr(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncOrKleene, left, right, ectx)
}

// Xor is the boolean XOR of left and right.
func Xor(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncXor, left, right, ectx)
}

// AndNot is left AND NOT right.
func AndNot(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncAndNot, left, right, ectx)
}

// KleeneAndNot is left AND NOT right under Kleene logic.
func KleeneAndNot(ctx context.Context, left, right datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncAndNotKleene, left, right, ectx)
}

// Validity functions

// IsValid reports, for each element, whether it is non-null.
func IsValid(ctx context.Context, arg datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncIsValid, arg, ectx)
}

// IsNull reports, for each element, whether it is null.
func IsNull(ctx context.Context, arg datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncIsNull, arg, ectx)
}

// IsNan reports, for each floating point element, whether it is NaN.
func IsNan(ctx context.Context, arg datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callUnary(ctx, FuncIsNan, arg, ectx)
}

// FillNull replaces nulls in values with fillValue.
func FillNull(ctx context.Context, values, fillValue datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return callBinary(ctx, FuncFillNull, values, fillValue, ectx)
}

// IfElse selects ifTrue where cond is true and ifFalse where it is false.
func IfElse(ctx context.Context, cond, ifTrue, ifFalse datum.Datum, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, FuncIfElse, []datum.Datum{cond, ifTrue, ifFalse}, nil, ectx)
}
