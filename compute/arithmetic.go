package compute

import (
	"context"

	"github.com/jonwraymond/toolcompute/datum"
)

// The overflow flag is consumed by name selection; the invoker receives no
// options for arithmetic calls.

func callArithmeticUnary(ctx context.Context, f ArithmeticFunction, arg datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, f.Select(opts.CheckOverflow), []datum.Datum{arg}, nil, ectx)
}

func callArithmeticBinary(ctx context.Context, f ArithmeticFunction, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, f.Select(opts.CheckOverflow), []datum.Datum{left, right}, nil, ectx)
}

// AbsoluteValue computes the absolute value of each element.
func AbsoluteValue(ctx context.Context, arg datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticUnary(ctx, AbsoluteValueFunction, arg, opts, ectx)
}

// Negate negates each element.
func Negate(ctx context.Context, arg datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticUnary(ctx, NegateFunction, arg, opts, ectx)
}

// Add adds the arguments element-wise.
func Add(ctx context.Context, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticBinary(ctx, AddFunction, left, right, opts, ectx)
}

// Subtract subtracts right from left element-wise.
func Subtract(ctx context.Context, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticBinary(ctx, SubtractFunction, left, right, opts, ectx)
}

// Multiply multiplies the arguments element-wise.
func Multiply(ctx context.Context, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticBinary(ctx, MultiplyFunction, left, right, opts, ectx)
}

// Divide divides left by right element-wise.
func Divide(ctx context.Context, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticBinary(ctx, DivideFunction, left, right, opts, ectx)
}

// Power raises left to the power of right element-wise.
func Power(ctx context.Context, left, right datum.Datum, opts ArithmeticOptions, ectx *ExecContext) (datum.Datum, error) {
	return callArithmeticBinary(ctx, PowerFunction, left, right, opts, ectx)
}

// ElementWiseMax returns, for each row, the maximum across args.
func ElementWiseMax(ctx context.Context, args []datum.Datum, opts ElementWiseAggregateOptions, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, FuncElementWiseMax, args, opts, ectx)
}

// ElementWiseMin returns, for each row, the minimum across args.
func ElementWiseMin(ctx context.Context, args []datum.Datum, opts ElementWiseAggregateOptions, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, FuncElementWiseMin, args, opts, ectx)
}
