package compute_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/toolcompute/compute"
	"github.com/jonwraymond/toolcompute/datum"
)

func ExampleAdd() {
	reg := compute.NewFunctionRegistry()
	for _, name := range []string{compute.FuncAdd, compute.FuncAddChecked} {
		_ = reg.Register(compute.Function{
			Name:  name,
			Arity: compute.Binary,
			Kernel: func(_ context.Context, _ []datum.Datum, _ compute.FunctionOptions, _ *compute.ExecContext) (datum.Datum, error) {
				return datum.NewScalar(datum.String, name), nil
			},
		})
	}
	ectx := compute.NewExecContext(compute.WithInvoker(reg))

	a := datum.NewArray(datum.Int32, int32(1), int32(2))
	b := datum.NewArray(datum.Int32, int32(3), int32(4))

	unchecked, _ := compute.Add(context.Background(), a, b, compute.ArithmeticOptions{}, ectx)
	checked, _ := compute.Add(context.Background(), a, b, compute.ArithmeticOptions{CheckOverflow: true}, ectx)

	fmt.Println(unchecked.(*datum.Scalar).Value())
	fmt.Println(checked.(*datum.Scalar).Value())
	// Output:
	// add
	// add_checked
}

func ExampleIndexIn() {
	ectx := compute.NewExecContext(compute.WithInvoker(compute.NewFunctionRegistry()))

	values := datum.NewArray(datum.Int64, int64(1), int64(2))
	valueSet := datum.NewArray(datum.Float64, 1.0)

	_, err := compute.IndexInValueSet(context.Background(), values, valueSet, ectx)
	fmt.Println(errors.Is(err, compute.ErrInvalidArgument))
	fmt.Println(err)
	// Output:
	// true
	// invalid argument: array type didn't match type of values set: int64 vs double
}

func ExampleCompareFunctionName() {
	for _, op := range []compute.CompareOperator{compute.Equal, compute.GreaterEqual} {
		fmt.Println(compute.CompareFunctionName(op))
	}
	// Output:
	// equal
	// greater_equal
}
