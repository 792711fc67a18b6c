package compute

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/jonwraymond/toolcompute/datum"
)

func constKernel(result datum.Datum) Kernel {
	return func(context.Context, []datum.Datum, FunctionOptions, *ExecContext) (datum.Datum, error) {
		return result, nil
	}
}

func TestFunctionRegistry_Register(t *testing.T) {
	reg := NewFunctionRegistry()
	fn := Function{Name: FuncAdd, Arity: Binary, Kernel: constKernel(nil)}

	if err := reg.Register(fn); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(fn); !errors.Is(err, ErrFunctionExists) {
		t.Errorf("Register() duplicate error = %v, want ErrFunctionExists", err)
	}
}

func TestFunctionRegistry_RegisterRejectsInvalid(t *testing.T) {
	reg := NewFunctionRegistry()

	if err := reg.Register(Function{Kernel: constKernel(nil)}); err == nil {
		t.Error("Register() should fail without a name")
	}
	if err := reg.Register(Function{Name: FuncAdd}); err == nil {
		t.Error("Register() should fail without a kernel")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestFunctionRegistry_GetAndUnregister(t *testing.T) {
	reg := NewFunctionRegistry()
	_ = reg.Register(Function{Name: FuncIsNull, Arity: Unary, Kernel: constKernel(nil)})

	got, ok := reg.Get(FuncIsNull)
	if !ok {
		t.Fatal("Get() returned false")
	}
	if got.Name != FuncIsNull {
		t.Errorf("Get().Name = %q, want %q", got.Name, FuncIsNull)
	}

	reg.Unregister(FuncIsNull)
	if _, ok := reg.Get(FuncIsNull); ok {
		t.Error("Get() should return false after Unregister()")
	}
}

func TestFunctionRegistry_Names(t *testing.T) {
	reg := NewFunctionRegistry()
	for _, name := range []string{FuncXor, FuncAdd, FuncMonth} {
		_ = reg.Register(Function{Name: name, Arity: Unary, Kernel: constKernel(nil)})
	}

	want := []string{FuncAdd, FuncMonth, FuncXor}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestFunctionRegistry_Invoke(t *testing.T) {
	result := datum.NewScalar(datum.Int64, int64(3))
	reg := NewFunctionRegistry()

	var gotArgs []datum.Datum
	var gotOpts FunctionOptions
	_ = reg.Register(Function{
		Name:  FuncElementWiseMax,
		Arity: VarArgs(1),
		Kernel: func(_ context.Context, args []datum.Datum, opts FunctionOptions, _ *ExecContext) (datum.Datum, error) {
			gotArgs, gotOpts = args, opts
			return result, nil
		},
	})

	args := []datum.Datum{int64Array(int64(1)), int64Array(int64(3))}
	opts := DefaultElementWiseAggregateOptions()
	got, err := reg.Invoke(context.Background(), FuncElementWiseMax, args, opts, nil)
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if got != result {
		t.Errorf("Invoke() = %v, want %v", got, result)
	}
	if !sameArgs(gotArgs, args) || gotOpts != opts {
		t.Errorf("kernel received (%v, %v), want (%v, %v)", gotArgs, gotOpts, args, opts)
	}
}

func TestFunctionRegistry_InvokeErrors(t *testing.T) {
	kernelErr := errors.New("overflow")
	reg := NewFunctionRegistry()
	_ = reg.Register(Function{Name: FuncAddChecked, Arity: Binary, Kernel: func(context.Context, []datum.Datum, FunctionOptions, *ExecContext) (datum.Datum, error) {
		return nil, kernelErr
	}})

	ctx := context.Background()
	two := []datum.Datum{int64Array(), int64Array()}

	if _, err := reg.Invoke(ctx, "no_such_function", two, nil, nil); !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("Invoke(unknown) error = %v, want ErrFunctionNotFound", err)
	}
	if _, err := reg.Invoke(ctx, FuncAddChecked, two[:1], nil, nil); !errors.Is(err, ErrArity) {
		t.Errorf("Invoke(1 arg) error = %v, want ErrArity", err)
	}
	if _, err := reg.Invoke(ctx, FuncAddChecked, two, nil, nil); err != kernelErr {
		t.Errorf("Invoke() error = %v, want kernel error", err)
	}
}

func TestFunctionRegistry_FacadeEndToEnd(t *testing.T) {
	reg := NewFunctionRegistry()
	var called []string
	var mu sync.Mutex
	record := func(name string) Kernel {
		return func(context.Context, []datum.Datum, FunctionOptions, *ExecContext) (datum.Datum, error) {
			mu.Lock()
			called = append(called, name)
			mu.Unlock()
			return datum.NewScalar(datum.Bool, true), nil
		}
	}
	for _, name := range []string{FuncSubtract, FuncSubtractChecked, FuncLessEqual} {
		_ = reg.Register(Function{Name: name, Arity: Binary, Kernel: record(name)})
	}
	ectx := NewExecContext(WithInvoker(reg))
	ctx := context.Background()
	a, b := int64Array(int64(1)), int64Array(int64(2))

	if _, err := Subtract(ctx, a, b, ArithmeticOptions{}, ectx); err != nil {
		t.Fatalf("Subtract() error = %v", err)
	}
	if _, err := Subtract(ctx, a, b, ArithmeticOptions{CheckOverflow: true}, ectx); err != nil {
		t.Fatalf("Subtract(checked) error = %v", err)
	}
	if _, err := Compare(ctx, a, b, CompareOptions{Op: LessEqual}, ectx); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if _, err := Negate(ctx, a, ArithmeticOptions{}, ectx); !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("Negate() error = %v, want ErrFunctionNotFound from the registry", err)
	}

	want := []string{FuncSubtract, FuncSubtractChecked, FuncLessEqual}
	if !reflect.DeepEqual(called, want) {
		t.Errorf("kernels called = %v, want %v", called, want)
	}
}

func TestFunctionRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewFunctionRegistry()
	_ = reg.Register(Function{Name: FuncAdd, Arity: Binary, Kernel: constKernel(nil)})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = reg.Invoke(context.Background(), FuncAdd, []datum.Datum{int64Array(), int64Array()}, nil, nil)
			_ = reg.Names()
		}()
	}
	wg.Wait()
}
