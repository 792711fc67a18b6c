// Package compute provides a typed facade over a name-addressed function
// engine.
//
// Every operation in this package ends in a single call to [CallFunction],
// which hands a canonical function name, the argument values and optional
// [FunctionOptions] to the [Invoker] of an [ExecContext]. The facade never
// inspects or alters argument values; it only chooses names and validates
// arguments before delegating.
//
// # Name selection
//
//   - Arithmetic functions have an unchecked and a checked name. The
//     [ArithmeticOptions].CheckOverflow flag picks one (see
//     [ArithmeticFunction.Select]).
//   - [Compare] maps its [CompareOperator] to one of six names
//     (see [CompareFunctionName]).
//   - All other functions are bound to a single fixed name.
//
// [Functions] lists the full name table.
//
// # Set lookup
//
// [IsIn] and [IndexIn] validate their [SetLookupOptions] before delegating:
//
//   - the value set must be an array or chunked array
//   - dictionary-encoded values are compared by their dictionary value type
//   - an empty value set is compatible with any type
//   - otherwise the types must be structurally equal
//
// Validation failures match [ErrInvalidArgument]; type mismatches are
// reported as [*TypeMismatchError]. The invoker is not called in that case.
//
// # Invokers
//
// Any [Invoker] can back an ExecContext. [FunctionRegistry] is an in-process
// invoker that dispatches to registered [Kernel] functions. A nil ExecContext
// selects [DefaultExecContext], backed by [GetFunctionRegistry].
//
//	reg := compute.NewFunctionRegistry()
//	_ = reg.Register(compute.Function{Name: compute.FuncAdd, Arity: compute.Binary, Kernel: addKernel})
//	ectx := compute.NewExecContext(compute.WithInvoker(reg))
//
//	sum, err := compute.Add(ctx, a, b, compute.ArithmeticOptions{}, ectx)
//
// Errors from the invoker are returned unchanged.
package compute
