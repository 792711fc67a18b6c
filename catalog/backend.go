package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/toolcompute/compute"
	"github.com/jonwraymond/toolcompute/datum"
)

// Errors returned by Backend.
var (
	ErrToolNotFound    = errors.New("tool not found in backend")
	ErrBackendDisabled = errors.New("backend disabled")
	ErrInvalidArgs     = errors.New("invalid tool arguments")
)

// Argument keys understood by Backend.Execute.
const (
	ArgValues  = "args"
	ArgOptions = "options"
)

// HandlerFunc is the function signature for local tool handlers.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// Backend runs catalogue tools through the compute facade. Its Execute
// argument map holds the argument values under "args" ([]datum.Datum or
// []any of datum.Datum) and optional compute.FunctionOptions under
// "options". Options of a type the tool does not take are rejected with
// ErrInvalidArgs. Arithmetic tools take ArithmeticOptions, and CheckOverflow
// selects the checked variant.
//
// Backend is safe for concurrent use.
type Backend struct {
	name    string
	ectx    *compute.ExecContext
	mu      sync.RWMutex
	enabled bool
}

// NewBackend creates an enabled backend that dispatches through ectx.
// A nil ectx selects compute.DefaultExecContext().
func NewBackend(ectx *compute.ExecContext) *Backend {
	return &Backend{name: Namespace, ectx: ectx, enabled: true}
}

// Kind returns the backend kind.
func (b *Backend) Kind() string { return "local" }

// Name returns the backend instance name.
func (b *Backend) Name() string { return b.name }

// Enabled returns whether the backend is enabled.
func (b *Backend) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}

// SetEnabled enables or disables the backend.
func (b *Backend) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// ListTools returns the catalogue tools.
func (b *Backend) ListTools(_ context.Context) ([]model.Tool, error) {
	return Tools(), nil
}

// Execute runs the named catalogue function.
func (b *Backend) Execute(ctx context.Context, tool string, args map[string]any) (any, error) {
	if !b.Enabled() {
		return nil, ErrBackendDisabled
	}
	doc, ok := compute.LookupFunction(tool)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}

	values, err := decodeValues(args[ArgValues])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgs, tool, err)
	}
	if !doc.Arity.Accepts(len(values)) {
		return nil, fmt.Errorf("%w: %s takes %s arguments, got %d", ErrInvalidArgs, tool, doc.Arity, len(values))
	}
	opts, err := decodeOptions(args[ArgOptions])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgs, tool, err)
	}
	if err := checkOptions(doc, opts); err != nil {
		return nil, fmt.Errorf("%w: %s %v", ErrInvalidArgs, tool, err)
	}

	return b.dispatch(ctx, doc, tool, values, opts)
}

func (b *Backend) dispatch(ctx context.Context, doc compute.FunctionDoc, tool string, values []datum.Datum, opts compute.FunctionOptions) (datum.Datum, error) {
	switch doc.Family {
	case compute.FamilySetLookup:
		lookup, ok := opts.(compute.SetLookupOptions)
		if !ok {
			return nil, fmt.Errorf("%w: %s requires SetLookupOptions", ErrInvalidArgs, tool)
		}
		if tool == compute.FuncIndexIn {
			return compute.IndexIn(ctx, values[0], lookup, b.ectx)
		}
		return compute.IsIn(ctx, values[0], lookup, b.ectx)

	case compute.FamilyComparison:
		op, _ := compute.ParseCompareOperator(tool)
		if given, ok := opts.(compute.CompareOptions); ok && given.Op != op {
			return nil, fmt.Errorf("%w: %s given operator %s", ErrInvalidArgs, tool, given.Op)
		}
		return compute.Compare(ctx, values[0], values[1], compute.CompareOptions{Op: op}, b.ectx)

	case compute.FamilyAggregate:
		agg := compute.DefaultElementWiseAggregateOptions()
		if given, ok := opts.(compute.ElementWiseAggregateOptions); ok {
			agg = given
		}
		if tool == compute.FuncElementWiseMin {
			return compute.ElementWiseMin(ctx, values, agg, b.ectx)
		}
		return compute.ElementWiseMax(ctx, values, agg, b.ectx)

	case compute.FamilyArithmetic:
		checked := tool == doc.CheckedName
		if given, ok := opts.(compute.ArithmeticOptions); ok && given.CheckOverflow {
			checked = true
		}
		fn := compute.ArithmeticFunction{Name: doc.Name, CheckedName: doc.CheckedName}
		return compute.CallFunction(ctx, fn.Select(checked), values, nil, b.ectx)

	default:
		return compute.CallFunction(ctx, tool, values, nil, b.ectx)
	}
}

// Handlers returns one handler per catalogue tool, keyed by HandlerName,
// for use with local handler registries.
func (b *Backend) Handlers() map[string]HandlerFunc {
	tools := Tools()
	out := make(map[string]HandlerFunc, len(tools))
	for _, tool := range tools {
		name := tool.Name
		out[HandlerName(name)] = func(ctx context.Context, args map[string]any) (any, error) {
			return b.Execute(ctx, name, args)
		}
	}
	return out
}

// Start is a no-op.
func (b *Backend) Start(_ context.Context) error { return nil }

// Stop is a no-op.
func (b *Backend) Stop() error { return nil }

func decodeValues(raw any) ([]datum.Datum, error) {
	switch v := raw.(type) {
	case nil:
		return nil, errors.New("missing \"args\"")
	case []datum.Datum:
		for i, d := range v {
			if datum.IsNil(d) {
				return nil, fmt.Errorf("argument %d is nil", i)
			}
		}
		return v, nil
	case []any:
		out := make([]datum.Datum, len(v))
		for i, item := range v {
			d, ok := item.(datum.Datum)
			if !ok || datum.IsNil(d) {
				return nil, fmt.Errorf("argument %d is %T, want datum.Datum", i, item)
			}
			out[i] = d
		}
		return out, nil
	default:
		return nil, fmt.Errorf("\"args\" is %T, want a list of datum.Datum", raw)
	}
}

// checkOptions rejects options of a type the tool does not take.
func checkOptions(doc compute.FunctionDoc, opts compute.FunctionOptions) error {
	if opts == nil {
		return nil
	}
	want := optionsType(doc)
	if want == "" {
		return fmt.Errorf("takes no options, got %s", opts.TypeName())
	}
	if opts.TypeName() != want {
		return fmt.Errorf("takes %s, got %s", want, opts.TypeName())
	}
	return nil
}

func decodeOptions(raw any) (compute.FunctionOptions, error) {
	if raw == nil {
		return nil, nil
	}
	opts, ok := raw.(compute.FunctionOptions)
	if !ok {
		return nil, fmt.Errorf("\"options\" is %T, want compute.FunctionOptions", raw)
	}
	return opts, nil
}
