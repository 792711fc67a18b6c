package compute

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/toolcompute/datum"
)

// Kernel executes a function. Kernels are supplied by the engine; the
// registry only resolves and dispatches to them.
type Kernel func(ctx context.Context, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error)

// Function is a named, registered kernel.
type Function struct {
	Name   string
	Arity  Arity
	Kernel Kernel
}

// FunctionRegistry is a name-keyed Invoker. It is safe for concurrent use.
type FunctionRegistry struct {
	mu        sync.RWMutex
	functions map[string]Function
}

// NewFunctionRegistry creates an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]Function),
	}
}

var (
	globalRegistryOnce sync.Once
	globalRegistry     *FunctionRegistry
)

// GetFunctionRegistry returns the process-wide registry used by
// DefaultExecContext. It starts empty.
func GetFunctionRegistry() *FunctionRegistry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewFunctionRegistry()
	})
	return globalRegistry
}

// Register adds a function to the registry.
func (r *FunctionRegistry) Register(fn Function) error {
	if fn.Name == "" {
		return fmt.Errorf("function name is required")
	}
	if fn.Kernel == nil {
		return fmt.Errorf("function %s: kernel is nil", fn.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.functions[fn.Name]; exists {
		return fmt.Errorf("%w: %s", ErrFunctionExists, fn.Name)
	}
	r.functions[fn.Name] = fn
	return nil
}

// Unregister removes a function from the registry.
func (r *FunctionRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.functions, name)
}

// Get retrieves a function by name.
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// Len returns the number of registered functions.
func (r *FunctionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}

// Names returns function names sorted for deterministic output.
func (r *FunctionRegistry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.functions))
	for name := range r.functions {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Invoke resolves name, checks the argument count against the declared arity
// and runs the kernel outside the registry lock.
func (r *FunctionRegistry) Invoke(ctx context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error) {
	fn, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}
	if !fn.Arity.Accepts(len(args)) {
		return nil, fmt.Errorf("%w: %s got %d, want %s", ErrArity, name, len(args), fn.Arity)
	}
	return fn.Kernel(ctx, args, opts, ectx)
}
