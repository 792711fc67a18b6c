package compute

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonwraymond/toolcompute/datum"
)

// Invoker executes a named function against arguments.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: implementations should honor cancellation if they support it.
// - Errors: any failure is returned to the facade caller unchanged.
// - Ownership: args and opts are read-only.
type Invoker interface {
	Invoke(ctx context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error)
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(ctx context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error) {
	return f(ctx, name, args, opts, ectx)
}

// ExecContext carries the engine handles used by a call. It is read-only
// once constructed and may be shared across goroutines.
type ExecContext struct {
	id      string
	invoker Invoker
	logger  Logger
}

// ExecOption is a functional option for configuring an ExecContext.
type ExecOption func(*ExecContext)

// WithInvoker sets the invoker. Defaults to GetFunctionRegistry().
func WithInvoker(inv Invoker) ExecOption {
	return func(c *ExecContext) {
		c.invoker = inv
	}
}

// WithLogger sets the dispatch logger. Defaults to a no-op logger.
func WithLogger(l Logger) ExecOption {
	return func(c *ExecContext) {
		c.logger = l
	}
}

// WithID sets the correlation ID included in log lines. Defaults to a random
// UUID.
func WithID(id string) ExecOption {
	return func(c *ExecContext) {
		c.id = id
	}
}

// NewExecContext creates an ExecContext with the given options.
func NewExecContext(opts ...ExecOption) *ExecContext {
	c := &ExecContext{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.applyDefaults()
	return c
}

// applyDefaults sets default values for unset fields.
func (c *ExecContext) applyDefaults() {
	if c.invoker == nil {
		c.invoker = GetFunctionRegistry()
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
}

// ID returns the correlation ID.
func (c *ExecContext) ID() string { return c.id }

// Invoker returns the invoker.
func (c *ExecContext) Invoker() Invoker { return c.invoker }

// Logger returns the logger.
func (c *ExecContext) Logger() Logger { return c.logger }

var (
	defaultExecOnce sync.Once
	defaultExec     *ExecContext
)

// DefaultExecContext returns the process-wide context used when a call passes
// a nil ExecContext. Its invoker is GetFunctionRegistry().
func DefaultExecContext() *ExecContext {
	defaultExecOnce.Do(func() {
		defaultExec = NewExecContext(WithID("default"))
	})
	return defaultExec
}

// CallFunction invokes the named function exactly once through the context's
// invoker and returns its result and error unchanged. A nil ectx selects
// DefaultExecContext().
func CallFunction(ctx context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error) {
	if ectx == nil {
		ectx = DefaultExecContext()
	}
	if ectx.invoker == nil {
		return nil, ErrNoInvoker
	}
	if logger := ectx.logger; logger != nil {
		if opts != nil {
			logger.Logf("compute[%s]: call %s with %d args (%s)", ectx.id, name, len(args), opts.TypeName())
		} else {
			logger.Logf("compute[%s]: call %s with %d args", ectx.id, name, len(args))
		}
	}
	return ectx.invoker.Invoke(ctx, name, args, opts, ectx)
}
