package compute

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jonwraymond/toolcompute/datum"
)

// invocation records a single Invoke call.
type invocation struct {
	name string
	args []datum.Datum
	opts FunctionOptions
	ectx *ExecContext
}

// recordingInvoker records every call and returns a fixed result.
type recordingInvoker struct {
	mu     sync.Mutex
	calls  []invocation
	result datum.Datum
	err    error
}

func (r *recordingInvoker) Invoke(_ context.Context, name string, args []datum.Datum, opts FunctionOptions, ectx *ExecContext) (datum.Datum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, invocation{name: name, args: args, opts: opts, ectx: ectx})
	return r.result, r.err
}

func (r *recordingInvoker) Calls() []invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]invocation, len(r.calls))
	copy(out, r.calls)
	return out
}

// onlyCall returns the single recorded call, failing the test otherwise.
func (r *recordingInvoker) onlyCall(t *testing.T) invocation {
	t.Helper()
	calls := r.Calls()
	if len(calls) != 1 {
		t.Fatalf("invoker called %d times, want 1", len(calls))
	}
	return calls[0]
}

// recordingLogger collects formatted log lines.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// newRecordingContext returns an ExecContext backed by a fresh recording
// invoker whose result is a boolean scalar.
func newRecordingContext(t *testing.T) (*ExecContext, *recordingInvoker) {
	t.Helper()
	inv := &recordingInvoker{result: datum.NewScalar(datum.Bool, true)}
	return NewExecContext(WithInvoker(inv), WithID("test")), inv
}

func int64Array(values ...any) *datum.Array {
	return datum.NewArray(datum.Int64, values...)
}

func sameArgs(got, want []datum.Datum) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
