package compute

import (
	"context"

	"github.com/jonwraymond/toolcompute/datum"
)

// Compare compares left and right element-wise with the operator in opts.
// The options are forwarded to the invoker unchanged.
func Compare(ctx context.Context, left, right datum.Datum, opts CompareOptions, ectx *ExecContext) (datum.Datum, error) {
	return CallFunction(ctx, CompareFunctionName(opts.Op), []datum.Datum{left, right}, opts, ectx)
}
