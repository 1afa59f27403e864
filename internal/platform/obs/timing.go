// Package obs holds the minimal observability helpers shared by the
// quoting pipeline: per-operation timing and request-ID propagation.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the request id through geocode, routing and quote
// operations so their timing lines can be correlated with the access log.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation, tagged with the request id and the
// error the operation ultimately returned. Use with named error returns:
//
//	defer obs.Time(ctx, "quote.Resolve")(&err)
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		ms := time.Since(start).Milliseconds()

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, op, ms, *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, op, ms)
	}
}
