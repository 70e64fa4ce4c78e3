package ctxutil

import "context"

type traceDataKey struct{}

// TraceData identifies one request across logs and spans.
type TraceData struct {
	TraceID   string
	RequestID string
	// Route is the matched route template, e.g. /store/carts/:id/items/.
	Route string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if ctx == nil {
		return nil
	}
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

// LogFields returns the request's trace identifiers as logger key-value pairs.
func LogFields(ctx context.Context) []interface{} {
	td := GetTraceData(ctx)
	if td == nil {
		return nil
	}
	var kv []interface{}
	if td.TraceID != "" {
		kv = append(kv, "trace_id", td.TraceID)
	}
	if td.RequestID != "" {
		kv = append(kv, "request_id", td.RequestID)
	}
	if td.Route != "" {
		kv = append(kv, "route", td.Route)
	}
	return kv
}
