package logging

import (
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceHeaderRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

const (
	invalidTraceID = "00000000000000000000000000000000"
	invalidSpanID  = "0000000000000000"

	// sampledFlag is bit 0 of trace-flags; the other bits are reserved or vendor-defined.
	sampledFlag = 0x01
)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

// parseTraceparent returns ok=false for malformed headers, the reserved ff version,
// and all-zero trace or span IDs.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceHeaderRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	if m[1] == "ff" || m[2] == invalidTraceID || m[3] == invalidSpanID {
		return traceContext{}, false
	}
	flags, err := strconv.ParseUint(m[4], 16, 8)
	if err != nil {
		return traceContext{}, false
	}
	return traceContext{
		traceID: m[2],
		spanID:  m[3],
		sampled: flags&sampledFlag != 0,
	}, true
}

func traceFields(header string) []zap.Field {
	tc, ok := parseTraceparent(header)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", tc.traceID),
		zap.String("spanId", tc.spanID),
		zap.Bool("traceSampled", tc.sampled),
	}
}

func loggerWithTrace(base *zap.Logger, header, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
