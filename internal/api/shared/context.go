package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the key type for values this package stores in contexts.
type ContextKey string

const (
	// UserIDContextKey is the context key for the caller identity extracted
	// from the X-User-Id header.
	UserIDContextKey ContextKey = "userID"

	// RequestIDContextKey is the context key for the client-supplied
	// X-Request-Id header value.
	RequestIDContextKey ContextKey = "requestID"

	// TraceIDKey is the key for the server-generated trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// GetUserID retrieves the caller identity from the context, or "" when absent.
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetRequestID retrieves the client request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDContextKey).(string)
	if !ok {
		return ""
	}
	return requestID
}

// generateTraceID returns a 32-character hex string from crypto/rand. If the
// random source fails it falls back to a time-derived value rather than a
// static one.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"bytes_read", n)

		now := time.Now()
		binary.BigEndian.PutUint64(b[:8], uint64(now.UnixNano()))
		binary.BigEndian.PutUint32(b[8:12], uint32(now.Nanosecond()))
		binary.BigEndian.PutUint32(b[12:16], uint32(now.Unix()))
	}

	return hex.EncodeToString(b)
}
