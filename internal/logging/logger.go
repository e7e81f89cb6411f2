// Package logging configures the process-wide logrus logger and hands out
// request-scoped entries.
package logging

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// Setup applies the configured level and picks a formatter: JSON in
// production, human-readable text everywhere else.
func Setup(level, environment string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// WithRequestID stores a request ID in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID extracts the request ID from ctx, or "" when none was set.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// FromContext returns a log entry tagged with the request ID carried by ctx.
func FromContext(ctx context.Context) *log.Entry {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return log.WithField("request_id", rid)
}
