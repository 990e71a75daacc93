// Package audit emits append-only event lines for the actions that change
// or guard money: logins, deposits, withdrawals, transfers and their
// rejections. Display-only; nothing reads these back.
package audit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pollywolly.org/internal/obs"
)

type ctxKey string

const sessionIDKey ctxKey = "audit_session_id"

// WithSessionID attaches the interactive session identifier to the context
// for audit logging.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// sessionIDFromContext extracts the audit session id from context if present.
func sessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

// LogEvent writes an audit entry enriched with session context.
func LogEvent(ctx context.Context, event string, fields map[string]any) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return errors.New("event name is required")
	}

	entry := logrus.Fields{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"type":  "audit",
		"event": event,
	}
	if sid := sessionIDFromContext(ctx); sid != "" {
		entry["session_id"] = sid
	}
	if len(fields) > 0 {
		copyFields := make(map[string]any, len(fields))
		for k, v := range fields {
			copyFields[k] = v
		}
		entry["fields"] = copyFields
	} else {
		entry["fields"] = map[string]any{}
	}

	obs.Logger().WithFields(entry).Info(event)
	return nil
}
