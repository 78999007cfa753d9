package shared

import "context"

type sessionContextKey struct{}

// ContextWithSession attaches a session to the context. Embedding hosts that
// juggle more than one account use this to scope a single call to a
// different session than the one injected at construction.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the session attached to the context, nil when
// absent.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}
