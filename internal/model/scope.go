package model

import (
	"context"

	"student-productivity/pkg/scope"
)

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID   string
	Username string
}

// NewScope builds a Scope from verified token claims.
func NewScope(p scope.Payload) Scope {
	return Scope{UserID: p.UserID, Username: p.Username}
}

// ScopeFromContext returns the caller stored by the auth middleware.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	p, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		return Scope{}, false
	}
	return NewScope(p), true
}
