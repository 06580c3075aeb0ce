// Package tenant carries the tenant identity through request context.
// All store queries are scoped to the tenant resolved by the HTTP layer;
// the domain layer never sees tenant IDs explicitly.
package tenant

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNoTenantInContext is returned when a store operation runs without
// a resolved tenant.
var ErrNoTenantInContext = errors.New("tenant not found in context")

// WithTenant stores the tenant ID in context.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// FromContext returns the tenant ID from context.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// MustFromContext returns the tenant ID or an error if absent.
func MustFromContext(ctx context.Context) (string, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return "", ErrNoTenantInContext
	}
	return id, nil
}
