package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	staffKey     contextKey = "staff"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// StaffFrom retrieves the authenticated staff username from the request context.
func StaffFrom(r *http.Request) string {
	if v, ok := r.Context().Value(staffKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the authenticated role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithStaff returns a new context with the staff username and role.
func ContextWithStaff(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, staffKey, username)
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
