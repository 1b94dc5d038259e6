// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: type-safe context keys, JSON response writing, JWT token
// issuing and verification, bcrypt password hashing and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's identifier.
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag which is false when the value is
// missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext retrieves the request trace id, or "" if none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
