// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations, one per
// HTTP status the booking API uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken is returned by authenticated calls made before Login.
	ErrNoToken = errors.New("no token, log in first")
)
