// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionResponse reports whether the presented token is still valid.
type SessionResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

// BookingResponse is returned by a successful booking.
type BookingResponse struct {
	Message string `json:"message"`
	Total   int64  `json:"total"`
}

// MessageResponse is a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
