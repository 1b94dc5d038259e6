// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Public error messages. Clients may match on them, so they must not change.
const (
	msgInvalidJSON         = "Invalid JSON was passed"
	msgInvalidCredentials  = "Invalid email or password"
	msgUnauthorized        = "Unauthorized"
	msgRoomNotFound        = "Room not found"
	msgNotEnoughRooms      = "Not enough rooms available"
	msgInvalidData         = "invalid data provided"
	msgTooManyRequests     = "Too many requests"
	msgInternalServerError = "Internal server error"
	msgMethodNotAllowed    = "Method not allowed"
)

// Success messages.
const (
	msgBookingSuccessful = "Booking successful"
	msgLoggedOut         = "Logged out successfully"
)
