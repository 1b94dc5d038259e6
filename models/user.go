// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that can log in and own bookings.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON; clients learn it only through the token.
	UserID int64 `json:"-"`

	// Email is the unique login identifier. Lookups are exact-match.
	Email string `json:"email"`

	// Password carries the plain-text password when decoded from a login
	// request and the bcrypt hash when loaded from storage. It must never be
	// written to a response.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
