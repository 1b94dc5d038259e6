// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookingRequest is the body of a booking request. UserID is never read from
// the body; it is filled in from the authenticated token.
type BookingRequest struct {
	UserID    int64  `json:"-"`
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	RoomCount int64  `json:"roomCount"`
}
