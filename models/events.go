// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookingCreatedEvent is published after a booking has been committed.
// It carries enough data for downstream consumers to notify the guest
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   int64  `json:"bookingId"`
	UserID      int64  `json:"userId"`
	RoomID      int64  `json:"roomId"`
	RoomCount   int64  `json:"roomCount"`
	Total       int64  `json:"total"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	BookingDate string `json:"bookingDate"`
}
