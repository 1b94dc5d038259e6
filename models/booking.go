// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookingDateLayout is the layout of [Booking.BookingDate]. Dates are always
// stored in UTC so that lexical order equals chronological order.
const BookingDateLayout = "2006-01-02T15:04:05.000Z07:00"

// Booking is a reservation of RoomCount units of a room by a user.
// CheckIn and CheckOut are opaque strings supplied by the client.
type Booking struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	RoomID      int64  `json:"roomId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	BookingDate string `json:"bookingDate"`
	RoomCount   int64  `json:"roomCount"`
	Total       int64  `json:"total"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingDetails is a booking joined with the metadata of the booked room,
// as returned by the bookings listing.
type BookingDetails struct {
	Booking

	HotelName string   `json:"hotel_name"`
	Location  string   `json:"location"`
	Name      string   `json:"name"`
	Amenities []string `json:"amenities"`
}
