// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Room is a bookable room listing of a hotel. Available is the number of
// unbooked units and is the only field mutated after seeding.
type Room struct {
	ID        int64    `json:"id"`
	HotelName string   `json:"hotel_name"`
	Location  string   `json:"location"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Available int64    `json:"available"`
	Image     string   `json:"image"`
	Amenities []string `json:"amenities"`
}

// TableName returns the name of the database table
// associated with the Room model.
func (r Room) TableName() string {
	return "rooms"
}

// RoomFilter narrows a room listing. An empty Location matches every room.
type RoomFilter struct {
	Location string
}
