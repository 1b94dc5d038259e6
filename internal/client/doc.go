// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the booking API.
//
// Each invocation runs one command (rooms, book, bookings, session, logout)
// through an [adapter.ServerAdapter], logging in first when the command
// needs a session.
package client
