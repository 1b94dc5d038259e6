// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the requested email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRoomNotFound is returned when the requested room id does not exist.
	ErrRoomNotFound = errors.New("room was not found")

	// ErrNotEnoughRooms is returned when a booking asks for more units than
	// the room currently has available. Nothing is written in that case.
	ErrNotEnoughRooms = errors.New("not enough rooms available")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingAmenities is returned when the stored amenities column is
	// not a JSON array of strings.
	ErrDecodingAmenities = errors.New("failed to decode room amenities")
)
