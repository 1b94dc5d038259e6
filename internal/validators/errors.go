// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidRoomID    = errors.New("invalid room ID")
	ErrInvalidRoomCount = errors.New("room count must be at least 1")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
)
