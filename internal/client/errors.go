// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArguments = errors.New("missing arguments")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoCredentials    = errors.New("email and password are required for this command")
)
