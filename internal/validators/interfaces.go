// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach storage.
//
// A Validator dispatches on the dynamic type of the value and may be limited
// to a subset of named fields. Services receive a Validator by injection so
// handlers and repositories stay free of business rules.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
