// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the booking API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging, response compression
// and login rate limiting are handled in this package before requests are
// delegated to the service layer.
package http
