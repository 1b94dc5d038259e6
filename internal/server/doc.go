// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the gRPC health endpoint.
//
// It starts every configured transport, waits for SIGTERM, SIGINT or
// SIGQUIT and then shuts all of them down gracefully.
package server
