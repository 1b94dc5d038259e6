// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

// withRateLimit rejects clients that exceed the login limit with
// 429 {"error":"Too many requests"}. When the limiter itself fails the
// request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)

		allowed, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("client", key).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			logger.FromRequest(r).Info().Str("client", key).Msg("rate limit exceeded")
			utils.WriteError(w, msgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
