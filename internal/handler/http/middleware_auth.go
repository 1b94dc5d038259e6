// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the user's ID in
// the request context under [utils.UserIDCtxKey].
//
// A missing header, a malformed header, the literal token "null", and an
// invalid or expired token all produce 401 {"error":"Unauthorized"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without bearer token")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
