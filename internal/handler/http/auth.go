// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/utils"
	"github.com/MKhiriev/go-hotel-booking/models"
)

// checkSession always answers 200; a missing or bad token is reported as
// loggedIn=false rather than as an error.
func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		log.Debug().Msg("no token provided, user not logged in")
		utils.WriteJSON(w, models.SessionResponse{LoggedIn: false}, http.StatusOK)
		return
	}

	loggedIn := h.services.AuthService.CheckSession(r.Context(), tokenString)
	log.Debug().Bool("logged_in", loggedIn).Msg("session checked")

	utils.WriteJSON(w, models.SessionResponse{LoggedIn: loggedIn}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().Str("email", user.Email).Msg("login attempt")

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}

// logout only acknowledges the request; issued tokens stay valid until they
// expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}
