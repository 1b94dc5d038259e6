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

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var request models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	request.UserID = userID

	booking, err := h.services.BookingService.CreateBooking(ctx, request)
	if err != nil {
		writeServiceError(w, r, err, "booking failed")
		return
	}

	utils.WriteJSON(w, models.BookingResponse{Message: msgBookingSuccessful, Total: booking.Total}, http.StatusOK)
}

func (h *Handler) bookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in context")
		utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "error fetching bookings")
		return
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}
