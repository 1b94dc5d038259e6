// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

func (h *Handler) rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.services.RoomService.ListRooms(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeServiceError(w, r, err, "error fetching rooms")
		return
	}

	utils.WriteJSON(w, rooms, http.StatusOK)
}
