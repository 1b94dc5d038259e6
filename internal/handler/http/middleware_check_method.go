// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

// methodNotAllowed answers a known path requested with the wrong method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}
