// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/service"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap lists the domain errors that have a dedicated response.
// Everything else, storage errors included, is a 500.
var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidCredentials:       {http.StatusUnauthorized, msgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid:  {http.StatusUnauthorized, msgUnauthorized},
	service.ErrInsufficientAvailability: {http.StatusBadRequest, msgNotEnoughRooms},
	service.ErrInvalidDataProvided:      {http.StatusBadRequest, msgInvalidData},

	store.ErrRoomNotFound:   {http.StatusNotFound, msgRoomNotFound},
	store.ErrNotEnoughRooms: {http.StatusBadRequest, msgNotEnoughRooms},
	store.ErrNoUserWasFound: {http.StatusUnauthorized, msgInvalidCredentials},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, msgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and writes its public JSON representation.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
