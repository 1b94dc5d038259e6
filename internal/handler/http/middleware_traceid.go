// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-hotel-booking/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

var traceIDGenerator = utils.NewUUIDGenerator()

// withTraceID attaches a trace id to the request. A caller-provided
// X-Trace-ID is reused, otherwise a UUIDv7 is generated. The id is echoed in
// the response header and carried by the request logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDGenerator.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
