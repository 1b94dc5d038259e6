// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(newCORS().Handler)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/check-session", h.checkSession)
		r.With(h.withRateLimit).Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/rooms", h.rooms)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/book", h.book)
		r.Get("/bookings", h.bookings)
	})

	if h.staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
	}

	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}

// newCORS allows any origin with credentials. The request origin is
// reflected because browsers reject "*" together with credentials.
func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc:  func(string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	})
}
