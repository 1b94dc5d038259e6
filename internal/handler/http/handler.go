// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter guards POST /login. Nil disables rate limiting.
	limiter RateLimiter

	staticDir      string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, limiter RateLimiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        limiter,
		staticDir:      cfg.StaticDir,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
