// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the application. It exposes
// the standard grpc.health.v1.Health service backed by a database ping.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the service name reported by the health endpoint in
// addition to the overall server status ("").
const ServiceName = "hotel.booking.v1.BookingAPI"

const pingTimeout = 2 * time.Second

// Handler is the root gRPC transport handler.
//
// It answers health checks with SERVING while the database responds to a
// ping and NOT_SERVING otherwise.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// pinger reports database liveness.
	pinger store.Pinger

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] that checks liveness through pinger.
func NewHandler(pinger store.Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Check implements grpc.health.v1.Health/Check.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	return &healthpb.HealthCheckResponse{Status: h.servingStatus(ctx)}, nil
}

// Watch is not supported; clients are expected to poll Check.
func (h *Handler) Watch(_ *healthpb.HealthCheckRequest, _ healthpb.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "watch is not supported, use Check")
}

// List implements grpc.health.v1.Health/List.
func (h *Handler) List(ctx context.Context, _ *healthpb.HealthListRequest) (*healthpb.HealthListResponse, error) {
	current := &healthpb.HealthCheckResponse{Status: h.servingStatus(ctx)}

	return &healthpb.HealthListResponse{
		Statuses: map[string]*healthpb.HealthCheckResponse{
			"":          current,
			ServiceName: current,
		},
	}, nil
}

func (h *Handler) servingStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	if h.pinger == nil {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		return healthpb.HealthCheckResponse_NOT_SERVING
	}

	return healthpb.HealthCheckResponse_SERVING
}
