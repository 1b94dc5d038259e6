// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/handler"
	myGRPC "github.com/MKhiriev/go-hotel-booking/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-hotel-booking/internal/handler/http"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, config.Server{}, nil, logger.Nop())}

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	assert.Nil(t, srv.gRPCServer)
	assert.Equal(t, 6*time.Second, srv.httpServer.server.WriteTimeout)
}

func TestNewServer_GRPCInvalidAddress(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(okPinger{}, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())
	assert.Error(t, err)
}

func TestGRPCServer_ServesHealth(t *testing.T) {
	gs, err := newGRPCServer(myGRPC.NewHandler(okPinger{}, logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	go gs.RunServer()
	t.Cleanup(gs.Shutdown)

	conn, err := grpc.NewClient(gs.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestHTTPServer_ShutdownStopsServing(t *testing.T) {
	hs := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	done := make(chan struct{})
	go func() {
		hs.RunServer()
		close(done)
	}()

	// Shutdown may race with ListenAndServe; either way RunServer returns.
	time.Sleep(50 * time.Millisecond)
	hs.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	interceptor := loggingInterceptor(logger.Nop())

	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(ctx context.Context, req any) (any, error) {
			return "resp", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
}
