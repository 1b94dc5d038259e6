// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/handler"
	"github.com/MKhiriev/go-hotel-booking/internal/handler/http"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/notify"
	"github.com/MKhiriev/go-hotel-booking/internal/server"
	"github.com/MKhiriev/go-hotel-booking/internal/service"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hotel-booking-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	notifier := notify.NewNotifier(cfg.Broker, log)
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Err(err).Msg("error closing notifier")
		}
	}()

	services := service.NewServices(storages, notifier, cfg, log)
	if err = services.SeedService.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding database")
	}

	limiter, err := http.NewRateLimiter(ctx, cfg.RateLimit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	if limiter != nil {
		defer limiter.Close()
	}

	handlers, err := handler.NewHandlers(services, storages.DB, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
