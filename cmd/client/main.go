// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hotel-booking/internal/adapter"
	"github.com/MKhiriev/go-hotel-booking/internal/client"
	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(2)
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	log := logger.Nop()
	if cfg.LogFile != "" {
		log = logger.NewFileLogger("hotel-booking-client", cfg.LogFile)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create server adapter:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, cfg, os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
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
