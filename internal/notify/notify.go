// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify publishes booking events to downstream consumers.
package notify

import (
	"context"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier publishes domain events. Implementations must be safe for
// concurrent use.
type Notifier interface {
	BookingCreated(ctx context.Context, event models.BookingCreatedEvent) error
	Close() error
}

// NewNotifier returns an AMQP notifier when a broker URL is configured and a
// no-op notifier otherwise.
func NewNotifier(cfg config.Broker, log *logger.Logger) Notifier {
	if cfg.URL == "" {
		log.Info().Msg("broker url is not set, booking notifications are disabled")
		return NewNop()
	}

	return NewAMQPNotifier(cfg.URL, cfg.Queue, log)
}

type nopNotifier struct{}

// NewNop returns a Notifier that drops every event.
func NewNop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) BookingCreated(context.Context, models.BookingCreatedEvent) error { return nil }

func (nopNotifier) Close() error { return nil }
