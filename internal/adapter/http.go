// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. The base URL is taken from cfg.ServerURL; a missing scheme
// defaults to http.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Email: email, Password: password}).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("email", email).Msg("logged in")
	return result.Token, nil
}

func (h *httpServerAdapter) CheckSession(ctx context.Context) (bool, error) {
	var result models.SessionResponse

	req := h.client.R().SetContext(ctx).SetResult(&result)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get("/check-session")
	if err != nil {
		return false, fmt.Errorf("check session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.LoggedIn, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Post("/logout")
	if err != nil {
		return "", fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken("")
	return result.Message, nil
}

func (h *httpServerAdapter) Rooms(ctx context.Context, location string) ([]models.Room, error) {
	var rooms []models.Room

	req := h.client.R().SetContext(ctx).SetResult(&rooms)
	if location != "" {
		req.SetQueryParam("location", location)
	}

	resp, err := req.Get("/rooms")
	if err != nil {
		return nil, fmt.Errorf("rooms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (h *httpServerAdapter) Book(ctx context.Context, bookingRequest models.BookingRequest) (models.BookingResponse, error) {
	var result models.BookingResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return result, err
	}

	resp, err := req.
		SetBody(bookingRequest).
		SetResult(&result).
		Post("/book")
	if err != nil {
		return result, fmt.Errorf("book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpServerAdapter) Bookings(ctx context.Context) ([]models.BookingDetails, error) {
	var bookings []models.BookingDetails

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&bookings).Get("/bookings")
	if err != nil {
		return nil, fmt.Errorf("bookings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
