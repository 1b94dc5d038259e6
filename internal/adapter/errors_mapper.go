// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a wrapped sentinel carrying
// the server's {"error": ...} message otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

func errorMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if text := strings.TrimSpace(string(resp.Body())); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}
