// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// Defaults of the command-line client.
const (
	DefaultClientServerURL      = "http://localhost:3000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of the booking API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every request made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Email and Password are the credentials used for commands that need
	// a session.
	// Env: CLIENT_EMAIL, CLIENT_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// LogFile receives the client's debug log. Empty disables logging.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Args holds the positional arguments left after flag parsing
	// (the command and its parameters).
	Args []string
}

type clientEnvelope struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from the environment and
// args (normally os.Args[1:]); flags win over environment variables.
func GetClientConfig(args []string) (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	envelope := &clientEnvelope{}
	if err := parseEnv(envelope); err != nil {
		return nil, err
	}
	cfg := envelope.Client

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "Booking API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "Account email")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "Account password")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Debug log file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Args = fs.Args()

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientServerURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
