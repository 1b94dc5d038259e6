// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		BcryptCost       int      `json:"bcrypt_cost"`
		SeedFile         string   `json:"seed_file"`
		SeedUserEmail    string   `json:"seed_user_email"`
		SeedUserPassword string   `json:"seed_user_password"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Broker struct {
		URL   string `json:"url"`
		Queue string `json:"queue"`
	} `json:"broker,omitempty"`

	RateLimit struct {
		Enabled       bool     `json:"enabled"`
		Requests      int      `json:"requests"`
		Window        Duration `json:"window"`
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
	} `json:"rate_limit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:       jsonCfg.App.BcryptCost,
			SeedFile:         jsonCfg.App.SeedFile,
			SeedUserEmail:    jsonCfg.App.SeedUserEmail,
			SeedUserPassword: jsonCfg.App.SeedUserPassword,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		Broker: Broker{
			URL:   jsonCfg.Broker.URL,
			Queue: jsonCfg.Broker.Queue,
		},
		RateLimit: RateLimit{
			Enabled:       jsonCfg.RateLimit.Enabled,
			Requests:      jsonCfg.RateLimit.Requests,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			RedisAddress:  jsonCfg.RateLimit.RedisAddress,
			RedisPassword: jsonCfg.RateLimit.RedisPassword,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
