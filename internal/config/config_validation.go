// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.Geocoder.BaseURL == "" {
		cfg.Adapter.Geocoder.BaseURL = DefaultGeocoderBaseURL
	}
	if cfg.Adapter.Geocoder.Timeout == 0 {
		cfg.Adapter.Geocoder.Timeout = DefaultGeocoderTimeout
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
}

func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Geocoder.Timeout < 0 {
		return fmt.Errorf("%w: geocoder timeout must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
