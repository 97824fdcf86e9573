// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the API depends on.
//
// The primary abstraction is [Geocoder], which decouples the listing service
// from the geocoding provider. The package ships a Google Geocoding API
// implementation ([NewGoogleGeocoder]) built on resty.
//
// Every failure of the provider (transport error, timeout, non-2xx response,
// non-OK status or empty result) is reported as a wrapped
// [ErrGeocodingFailed] so callers can use [errors.Is] without knowing the
// provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-realty-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/geocoder_mock.go -package=mock

// Geocoder resolves a free-form address into its canonical form and coordinates.
type Geocoder interface {
	// Geocode looks up address and returns the first match. The call is
	// bounded by the configured timeout and by ctx, whichever ends first.
	Geocode(ctx context.Context, address string) (models.Location, error)
}
