package adapter

import "errors"

var (
	ErrGeocodingFailed      = errors.New("geocoding failed")
	ErrInvalidAdapterConfig = errors.New("invalid adapter config")
)
