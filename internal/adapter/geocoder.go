package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
)

const (
	geocodePath   = "/maps/api/geocode/json"
	geocodeStatus = "OK"
)

type googleGeocoder struct {
	client  *utils.HTTPClient
	apiKey  string
	timeout time.Duration

	logger *logger.Logger
}

// geocodeResponse mirrors the subset of the Google Geocoding API response
// used by the listing service.
type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// NewGoogleGeocoder constructs a [Geocoder] backed by the Google Geocoding API.
// It normalises cfg.BaseURL and configures the underlying HTTP client with the
// per-call timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewGoogleGeocoder(cfg config.Geocoder, logger *logger.Logger) (Geocoder, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoder base url: %w", ErrInvalidAdapterConfig, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)

	return &googleGeocoder{client: client, apiKey: cfg.APIKey, timeout: cfg.Timeout, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// Geocode implements [Geocoder]. It issues
// GET /maps/api/geocode/json?address=...&key=... and returns the first result.
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	log := logger.FromContext(ctx)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var body geocodeResponse
	req := g.client.R().
		SetContext(ctx).
		SetQueryParam("address", address).
		SetResult(&body)
	if g.apiKey != "" {
		req.SetQueryParam("key", g.apiKey)
	}

	resp, err := req.Get(geocodePath)
	if err != nil {
		log.Err(err).Str("func", "googleGeocoder.Geocode").Msg("geocoding request failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodingFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "googleGeocoder.Geocode").Msg("geocoding provider returned an error")
		return models.Location{}, err
	}

	if body.Status != geocodeStatus {
		err = mapStatusError(body.Status, body.ErrorMessage)
		log.Err(err).Str("func", "googleGeocoder.Geocode").Msg("geocoding returned no match")
		return models.Location{}, err
	}
	if len(body.Results) == 0 {
		return models.Location{}, fmt.Errorf("%w: empty results", ErrGeocodingFailed)
	}

	first := body.Results[0]
	return models.Location{
		FormattedAddress: first.FormattedAddress,
		Lat:              first.Geometry.Location.Lat,
		Long:             first.Geometry.Location.Lng,
	}, nil
}
