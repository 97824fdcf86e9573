package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a wrapped ErrGeocodingFailed
// carrying the status and body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrGeocodingFailed, resp.StatusCode(), body)
}

// mapStatusError converts a provider status other than "OK" into an error.
func mapStatusError(status, message string) error {
	if message == "" {
		return fmt.Errorf("%w: status %s", ErrGeocodingFailed, status)
	}
	return fmt.Errorf("%w: status %s: %s", ErrGeocodingFailed, status, message)
}
