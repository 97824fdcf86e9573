package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies outbound requests made by the API.
const UserAgent = "go-realty-api"

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound integrations. It embeds *resty.Client to expose all of its
// methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. A zero timeout leaves
// the request bounded only by its context.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://maps.googleapis.com", 5*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/maps/api/geocode/json")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
