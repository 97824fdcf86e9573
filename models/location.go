package models

// Location is the normalized result of geocoding a free-text address.
type Location struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Long             float64 `json:"long"`
}
