package models

// Property is a real-estate listing.
//
// Address, Lat and Long always hold the output of the most recent successful
// geocoding of the listing's address; no request DTO carries coordinates.
type Property struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Long        float64  `json:"long"`
	Price       float64  `json:"price"`
	Beds        float64  `json:"beds"`
	Baths       float64  `json:"baths"`
	Sqft        float64  `json:"sqft"`
	Built       *float64 `json:"built"`
	Lot         *float64 `json:"lot"`
	Description string   `json:"description,omitempty"`
	Available   bool     `json:"available"`
	ForRent     bool     `json:"forRent"`
	ForSale     bool     `json:"forSale"`

	// PostedOn is the creation time in unix milliseconds.
	PostedOn int64 `json:"postedOn"`

	// OwnerID references the user who created the listing. Immutable.
	OwnerID string `json:"_creator"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}

// PropertyCreate is the body accepted when creating a listing.
// Required numerics are pointers so that a missing field can be told apart
// from an explicit zero.
type PropertyCreate struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Price       *float64 `json:"price"`
	Beds        *float64 `json:"beds"`
	Baths       *float64 `json:"baths"`
	Sqft        *float64 `json:"sqft"`
	Built       *float64 `json:"built"`
	Lot         *float64 `json:"lot"`
	Description string   `json:"description"`
	ForRent     bool     `json:"forRent"`
	ForSale     bool     `json:"forSale"`
}

// PropertyUpdate lists every mutable field of a listing. Nil fields are left
// untouched. Owner, coordinates, availability and postedOn are deliberately
// absent.
type PropertyUpdate struct {
	Title       *string  `json:"title"`
	Address     *string  `json:"address"`
	Price       *float64 `json:"price"`
	Beds        *float64 `json:"beds"`
	Baths       *float64 `json:"baths"`
	Sqft        *float64 `json:"sqft"`
	Built       *float64 `json:"built"`
	Lot         *float64 `json:"lot"`
	Description *string  `json:"description"`
	ForRent     *bool    `json:"forRent"`
	ForSale     *bool    `json:"forSale"`
}

// IsEmpty reports whether the update carries no field at all.
func (u PropertyUpdate) IsEmpty() bool {
	return u.Title == nil && u.Address == nil && u.Price == nil && u.Beds == nil &&
		u.Baths == nil && u.Sqft == nil && u.Built == nil && u.Lot == nil &&
		u.Description == nil && u.ForRent == nil && u.ForSale == nil
}

// PropertyChanges is the storage-level patch produced by the service from a
// PropertyUpdate: the caller's fields plus geocoded location when the
// address changed.
type PropertyChanges struct {
	PropertyUpdate

	// Location is set only when the address was re-geocoded.
	Location *Location
}
