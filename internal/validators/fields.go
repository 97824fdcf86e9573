package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets a record identifier taken from the request path.
	FieldID = "id"

	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password submitted on signup.
	FieldPassword = "password"

	// FieldTitle targets the listing title.
	FieldTitle = "title"

	// FieldAddress targets the free-form listing address.
	FieldAddress = "address"

	// FieldPrice, FieldBeds, FieldBaths and FieldSqft target the required
	// listing numerics.
	FieldPrice = "price"
	FieldBeds  = "beds"
	FieldBaths = "baths"
	FieldSqft  = "sqft"

	// FieldBuilt and FieldLot target the optional listing numerics.
	FieldBuilt = "built"
	FieldLot   = "lot"

	// FieldText targets the task text.
	FieldText = "text"
)

// MinPasswordLength is the shortest password accepted on signup.
const MinPasswordLength = 6

// MaxPasswordLength is the bcrypt input limit in bytes.
const MaxPasswordLength = 72
