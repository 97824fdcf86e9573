package store

import "github.com/MKhiriev/go-realty-api/models"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Address, &p.Lat, &p.Long,
		&p.Price, &p.Beds, &p.Baths, &p.Sqft, &p.Built, &p.Lot,
		&p.Description, &p.Available, &p.ForRent, &p.ForSale, &p.PostedOn,
	)
	return p, err
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.OwnerID, &t.Text, &t.Completed, &t.CompletedAt)
	return t, err
}
