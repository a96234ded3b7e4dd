package models

// Category defines the struct for the 'categories' table.
// Attributes is stored as a JSON array column and unmarshalled on read;
// categories are read-only from this service.
type Category struct {
	ID         int64    `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	Attributes []string `json:"attributes" db:"attributes"`
}
