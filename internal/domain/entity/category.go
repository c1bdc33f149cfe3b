package entity

import "github.com/google/uuid"

// Category is a static reference entry used to tag and filter help
// requests and offers. The engine treats the set as opaque identifiers.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
