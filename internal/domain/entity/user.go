package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is the minimal account record the matching engine consumes. The
// engine only ever asks "does this user exist" and reads the identity
// fields; everything else about accounts lives outside the core.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Location     *orb.Point `json:"location"` // optional home coordinate (lon, lat)
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"creationDate"`
	UpdatedAt    time.Time  `json:"lastUpdateDate"`
}
