// Package model holds the GORM-specific table structs, kept separate
// from the domain entities so persistence concerns never leak upward.
package model

import (
	"time"

	"github.com/google/uuid"
)

// HelpRequestModel is the GORM-specific struct for the 'help_requests' table.
// The ID arrays are stored as jsonb; the location is flattened into
// longitude/latitude columns.
type HelpRequestModel struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	Title           string      `gorm:"type:varchar(100);not null"`
	Description     string      `gorm:"type:varchar(300)"`
	CategoryIDs     []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	Status          string      `gorm:"type:varchar(20);not null;index"`
	PossibleHelpers []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	HelperID        *uuid.UUID  `gorm:"type:uuid;index"`
	Longitude       *float64    `gorm:"type:decimal(11,8)"`
	Latitude        *float64    `gorm:"type:decimal(10,8)"`
	Active          bool        `gorm:"not null;default:true;index"`
	Version         int64       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	FinishedAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (HelpRequestModel) TableName() string {
	return "help_requests"
}
