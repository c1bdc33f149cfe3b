package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
type OfferModel struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID             uuid.UUID   `gorm:"type:uuid;not null;index"`
	Title               string      `gorm:"type:varchar(100);not null"`
	Description         string      `gorm:"type:varchar(300)"`
	CategoryIDs         []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	Status              string      `gorm:"type:varchar(20);not null;index"`
	PossibleHelpedUsers []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	HelpedUserIDs       []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	Longitude           *float64    `gorm:"type:decimal(11,8)"`
	Latitude            *float64    `gorm:"type:decimal(10,8)"`
	Active              bool        `gorm:"not null;default:true;index"`
	Version             int64       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	FinishedAt          *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
