package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	OwnerID       uuid.UUID  `gorm:"type:uuid;index"`
	GroupID       *uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	StartTimeZone *string
	EndTimeZone   *string

	Itinerary *Itinerary
}

// HasDateRange reports whether both bounds are set.
func (t *Trip) HasDateRange() bool {
	return t.StartDate != nil && t.EndDate != nil
}
