package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	BaseModel
	OwnerID       uuid.UUID  `gorm:"type:uuid;index"`
	PlaceID       *uuid.UUID `gorm:"type:uuid"`
	Title         string
	Description   *string
	Notes         *string
	StartTime     *time.Time
	EndTime       *time.Time
	StartTimeZone *string
	EndTimeZone   *string

	Place *Place
}
