package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary anchors the days of exactly one trip.
type Itinerary struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	Days []TripDay
}

type TripDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time
	Title       *string
	Position    int

	Cities     []TripDayCity
	Places     []TripDayPlace
	Activities []TripDayActivity
}
