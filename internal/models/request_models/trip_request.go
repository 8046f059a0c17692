package request_models

import "time"

type CreateTripRequest struct {
	Title         string     `json:"title" binding:"required,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	StartTimeZone *string    `json:"start_time_zone" binding:"omitempty,max=64"`
	EndTimeZone   *string    `json:"end_time_zone" binding:"omitempty,max=64"`
	GroupID       *string    `json:"group_id" binding:"omitempty,uuid"`
}

// UpdateTripRequest is a partial update; nil fields keep their stored value.
type UpdateTripRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	StartTimeZone *string    `json:"start_time_zone" binding:"omitempty,max=64"`
	EndTimeZone   *string    `json:"end_time_zone" binding:"omitempty,max=64"`
	GroupID       *string    `json:"group_id" binding:"omitempty,uuid"`
	// ClearDates removes both bounds and the generated days.
	ClearDates bool `json:"clear_dates"`
	// ClearGroup stops sharing the trip. Cannot be combined with GroupID.
	ClearGroup bool `json:"clear_group"`
}
