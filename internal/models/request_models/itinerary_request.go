package request_models

import "time"

type CreateTripDayRequest struct {
	Date  time.Time `json:"date" binding:"required"`
	Title *string   `json:"title" binding:"omitempty,max=200"`
}

// UpdateTripDayRequest is a partial update; nil fields keep their stored value.
type UpdateTripDayRequest struct {
	Date  *time.Time `json:"date"`
	Title *string    `json:"title" binding:"omitempty,max=200"`
	// ClearTitle removes the title. Cannot be combined with Title.
	ClearTitle bool `json:"clear_title"`
}

type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1,dive,uuid"`
}

// AddAttachmentRequest appends when Position is nil and inserts at Position otherwise.
type AddAttachmentRequest struct {
	TargetID string `json:"target_id" binding:"required,uuid"`
	Position *int   `json:"position" binding:"omitempty,min=0"`
}
