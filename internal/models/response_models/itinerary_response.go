package response_models

type TripDayResponse struct {
	ID          string  `json:"id"`
	ItineraryID string  `json:"itinerary_id"`
	Date        string  `json:"date"`
	Title       *string `json:"title"`
	Position    int     `json:"position"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// DayAttachmentResponse carries exactly one of City, Place or Activity, matching Kind.
type DayAttachmentResponse struct {
	ID        string            `json:"id"`
	TripDayID string            `json:"trip_day_id"`
	Kind      string            `json:"kind"`
	TargetID  string            `json:"target_id"`
	Position  int               `json:"position"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
	City      *CityResponse     `json:"city,omitempty"`
	Place     *PlaceResponse    `json:"place,omitempty"`
	Activity  *ActivityResponse `json:"activity,omitempty"`
}
