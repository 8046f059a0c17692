package response_models

type TripResponse struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	GroupID       *string `json:"group_id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	StartTimeZone *string `json:"start_time_zone"`
	EndTimeZone   *string `json:"end_time_zone"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
