package response_models

type PlaceResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CityResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Country   *string  `json:"country"`
	Region    *string  `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ActivityResponse struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	PlaceID       *string        `json:"place_id"`
	Title         string         `json:"title"`
	Description   *string        `json:"description"`
	Notes         *string        `json:"notes"`
	StartTime     *string        `json:"start_time"`
	EndTime       *string        `json:"end_time"`
	StartTimeZone *string        `json:"start_time_zone"`
	EndTimeZone   *string        `json:"end_time_zone"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	Place         *PlaceResponse `json:"place"`
}
