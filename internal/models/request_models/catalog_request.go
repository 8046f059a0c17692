package request_models

import "time"

type PlaceRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Address     *string  `json:"address" binding:"omitempty,max=500"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdatePlaceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Address     *string  `json:"address" binding:"omitempty,max=500"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type CityRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=200"`
	Country   *string  `json:"country" binding:"omitempty,max=120"`
	Region    *string  `json:"region" binding:"omitempty,max=120"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdateCityRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Country   *string  `json:"country" binding:"omitempty,max=120"`
	Region    *string  `json:"region" binding:"omitempty,max=120"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type ActivityRequest struct {
	Title         string     `json:"title" binding:"required,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Notes         *string    `json:"notes" binding:"omitempty,max=2000"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	StartTimeZone *string    `json:"start_time_zone" binding:"omitempty,max=64"`
	EndTimeZone   *string    `json:"end_time_zone" binding:"omitempty,max=64"`
	PlaceID       *string    `json:"place_id" binding:"omitempty,uuid"`
}

type UpdateActivityRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Notes         *string    `json:"notes" binding:"omitempty,max=2000"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	StartTimeZone *string    `json:"start_time_zone" binding:"omitempty,max=64"`
	EndTimeZone   *string    `json:"end_time_zone" binding:"omitempty,max=64"`
	PlaceID       *string    `json:"place_id" binding:"omitempty,uuid"`
}
