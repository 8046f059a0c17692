package db_models

import "github.com/google/uuid"

type Place struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
}

type City struct {
	BaseModel
	Name      string
	Country   *string
	Region    *string
	Latitude  *float64
	Longitude *float64
}
