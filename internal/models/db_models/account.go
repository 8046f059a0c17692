package db_models

type Account struct {
	BaseModel
	Name         *string
	Email        string `gorm:"unique"`
	PasswordHash string

	Trips []Trip `gorm:"foreignKey:OwnerID"`
}
