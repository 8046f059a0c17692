package db_models

import "github.com/google/uuid"

const (
	GroupRoleOwner  = "owner"
	GroupRoleMember = "member"
)

type Group struct {
	BaseModel
	Name    string
	OwnerID uuid.UUID `gorm:"type:uuid"`

	Members []GroupMember
}

func (Group) TableName() string { return "travel_groups" }

type GroupMember struct {
	BaseModel
	GroupID uuid.UUID `gorm:"type:uuid"`
	UserID  uuid.UUID `gorm:"type:uuid"`
	Role    string

	User *Account `gorm:"foreignKey:UserID"`
}
