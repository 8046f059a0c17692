package db_models

import "github.com/google/uuid"

type AttachmentKind string

const (
	KindCity     AttachmentKind = "cities"
	KindPlace    AttachmentKind = "places"
	KindActivity AttachmentKind = "activities"
)

var AttachmentKinds = []AttachmentKind{KindCity, KindPlace, KindActivity}

// DayAttachment is a positioned join row between a TripDay and one target entity.
// Descriptor methods (Kind, TargetTable, ...) do not read the receiver and are safe on a zero value.
type DayAttachment interface {
	Kind() AttachmentKind
	// TargetTable is the table holding the referenced entity.
	TargetTable() string
	// TargetOwned reports whether the target must belong to the acting user.
	TargetOwned() bool
	Preloads() []string

	Assign(dayID, targetID uuid.UUID, position int)
	AttachmentID() uuid.UUID
	DayID() uuid.UUID
	TargetID() uuid.UUID
	SortPosition() int
}

type DayAttachmentBase struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"type:uuid;index"`
	Position  int
}

func (b *DayAttachmentBase) AttachmentID() uuid.UUID { return b.ID }
func (b *DayAttachmentBase) DayID() uuid.UUID        { return b.TripDayID }
func (b *DayAttachmentBase) SortPosition() int       { return b.Position }

type TripDayCity struct {
	DayAttachmentBase
	CityID uuid.UUID `gorm:"type:uuid"`

	City City
}

func (*TripDayCity) Kind() AttachmentKind  { return KindCity }
func (*TripDayCity) TargetTable() string   { return "cities" }
func (*TripDayCity) TargetOwned() bool     { return false }
func (*TripDayCity) Preloads() []string    { return []string{"City"} }
func (a *TripDayCity) TargetID() uuid.UUID { return a.CityID }

func (a *TripDayCity) Assign(dayID, targetID uuid.UUID, position int) {
	a.TripDayID, a.CityID, a.Position = dayID, targetID, position
}

type TripDayPlace struct {
	DayAttachmentBase
	PlaceID uuid.UUID `gorm:"type:uuid"`

	Place Place
}

func (*TripDayPlace) Kind() AttachmentKind  { return KindPlace }
func (*TripDayPlace) TargetTable() string   { return "places" }
func (*TripDayPlace) TargetOwned() bool     { return true }
func (*TripDayPlace) Preloads() []string    { return []string{"Place"} }
func (a *TripDayPlace) TargetID() uuid.UUID { return a.PlaceID }

func (a *TripDayPlace) Assign(dayID, targetID uuid.UUID, position int) {
	a.TripDayID, a.PlaceID, a.Position = dayID, targetID, position
}

type TripDayActivity struct {
	DayAttachmentBase
	ActivityID uuid.UUID `gorm:"type:uuid"`

	Activity Activity
}

func (*TripDayActivity) Kind() AttachmentKind  { return KindActivity }
func (*TripDayActivity) TargetTable() string   { return "activities" }
func (*TripDayActivity) TargetOwned() bool     { return true }
func (*TripDayActivity) Preloads() []string    { return []string{"Activity", "Activity.Place"} }
func (a *TripDayActivity) TargetID() uuid.UUID { return a.ActivityID }

func (a *TripDayActivity) Assign(dayID, targetID uuid.UUID, position int) {
	a.TripDayID, a.ActivityID, a.Position = dayID, targetID, position
}
