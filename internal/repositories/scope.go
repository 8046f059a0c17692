package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

// TripScope identifies a trip as seen by the acting user.
type TripScope struct {
	TripID  uuid.UUID
	ActorID uuid.UUID
}

// DayScope narrows a TripScope to one of its days.
type DayScope struct {
	TripScope
	DayID uuid.UUID
}

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// visibleTo keeps trips owned by actorID or shared with a group actorID belongs to.
func visibleTo(actorID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		memberships := db.Session(&gorm.Session{NewDB: true}).
			Model(&dbm.GroupMember{}).
			Select("group_id").
			Where("user_id = ?", actorID)

		return db.Where("(trips.owner_id = ? OR trips.group_id IN (?))", actorID, memberships)
	}
}

// lockOwnedTrip takes the day-scope lock of a trip. Only the owner may mutate a trip.
func lockOwnedTrip(tx *gorm.DB, scope TripScope) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := tx.Clauses(forUpdate()).
		Where("id = ? AND owner_id = ?", scope.TripID, scope.ActorID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// lockOwnedDay takes the attachment-scope lock of a day, checking in the same statement
// that the day belongs to the trip and the trip to the actor.
func lockOwnedDay(tx *gorm.DB, scope DayScope) (*dbm.TripDay, error) {
	if _, err := findTrip(tx, scope.TripScope, false); err != nil {
		return nil, err
	}

	var day dbm.TripDay
	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "trip_days"}}).
		Joins("JOIN itineraries ON itineraries.id = trip_days.itinerary_id").
		Joins("JOIN trips ON trips.id = itineraries.trip_id").
		Where("trip_days.id = ? AND trips.id = ? AND trips.owner_id = ?", scope.DayID, scope.TripID, scope.ActorID).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

// findTrip loads a trip the actor may read (shared=true) or must own (shared=false).
func findTrip(db *gorm.DB, scope TripScope, shared bool) (*dbm.Trip, error) {
	var trip dbm.Trip
	q := db.Model(&dbm.Trip{}).Where("trips.id = ?", scope.TripID)
	if shared {
		q = q.Scopes(visibleTo(scope.ActorID))
	} else {
		q = q.Where("trips.owner_id = ?", scope.ActorID)
	}
	if err := q.First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// findVisibleDay resolves a day for reading.
func findVisibleDay(db *gorm.DB, scope DayScope) (*dbm.TripDay, error) {
	if _, err := findTrip(db, scope.TripScope, true); err != nil {
		return nil, err
	}

	var day dbm.TripDay
	err := db.Joins("JOIN itineraries ON itineraries.id = trip_days.itinerary_id").
		Where("trip_days.id = ? AND itineraries.trip_id = ?", scope.DayID, scope.TripID).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

// maxPosition returns the highest position in scope, -1 when the scope is empty.
func maxPosition(tx *gorm.DB, model interface{}, scopeColumn string, scopeID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(model).
		Where(scopeColumn+" = ?", scopeID).
		Select("COALESCE(MAX(position), -1)").
		Row().
		Scan(&max)
	return max, err
}

// applyOrder rewrites positions to match orderedIDs, which must be exactly the ids in scope.
func applyOrder(tx *gorm.DB, model interface{}, scopeColumn string, scopeID uuid.UUID, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return utils.ErrInvalidOrder
	}

	var current []uuid.UUID
	if err := tx.Model(model).Where(scopeColumn+" = ?", scopeID).Pluck("id", &current).Error; err != nil {
		return err
	}
	if !sameMembers(current, orderedIDs) {
		return utils.ErrInvalidOrder
	}

	now := utils.NowUnixSeconds()
	for i, id := range orderedIDs {
		err := tx.Model(model).
			Where("id = ? AND "+scopeColumn+" = ?", id, scopeID).
			UpdateColumns(map[string]interface{}{"position": i, "updated_at": now}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func sameMembers(current, ordered []uuid.UUID) bool {
	if len(current) != len(ordered) {
		return false
	}
	remaining := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		remaining[id] = struct{}{}
	}
	for _, id := range ordered {
		if _, ok := remaining[id]; !ok {
			return false
		}
		delete(remaining, id)
	}
	return true
}
