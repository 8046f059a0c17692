package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

// TripMutation applies an update to a locked trip and reports what happens to its days.
type TripMutation func(trip *dbm.Trip) (TripDaysChange, error)

type TripDaysChange int

const (
	DaysUnchanged TripDaysChange = iota
	DaysRegenerate
	DaysClear
)

type TripRepository interface {
	// Create inserts the trip and, when both bounds are set, its days in the same transaction.
	Create(ctx context.Context, trip *dbm.Trip) error
	FindVisible(ctx context.Context, scope TripScope) (*dbm.Trip, error)
	ListVisible(ctx context.Context, actorID uuid.UUID) ([]dbm.Trip, error)
	Update(ctx context.Context, scope TripScope, mutate TripMutation) (*dbm.Trip, error)
	Delete(ctx context.Context, scope TripScope) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(trip).Error; err != nil {
			return err
		}
		if !trip.HasDateRange() {
			return nil
		}
		_, err := ReplaceDays(tx, trip.ID, *trip.StartDate, *trip.EndDate)
		return err
	})
}

func (r *tripRepository) FindVisible(ctx context.Context, scope TripScope) (*dbm.Trip, error) {
	return findTrip(r.db.WithContext(ctx), scope, true)
}

func (r *tripRepository) ListVisible(ctx context.Context, actorID uuid.UUID) ([]dbm.Trip, error) {
	trips := []dbm.Trip{}
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Scopes(visibleTo(actorID)).
		Order("trips.created_at DESC").
		Order("trips.id ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, scope TripScope, mutate TripMutation) (*dbm.Trip, error) {
	var trip *dbm.Trip
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		trip, err = lockOwnedTrip(tx, scope)
		if err != nil {
			return err
		}

		change, err := mutate(trip)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(trip).Error; err != nil {
			return err
		}

		switch change {
		case DaysRegenerate:
			if !trip.HasDateRange() {
				return utils.ErrPartialDateRange
			}
			_, err = ReplaceDays(tx, trip.ID, *trip.StartDate, *trip.EndDate)
		case DaysClear:
			err = ClearTripDays(tx, trip.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, scope TripScope) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", scope.TripID, scope.ActorID).
		Delete(&dbm.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}
