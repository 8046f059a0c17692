package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

type ItineraryRepository interface {
	// RegenerateDays rebuilds the days of an owned trip from its stored date range.
	RegenerateDays(ctx context.Context, scope TripScope) ([]dbm.TripDay, error)
	ListDays(ctx context.Context, scope TripScope) ([]dbm.TripDay, error)
	CreateDay(ctx context.Context, scope TripScope, date time.Time, title *string) (*dbm.TripDay, error)
	UpdateDay(ctx context.Context, scope DayScope, changes DayChanges) (*dbm.TripDay, error)
	ReorderDays(ctx context.Context, scope TripScope, orderedIDs []uuid.UUID) error
}

// DayChanges is a partial day update. ClearTitle wins over Title.
type DayChanges struct {
	Date       *time.Time
	Title      *string
	ClearTitle bool
}

// dayInsertBatch keeps each multi-row INSERT under the driver's bind parameter limit.
const dayInsertBatch = 500

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// ReplaceDays deletes every day of the trip's itinerary, with their attachments, and
// inserts one day per UTC calendar date from start to end inclusive, day N at position N.
// The itinerary is created if missing. Must run inside the caller's transaction.
func ReplaceDays(tx *gorm.DB, tripID uuid.UUID, start, end time.Time) ([]dbm.TripDay, error) {
	start, end = utils.TruncateToDateUTC(start), utils.TruncateToDateUTC(end)
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	itinerary, err := upsertItinerary(tx, tripID)
	if err != nil {
		return nil, err
	}

	if err := clearDays(tx, itinerary.ID); err != nil {
		return nil, err
	}

	dates := utils.DateRange(start, end)
	days := make([]dbm.TripDay, 0, len(dates))
	for i, date := range dates {
		days = append(days, dbm.TripDay{
			ItineraryID: itinerary.ID,
			Date:        date,
			Position:    i,
		})
	}
	if len(days) == 0 {
		return days, nil
	}
	if err := tx.Omit(clause.Associations).CreateInBatches(&days, dayInsertBatch).Error; err != nil {
		return nil, err
	}

	return days, nil
}

func upsertItinerary(tx *gorm.DB, tripID uuid.UUID) (*dbm.Itinerary, error) {
	candidate := dbm.Itinerary{TripID: tripID}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trip_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	var itinerary dbm.Itinerary
	if err := tx.Where("trip_id = ?", tripID).First(&itinerary).Error; err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// clearDays removes all days of an itinerary and everything attached to them.
func clearDays(tx *gorm.DB, itineraryID uuid.UUID) error {
	dayIDs := tx.Model(&dbm.TripDay{}).
		Select("id").
		Where("itinerary_id = ?", itineraryID)

	for _, model := range []interface{}{&dbm.TripDayCity{}, &dbm.TripDayPlace{}, &dbm.TripDayActivity{}} {
		if err := tx.Where("trip_day_id IN (?)", dayIDs).Delete(model).Error; err != nil {
			return err
		}
	}

	return tx.Where("itinerary_id = ?", itineraryID).Delete(&dbm.TripDay{}).Error
}

// ClearTripDays drops the days of a trip whose date range was removed.
func ClearTripDays(tx *gorm.DB, tripID uuid.UUID) error {
	var itinerary dbm.Itinerary
	err := tx.Where("trip_id = ?", tripID).First(&itinerary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return clearDays(tx, itinerary.ID)
}

func (r *itineraryRepository) RegenerateDays(ctx context.Context, scope TripScope) ([]dbm.TripDay, error) {
	var days []dbm.TripDay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trip, err := lockOwnedTrip(tx, scope)
		if err != nil {
			return err
		}
		if !trip.HasDateRange() {
			return utils.ErrTripHasNoDates
		}

		days, err = ReplaceDays(tx, trip.ID, *trip.StartDate, *trip.EndDate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *itineraryRepository) ListDays(ctx context.Context, scope TripScope) ([]dbm.TripDay, error) {
	db := r.db.WithContext(ctx)
	if _, err := findTrip(db, scope, true); err != nil {
		return nil, err
	}

	days := []dbm.TripDay{}
	err := db.Joins("JOIN itineraries ON itineraries.id = trip_days.itinerary_id").
		Where("itineraries.trip_id = ?", scope.TripID).
		Order("trip_days.position ASC").
		Order("trip_days.created_at ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *itineraryRepository) CreateDay(ctx context.Context, scope TripScope, date time.Time, title *string) (*dbm.TripDay, error) {
	var day dbm.TripDay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedTrip(tx, scope); err != nil {
			return err
		}

		itinerary, err := upsertItinerary(tx, scope.TripID)
		if err != nil {
			return err
		}

		last, err := maxPosition(tx, &dbm.TripDay{}, "itinerary_id", itinerary.ID)
		if err != nil {
			return err
		}

		day = dbm.TripDay{
			ItineraryID: itinerary.ID,
			Date:        utils.TruncateToDateUTC(date),
			Title:       title,
			Position:    last + 1,
		}
		return tx.Omit(clause.Associations).Create(&day).Error
	})
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *itineraryRepository) UpdateDay(ctx context.Context, scope DayScope, changes DayChanges) (*dbm.TripDay, error) {
	var day *dbm.TripDay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		day, err = lockOwnedDay(tx, scope)
		if err != nil {
			return err
		}

		columns := map[string]interface{}{}
		if changes.Date != nil {
			columns["date"] = utils.TruncateToDateUTC(*changes.Date)
		}
		switch {
		case changes.ClearTitle:
			columns["title"] = nil
		case changes.Title != nil:
			columns["title"] = *changes.Title
		}
		if len(columns) == 0 {
			return nil
		}

		if err := tx.Model(day).Omit(clause.Associations).Updates(columns).Error; err != nil {
			return err
		}
		var fresh dbm.TripDay
		if err := tx.First(&fresh, "id = ?", scope.DayID).Error; err != nil {
			return err
		}
		day = &fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (r *itineraryRepository) ReorderDays(ctx context.Context, scope TripScope, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedTrip(tx, scope); err != nil {
			return err
		}

		var itinerary dbm.Itinerary
		err := tx.Where("trip_id = ?", scope.TripID).First(&itinerary).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// nothing to order, so any non-empty list is a mismatch
			return utils.ErrInvalidOrder
		}
		if err != nil {
			return err
		}

		return applyOrder(tx, &dbm.TripDay{}, "itinerary_id", itinerary.ID, orderedIDs)
	})
}
