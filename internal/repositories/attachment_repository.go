package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

// AttachmentRepository keeps the positioned city, place or activity list of each day.
// Every mutation runs in one transaction holding the day row lock.
type AttachmentRepository interface {
	Kind() dbm.AttachmentKind
	List(ctx context.Context, scope DayScope) ([]dbm.DayAttachment, error)
	// Append adds the target at max(position)+1. Gaps left by removals are not reused.
	Append(ctx context.Context, scope DayScope, targetID uuid.UUID) (dbm.DayAttachment, error)
	// InsertAt shifts every row at or after position up by one and inserts the target there.
	InsertAt(ctx context.Context, scope DayScope, targetID uuid.UUID, position int) (dbm.DayAttachment, error)
	// Remove deletes one row without compacting the remaining positions.
	Remove(ctx context.Context, scope DayScope, attachmentID uuid.UUID) error
	// Reorder assigns position = index; orderedIDs must be exactly the rows of the day.
	Reorder(ctx context.Context, scope DayScope, orderedIDs []uuid.UUID) error
}

// AttachmentRepositories indexes the three position managers by kind.
type AttachmentRepositories map[dbm.AttachmentKind]AttachmentRepository

func NewAttachmentRepositories(db *gorm.DB) AttachmentRepositories {
	return AttachmentRepositories{
		dbm.KindCity:     newAttachmentRepository[dbm.TripDayCity](db),
		dbm.KindPlace:    newAttachmentRepository[dbm.TripDayPlace](db),
		dbm.KindActivity: newAttachmentRepository[dbm.TripDayActivity](db),
	}
}

type attachmentRow[T any] interface {
	*T
	dbm.DayAttachment
}

type attachmentRepository[T any, PT attachmentRow[T]] struct {
	db *gorm.DB
}

func newAttachmentRepository[T any, PT attachmentRow[T]](db *gorm.DB) AttachmentRepository {
	return &attachmentRepository[T, PT]{db: db}
}

// proto is a zero row, used as gorm model and for the kind descriptors.
func (r *attachmentRepository[T, PT]) proto() PT {
	return PT(new(T))
}

func (r *attachmentRepository[T, PT]) Kind() dbm.AttachmentKind {
	return r.proto().Kind()
}

func (r *attachmentRepository[T, PT]) withTarget(db *gorm.DB) *gorm.DB {
	for _, assoc := range r.proto().Preloads() {
		db = db.Preload(assoc)
	}
	return db
}

func (r *attachmentRepository[T, PT]) List(ctx context.Context, scope DayScope) ([]dbm.DayAttachment, error) {
	db := r.db.WithContext(ctx)
	if _, err := findVisibleDay(db, scope); err != nil {
		return nil, err
	}

	var rows []T
	err := r.withTarget(db).
		Where("trip_day_id = ?", scope.DayID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dbm.DayAttachment, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]))
	}
	return out, nil
}

func (r *attachmentRepository[T, PT]) Append(ctx context.Context, scope DayScope, targetID uuid.UUID) (dbm.DayAttachment, error) {
	return r.insert(ctx, scope, targetID, nil)
}

func (r *attachmentRepository[T, PT]) InsertAt(ctx context.Context, scope DayScope, targetID uuid.UUID, position int) (dbm.DayAttachment, error) {
	if position < 0 {
		return nil, utils.ErrInvalidPosition
	}
	return r.insert(ctx, scope, targetID, &position)
}

func (r *attachmentRepository[T, PT]) insert(ctx context.Context, scope DayScope, targetID uuid.UUID, position *int) (dbm.DayAttachment, error) {
	var created T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedDay(tx, scope); err != nil {
			return err
		}
		if err := r.checkTarget(tx, scope.ActorID, targetID); err != nil {
			return err
		}

		last, err := maxPosition(tx, r.proto(), "trip_day_id", scope.DayID)
		if err != nil {
			return err
		}

		at := last + 1
		if position != nil {
			if *position > at {
				return utils.ErrInvalidPosition
			}
			at = *position
			err := tx.Model(r.proto()).
				Where("trip_day_id = ? AND position >= ?", scope.DayID, at).
				UpdateColumn("position", gorm.Expr("position + ?", 1)).Error
			if err != nil {
				return err
			}
		}

		var row T
		PT(&row).Assign(scope.DayID, targetID, at)
		if err := tx.Omit(clause.Associations).Create(PT(&row)).Error; err != nil {
			return err
		}

		return r.withTarget(tx).First(PT(&created), "id = ?", PT(&row).AttachmentID()).Error
	})
	if err != nil {
		return nil, err
	}
	return PT(&created), nil
}

// checkTarget verifies the referenced entity exists and, for owned kinds, belongs to the actor.
// The row is share-locked so it cannot disappear before the insert commits.
func (r *attachmentRepository[T, PT]) checkTarget(tx *gorm.DB, actorID, targetID uuid.UUID) error {
	proto := r.proto()
	q := tx.Table(proto.TargetTable()).Clauses(clause.Locking{Strength: "SHARE"}).Where("id = ?", targetID)
	if proto.TargetOwned() {
		q = q.Where("owner_id = ?", actorID)
	}

	var ids []uuid.UUID
	if err := q.Limit(1).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return targetNotFound(proto.Kind())
	}
	return nil
}

func targetNotFound(kind dbm.AttachmentKind) error {
	switch kind {
	case dbm.KindCity:
		return utils.ErrCityNotFound
	case dbm.KindPlace:
		return utils.ErrPlaceNotFound
	case dbm.KindActivity:
		return utils.ErrActivityNotFound
	}
	return utils.ErrInvalidKind
}

func (r *attachmentRepository[T, PT]) Remove(ctx context.Context, scope DayScope, attachmentID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedDay(tx, scope); err != nil {
			return err
		}

		res := tx.Where("id = ? AND trip_day_id = ?", attachmentID, scope.DayID).Delete(r.proto())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrAttachmentNotFound
		}
		return nil
	})
}

func (r *attachmentRepository[T, PT]) Reorder(ctx context.Context, scope DayScope, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedDay(tx, scope); err != nil {
			return err
		}
		return applyOrder(tx, r.proto(), "trip_day_id", scope.DayID, orderedIDs)
	})
}

// IsNotFound reports whether err is a gorm missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
