package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *dbm.Activity) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Activity, error)
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*dbm.Activity, error)
	Save(ctx context.Context, activity *dbm.Activity) error
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *activityRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Activity, error) {
	activities := []dbm.Activity{}
	err := r.db.WithContext(ctx).
		Preload("Place").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).
		Preload("Place").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&activity).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Save(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(activity).Error
}

func (r *activityRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&dbm.Activity{})
	return res.RowsAffected > 0, res.Error
}
