package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *dbm.Place) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Place, error)
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*dbm.Place, error)
	Save(ctx context.Context, place *dbm.Place) error
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *dbm.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dbm.Place, error) {
	places := []dbm.Place{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&places).Error
	return places, err
}

// FindOwned returns nil, nil when the place is missing or owned by someone else.
func (r *placeRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*dbm.Place, error) {
	var place dbm.Place
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&place).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) Save(ctx context.Context, place *dbm.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&dbm.Place{})
	return res.RowsAffected > 0, res.Error
}
