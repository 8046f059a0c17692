package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
)

type CityRepository interface {
	Create(ctx context.Context, city *dbm.City) error
	List(ctx context.Context) ([]dbm.City, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error)
	// FindByName matches name and country; a nil country matches cities without one.
	FindByName(ctx context.Context, name string, country *string) (*dbm.City, error)
	Save(ctx context.Context, city *dbm.City) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *dbm.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) List(ctx context.Context) ([]dbm.City, error) {
	cities := []dbm.City{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *cityRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	var city dbm.City
	if err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByName(ctx context.Context, name string, country *string) (*dbm.City, error) {
	q := r.db.WithContext(ctx).Where("name = ?", name)
	if country == nil {
		q = q.Where("country IS NULL")
	} else {
		q = q.Where("country = ?", *country)
	}

	var city dbm.City
	if err := q.First(&city).Error; err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Save(ctx context.Context, city *dbm.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.City{})
	return res.RowsAffected > 0, res.Error
}
