package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
)

// AccountRepository finders return nil, nil when no account matches.
type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	// FindByEmail expects an already normalized address.
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit("Trips").Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.first(ctx, "email = ?", email)
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return a.first(ctx, "id = ?", id)
}

func (a *accountRepository) first(ctx context.Context, query string, arg interface{}) (*db_models.Account, error) {
	var account db_models.Account
	if err := a.db.WithContext(ctx).Where(query, arg).First(&account).Error; err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
