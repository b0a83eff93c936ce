package persistence

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/roadwatch/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var _ monitoring.UserRepository = (*GormUserRepository)(nil)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*monitoring.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*monitoring.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every user ordered by ID
func (r *GormUserRepository) FindAll(ctx context.Context) ([]*monitoring.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*monitoring.User, len(userModels))
	for i := range userModels {
		users[i] = userModels[i].ToDomain()
	}
	return users, nil
}

// Save persists a user, assigning its ID on first insert
func (r *GormUserRepository) Save(ctx context.Context, user *monitoring.User) error {
	var model models.UserModel
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}
	user.ID = model.ID
	return nil
}
