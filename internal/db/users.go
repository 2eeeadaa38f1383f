package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tetherhq/tether/internal/models"
)

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Ensure returns the id for name, creating the user on first sight.
// Racing submissions under the same unseen name resolve to one row.
func (r *UserRepository) Ensure(ctx context.Context, name string) (int64, error) {
	user := models.User{Name: name}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&user)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		return user.ID, nil
	}

	// Lost the race or the user already existed
	var existing models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
		return 0, err
	}
	return existing.ID, nil
}
