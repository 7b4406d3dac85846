package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// UserRepository is the minimal users data-access interface the scheduling
// core needs; account management happens elsewhere.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	FirstByRole(ctx context.Context, role string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the gorm-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FirstByRole(ctx context.Context, role string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("id").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
