package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// LabRoomRepository is the lab_rooms data-access interface (read-only).
type LabRoomRepository interface {
	GetByID(ctx context.Context, id int64) (*model.LabRoom, error)
	List(ctx context.Context) ([]model.LabRoom, error)
}

type labRoomRepo struct {
	db *gorm.DB
}

// NewLabRoomRepo creates the gorm-backed LabRoomRepository.
func NewLabRoomRepo(db *gorm.DB) LabRoomRepository {
	return &labRoomRepo{db: db}
}

func (r *labRoomRepo) GetByID(ctx context.Context, id int64) (*model.LabRoom, error) {
	var room model.LabRoom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *labRoomRepo) List(ctx context.Context) ([]model.LabRoom, error) {
	var rooms []model.LabRoom
	err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error
	return rooms, err
}
