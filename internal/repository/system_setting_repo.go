package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// SystemSettingRepository is the system_settings data-access interface.
type SystemSettingRepository interface {
	Get(ctx context.Context, key string) (*model.SystemSetting, error)
	Upsert(ctx context.Context, setting *model.SystemSetting) error
}

type systemSettingRepo struct {
	db *gorm.DB
}

// NewSystemSettingRepo creates the gorm-backed SystemSettingRepository.
func NewSystemSettingRepo(db *gorm.DB) SystemSettingRepository {
	return &systemSettingRepo{db: db}
}

func (r *systemSettingRepo) Get(ctx context.Context, key string) (*model.SystemSetting, error) {
	var setting model.SystemSetting
	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *systemSettingRepo) Upsert(ctx context.Context, setting *model.SystemSetting) error {
	setting.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_by", "updated_at"}),
		}).
		Create(setting).Error
}
