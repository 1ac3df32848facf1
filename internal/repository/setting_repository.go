package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasa/internal/model"
)

// SettingRepository defines tenant-scoped settings persistence. Each tenant
// has at most one row, created lazily by Upsert.
type SettingRepository interface {
	FindByAdmin(ctx context.Context, adminID uint) (*model.Setting, error)
	UpsertNotifications(ctx context.Context, adminID uint, notifications model.NotificationSettings) error
	UpsertSystem(ctx context.Context, adminID uint, system model.SystemSettings) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository builds a GORM-backed repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) FindByAdmin(ctx context.Context, adminID uint) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) UpsertNotifications(ctx context.Context, adminID uint, notifications model.NotificationSettings) error {
	setting := model.Setting{
		AdminID:       adminID,
		Notifications: notifications,
		System:        model.DefaultSystemSettings(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"notifications", "updated_at"}),
	}).Create(&setting).Error
}

func (r *settingRepository) UpsertSystem(ctx context.Context, adminID uint, system model.SystemSettings) error {
	setting := model.Setting{
		AdminID:       adminID,
		Notifications: model.DefaultNotificationSettings(),
		System:        system,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"system", "updated_at"}),
	}).Create(&setting).Error
}
