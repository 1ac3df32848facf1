package repository

import (
	"context"

	"gorm.io/gorm"

	"madrasa/internal/model"
)

// LevelRepository defines tenant-scoped level persistence.
type LevelRepository interface {
	Create(ctx context.Context, level *model.Level) error
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Level, error)
	FindByID(ctx context.Context, adminID, id uint) (*model.Level, error)
	// NameTaken reports whether another level of the tenant (id != excludeID)
	// holds the name. Pass excludeID 0 for creation checks.
	NameTaken(ctx context.Context, adminID uint, name string, excludeID uint) (bool, error)
	Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, adminID, id uint) (int64, error)
}

type levelRepository struct {
	db *gorm.DB
}

// NewLevelRepository builds a GORM-backed repository.
func NewLevelRepository(db *gorm.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) Create(ctx context.Context, level *model.Level) error {
	return r.db.WithContext(ctx).Create(level).Error
}

func (r *levelRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Level, error) {
	var levels []model.Level
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).
		Order("sort_order ASC").Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *levelRepository) FindByID(ctx context.Context, adminID, id uint) (*model.Level, error) {
	var level model.Level
	err := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *levelRepository) NameTaken(ctx context.Context, adminID uint, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Level{}).
		Where("admin_id = ? AND name = ? AND id <> ?", adminID, name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *levelRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Level{}).
		Where("id = ? AND admin_id = ?", id, adminID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *levelRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).Delete(&model.Level{})
	return res.RowsAffected, res.Error
}
