package repository

import (
	"context"

	"gorm.io/gorm"

	"madrasa/internal/model"
)

// TeacherRepository defines tenant-scoped teacher persistence.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Teacher, error)
	CountByAdmin(ctx context.Context, adminID uint) (int64, error)
	Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, adminID, id uint) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository builds a GORM-backed repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).
		Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

func (r *teacherRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Teacher{}).
		Where("id = ? AND admin_id = ?", id, adminID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *teacherRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).Delete(&model.Teacher{})
	return res.RowsAffected, res.Error
}
