package repository

import (
	"context"

	"gorm.io/gorm"

	"madrasa/internal/model"
)

// SubjectRepository defines tenant-scoped subject persistence.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Subject, error)
	CountByAdmin(ctx context.Context, adminID uint) (int64, error)
	Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, adminID, id uint) (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository builds a GORM-backed repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subject{}).
		Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

func (r *subjectRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Subject{}).
		Where("id = ? AND admin_id = ?", id, adminID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *subjectRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).Delete(&model.Subject{})
	return res.RowsAffected, res.Error
}
