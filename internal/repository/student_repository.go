package repository

import (
	"context"

	"gorm.io/gorm"

	"madrasa/internal/model"
)

// StudentRepository defines tenant-scoped student persistence. Every method
// takes the owning admin id; there is no unscoped access path.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Student, error)
	ListRecent(ctx context.Context, adminID uint, limit int) ([]model.Student, error)
	CountByAdmin(ctx context.Context, adminID uint) (int64, error)
	CountByGrade(ctx context.Context, adminID uint, grade string) (int64, error)
	// Update applies fields to the row matching both id and adminID and
	// returns the number of matched rows; zero means not found or foreign.
	Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, adminID, id uint) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository builds a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) ListRecent(ctx context.Context, adminID uint, limit int) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).
		Order("created_at DESC").Limit(limit).Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

func (r *studentRepository) CountByGrade(ctx context.Context, adminID uint, grade string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("admin_id = ? AND grade = ?", adminID, grade).Count(&count).Error
	return count, err
}

func (r *studentRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("id = ? AND admin_id = ?", id, adminID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *studentRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).Delete(&model.Student{})
	return res.RowsAffected, res.Error
}
