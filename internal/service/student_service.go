package service

import (
	"context"
	"fmt"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// StudentUpdate carries the optional fields of a student update.
type StudentUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Grade    *string
	Subjects *[]string
	Status   *string
	JoinDate *string
}

// StudentService handles tenant-scoped student operations.
type StudentService interface {
	CreateStudent(ctx context.Context, adminID uint, student *model.Student) (*model.Student, error)
	ListStudents(ctx context.Context, adminID uint) ([]model.Student, error)
	UpdateStudent(ctx context.Context, adminID, id uint, update StudentUpdate) error
	DeleteStudent(ctx context.Context, adminID, id uint) error
}

type studentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService builds a StudentService.
func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

// CreateStudent stamps the owner and stores the student.
func (s *studentService) CreateStudent(ctx context.Context, adminID uint, student *model.Student) (*model.Student, error) {
	student.AdminID = adminID
	if student.Status == "" {
		student.Status = model.StatusActive
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

// ListStudents returns all students of the tenant.
func (s *studentService) ListStudents(ctx context.Context, adminID uint) ([]model.Student, error) {
	return s.studentRepo.ListByAdmin(ctx, adminID)
}

// UpdateStudent applies a partial update to an owned student.
func (s *studentService) UpdateStudent(ctx context.Context, adminID, id uint, update StudentUpdate) error {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Grade != nil {
		fields["grade"] = *update.Grade
	}
	if update.Subjects != nil {
		fields["subjects"] = *update.Subjects
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.JoinDate != nil {
		fields["join_date"] = *update.JoinDate
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.studentRepo.Update(ctx, adminID, id, fields)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStudent removes an owned student.
func (s *studentService) DeleteStudent(ctx context.Context, adminID, id uint) error {
	rows, err := s.studentRepo.Delete(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
