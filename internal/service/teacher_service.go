package service

import (
	"context"
	"fmt"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// TeacherUpdate carries the optional fields of a teacher update.
type TeacherUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Subject    *string
	Experience *string
	Status     *string
	JoinDate   *string
}

// TeacherService handles tenant-scoped teacher operations.
type TeacherService interface {
	CreateTeacher(ctx context.Context, adminID uint, teacher *model.Teacher) (*model.Teacher, error)
	ListTeachers(ctx context.Context, adminID uint) ([]model.Teacher, error)
	UpdateTeacher(ctx context.Context, adminID, id uint, update TeacherUpdate) error
	DeleteTeacher(ctx context.Context, adminID, id uint) error
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
}

// NewTeacherService builds a TeacherService.
func NewTeacherService(teacherRepo repository.TeacherRepository) TeacherService {
	return &teacherService{teacherRepo: teacherRepo}
}

func (s *teacherService) CreateTeacher(ctx context.Context, adminID uint, teacher *model.Teacher) (*model.Teacher, error) {
	teacher.AdminID = adminID
	if teacher.Status == "" {
		teacher.Status = model.StatusActive
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}
	return teacher, nil
}

func (s *teacherService) ListTeachers(ctx context.Context, adminID uint) ([]model.Teacher, error) {
	return s.teacherRepo.ListByAdmin(ctx, adminID)
}

func (s *teacherService) UpdateTeacher(ctx context.Context, adminID, id uint, update TeacherUpdate) error {
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
	if update.Subject != nil {
		fields["subject"] = *update.Subject
	}
	if update.Experience != nil {
		fields["experience"] = *update.Experience
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

	rows, err := s.teacherRepo.Update(ctx, adminID, id, fields)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, adminID, id uint) error {
	rows, err := s.teacherRepo.Delete(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
