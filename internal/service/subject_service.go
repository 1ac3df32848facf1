package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// SubjectUpdate carries the optional fields of a subject update.
type SubjectUpdate struct {
	Name        *string
	Code        *string
	Description *string
	Teacher     *string
	Grade       *string
	Price       *decimal.Decimal
	Duration    *string
	Status      *string
}

// SubjectService handles tenant-scoped subject operations.
type SubjectService interface {
	CreateSubject(ctx context.Context, adminID uint, subject *model.Subject) (*model.Subject, error)
	ListSubjects(ctx context.Context, adminID uint) ([]model.Subject, error)
	UpdateSubject(ctx context.Context, adminID, id uint, update SubjectUpdate) error
	DeleteSubject(ctx context.Context, adminID, id uint) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

// NewSubjectService builds a SubjectService.
func NewSubjectService(subjectRepo repository.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

func (s *subjectService) CreateSubject(ctx context.Context, adminID uint, subject *model.Subject) (*model.Subject, error) {
	subject.AdminID = adminID
	if subject.Status == "" {
		subject.Status = model.StatusActive
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	return subject, nil
}

func (s *subjectService) ListSubjects(ctx context.Context, adminID uint) ([]model.Subject, error) {
	return s.subjectRepo.ListByAdmin(ctx, adminID)
}

func (s *subjectService) UpdateSubject(ctx context.Context, adminID, id uint, update SubjectUpdate) error {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Code != nil {
		fields["code"] = *update.Code
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Teacher != nil {
		fields["teacher"] = *update.Teacher
	}
	if update.Grade != nil {
		fields["grade"] = *update.Grade
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Duration != nil {
		fields["duration"] = *update.Duration
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.subjectRepo.Update(ctx, adminID, id, fields)
	if err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, adminID, id uint) error {
	rows, err := s.subjectRepo.Delete(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
