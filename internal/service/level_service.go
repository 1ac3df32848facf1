package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// LevelUpdate carries the optional fields of a level update.
type LevelUpdate struct {
	Name        *string
	Description *string
	Order       *int
	IsActive    *bool
}

// LevelService handles tenant-scoped level operations, including the
// per-tenant name uniqueness rule and the referential delete guard.
type LevelService interface {
	CreateLevel(ctx context.Context, adminID uint, level *model.Level) (*model.Level, error)
	ListLevels(ctx context.Context, adminID uint) ([]model.Level, error)
	UpdateLevel(ctx context.Context, adminID, id uint, update LevelUpdate) error
	DeleteLevel(ctx context.Context, adminID, id uint) error
}

type levelService struct {
	levelRepo   repository.LevelRepository
	studentRepo repository.StudentRepository
}

// NewLevelService builds a LevelService. The student repository backs the
// delete guard: a level referenced by any student's grade cannot go away.
func NewLevelService(levelRepo repository.LevelRepository, studentRepo repository.StudentRepository) LevelService {
	return &levelService{
		levelRepo:   levelRepo,
		studentRepo: studentRepo,
	}
}

// CreateLevel stores a level after checking the name is free for the tenant.
func (s *levelService) CreateLevel(ctx context.Context, adminID uint, level *model.Level) (*model.Level, error) {
	taken, err := s.levelRepo.NameTaken(ctx, adminID, level.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("check level name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrLevelNameTaken
	}

	level.AdminID = adminID
	if err := s.levelRepo.Create(ctx, level); err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return level, nil
}

// ListLevels returns all levels of the tenant ordered by sort order.
func (s *levelService) ListLevels(ctx context.Context, adminID uint) ([]model.Level, error) {
	return s.levelRepo.ListByAdmin(ctx, adminID)
}

// UpdateLevel applies a partial update. A rename checks the new name against
// every level of the tenant except the renamed one.
func (s *levelService) UpdateLevel(ctx context.Context, adminID, id uint, update LevelUpdate) error {
	existing, err := s.levelRepo.FindByID(ctx, adminID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find level: %w", err)
	}

	fields := map[string]interface{}{}
	if update.Name != nil && *update.Name != existing.Name {
		taken, err := s.levelRepo.NameTaken(ctx, adminID, *update.Name, id)
		if err != nil {
			return fmt.Errorf("check level name: %w", err)
		}
		if taken {
			return apperrors.ErrLevelNameTaken
		}
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Order != nil {
		fields["sort_order"] = *update.Order
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.levelRepo.Update(ctx, adminID, id, fields)
	if err != nil {
		return fmt.Errorf("update level: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLevel removes a level unless any student of the tenant still
// references it by grade name.
func (s *levelService) DeleteLevel(ctx context.Context, adminID, id uint) error {
	level, err := s.levelRepo.FindByID(ctx, adminID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find level: %w", err)
	}

	inUse, err := s.studentRepo.CountByGrade(ctx, adminID, level.Name)
	if err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	if inUse > 0 {
		return apperrors.ErrLevelInUse
	}

	rows, err := s.levelRepo.Delete(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("delete level: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
