package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
)

func TestCreateLevel(t *testing.T) {
	t.Run("stamps the owner and stores the level", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		levelRepo.On("NameTaken", mock.Anything, uint(1), "Grade 8", uint(0)).Return(false, nil)
		levelRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Level")).Return(nil)

		level, err := svc.CreateLevel(context.Background(), 1, &model.Level{Name: "Grade 8"})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), level.AdminID)
		levelRepo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate name within the tenant", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		levelRepo.On("NameTaken", mock.Anything, uint(1), "Grade 8", uint(0)).Return(true, nil)

		_, err := svc.CreateLevel(context.Background(), 1, &model.Level{Name: "Grade 8"})

		assert.ErrorIs(t, err, apperrors.ErrLevelNameTaken)
		levelRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateLevel(t *testing.T) {
	t.Run("rename conflict check excludes the renamed level", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		name := "Grade 9"
		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(&model.Level{ID: 4, AdminID: 1, Name: "Grade 8"}, nil)
		levelRepo.On("NameTaken", mock.Anything, uint(1), "Grade 9", uint(4)).Return(false, nil)
		levelRepo.On("Update", mock.Anything, uint(1), uint(4), mock.Anything).Return(int64(1), nil)

		err := svc.UpdateLevel(context.Background(), 1, 4, LevelUpdate{Name: &name})

		assert.NoError(t, err)
		levelRepo.AssertExpectations(t)
	})

	t.Run("keeping the same name skips the conflict check", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		name := "Grade 8"
		order := 2
		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(&model.Level{ID: 4, AdminID: 1, Name: "Grade 8"}, nil)
		levelRepo.On("Update", mock.Anything, uint(1), uint(4), mock.Anything).Return(int64(1), nil)

		err := svc.UpdateLevel(context.Background(), 1, 4, LevelUpdate{Name: &name, Order: &order})

		assert.NoError(t, err)
		levelRepo.AssertNotCalled(t, "NameTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a rename to an existing name", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		name := "Grade 9"
		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(&model.Level{ID: 4, AdminID: 1, Name: "Grade 8"}, nil)
		levelRepo.On("NameTaken", mock.Anything, uint(1), "Grade 9", uint(4)).Return(true, nil)

		err := svc.UpdateLevel(context.Background(), 1, 4, LevelUpdate{Name: &name})

		assert.ErrorIs(t, err, apperrors.ErrLevelNameTaken)
	})

	t.Run("foreign level maps to not found", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		name := "Grade 9"
		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.UpdateLevel(context.Background(), 1, 4, LevelUpdate{Name: &name})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteLevel(t *testing.T) {
	t.Run("blocked while any student references the level by grade", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(&model.Level{ID: 4, AdminID: 1, Name: "Grade 8"}, nil)
		studentRepo.On("CountByGrade", mock.Anything, uint(1), "Grade 8").Return(int64(2), nil)

		err := svc.DeleteLevel(context.Background(), 1, 4)

		assert.ErrorIs(t, err, apperrors.ErrLevelInUse)
		levelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deletes an unreferenced level", func(t *testing.T) {
		levelRepo := new(MockLevelRepository)
		studentRepo := new(MockStudentRepository)
		svc := NewLevelService(levelRepo, studentRepo)

		levelRepo.On("FindByID", mock.Anything, uint(1), uint(4)).Return(&model.Level{ID: 4, AdminID: 1, Name: "Grade 8"}, nil)
		studentRepo.On("CountByGrade", mock.Anything, uint(1), "Grade 8").Return(int64(0), nil)
		levelRepo.On("Delete", mock.Anything, uint(1), uint(4)).Return(int64(1), nil)

		err := svc.DeleteLevel(context.Background(), 1, 4)

		assert.NoError(t, err)
		levelRepo.AssertExpectations(t)
	})
}
