package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
)

func TestCreateStudent(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	svc := NewStudentService(studentRepo)

	studentRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Student) bool {
		return s.AdminID == 1 && s.Status == model.StatusActive
	})).Return(nil)

	student, err := svc.CreateStudent(context.Background(), 1, &model.Student{Name: "Lina"})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), student.AdminID)
	assert.Equal(t, model.StatusActive, student.Status)
	studentRepo.AssertExpectations(t)
}

func TestUpdateStudent(t *testing.T) {
	t.Run("passes the caller's tenant id to the repository", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := NewStudentService(studentRepo)

		name := "Lina Ahmed"
		studentRepo.On("Update", mock.Anything, uint(1), uint(9), mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["name"] == "Lina Ahmed"
		})).Return(int64(1), nil)

		err := svc.UpdateStudent(context.Background(), 1, 9, StudentUpdate{Name: &name})

		assert.NoError(t, err)
		studentRepo.AssertExpectations(t)
	})

	t.Run("a row of another tenant looks like a missing row", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := NewStudentService(studentRepo)

		name := "Lina Ahmed"
		studentRepo.On("Update", mock.Anything, uint(2), uint(9), mock.Anything).Return(int64(0), nil)

		err := svc.UpdateStudent(context.Background(), 2, 9, StudentUpdate{Name: &name})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteStudent(t *testing.T) {
	t.Run("deletes an owned row", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := NewStudentService(studentRepo)

		studentRepo.On("Delete", mock.Anything, uint(1), uint(9)).Return(int64(1), nil)

		err := svc.DeleteStudent(context.Background(), 1, 9)

		assert.NoError(t, err)
	})

	t.Run("a foreign row maps to not found", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := NewStudentService(studentRepo)

		studentRepo.On("Delete", mock.Anything, uint(2), uint(9)).Return(int64(0), nil)

		err := svc.DeleteStudent(context.Background(), 2, 9)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
