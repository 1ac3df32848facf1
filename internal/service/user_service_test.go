package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
)

func TestUpdateUser(t *testing.T) {
	t.Run("username conflict check excludes the record itself", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		username := "fatima"
		userRepo.On("UsernameTaken", mock.Anything, "fatima", uint(5)).Return(false, nil)
		userRepo.On("Update", mock.Anything, uint(5), mock.Anything).Return(int64(1), nil)
		userRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Username: "fatima"}, nil)

		user, err := svc.UpdateUser(context.Background(), 5, UserUpdate{Username: &username})

		assert.NoError(t, err)
		assert.Equal(t, "fatima", user.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects a username held by another user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		username := "taken"
		userRepo.On("UsernameTaken", mock.Anything, "taken", uint(5)).Return(true, nil)

		_, err := svc.UpdateUser(context.Background(), 5, UserUpdate{Username: &username})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		email := "new@example.com"
		userRepo.On("Update", mock.Anything, uint(99), mock.Anything).Return(int64(0), nil)

		_, err := svc.UpdateUser(context.Background(), 99, UserUpdate{Email: &email})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("blocks self-delete before touching the store", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		err := svc.DeleteUser(context.Background(), 3, 3)

		assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes another user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("Delete", mock.Anything, uint(8)).Return(int64(1), nil)

		err := svc.DeleteUser(context.Background(), 3, 8)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("Delete", mock.Anything, uint(8)).Return(int64(0), nil)

		err := svc.DeleteUser(context.Background(), 3, 8)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
