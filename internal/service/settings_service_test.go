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

func TestGetSettings(t *testing.T) {
	t.Run("falls back to defaults when the tenant never saved settings", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		settingRepo := new(MockSettingRepository)
		svc := NewSettingsService(userRepo, settingRepo)

		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "fatima", Language: "ar"}, nil)
		settingRepo.On("FindByAdmin", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		view, err := svc.GetSettings(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "fatima", view.Profile.Name)
		assert.Equal(t, model.DefaultNotificationSettings(), view.Settings.Notifications)
		assert.Equal(t, model.DefaultSystemSettings(), view.Settings.System)
	})

	t.Run("returns stored settings when present", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		settingRepo := new(MockSettingRepository)
		svc := NewSettingsService(userRepo, settingRepo)

		stored := &model.Setting{
			AdminID:       1,
			Notifications: model.NotificationSettings{EmailNotifications: false},
			System:        model.SystemSettings{SystemName: "My Center", Currency: "SAR"},
		}
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "fatima"}, nil)
		settingRepo.On("FindByAdmin", mock.Anything, uint(1)).Return(stored, nil)

		view, err := svc.GetSettings(context.Background(), 1)

		assert.NoError(t, err)
		assert.False(t, view.Settings.Notifications.EmailNotifications)
		assert.Equal(t, "My Center", view.Settings.System.SystemName)
	})
}

func TestUpdatePassword(t *testing.T) {
	t.Run("wrong current password leaves the hash unchanged", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		settingRepo := new(MockSettingRepository)
		svc := NewSettingsService(userRepo, settingRepo)

		stored := &model.User{ID: 1, Username: "fatima", PasswordHash: hashPassword(t, "secret123")}
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)

		err := svc.UpdatePassword(context.Background(), 1, "wrong", "newpassword")

		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores a new hash after the current password verifies", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		settingRepo := new(MockSettingRepository)
		svc := NewSettingsService(userRepo, settingRepo)

		stored := &model.User{ID: 1, Username: "fatima", PasswordHash: hashPassword(t, "secret123")}
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
		userRepo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, ok := fields["password_hash"]
			return ok
		})).Return(int64(1), nil)

		err := svc.UpdatePassword(context.Background(), 1, "secret123", "newpassword")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestUpdateNotifications(t *testing.T) {
	userRepo := new(MockUserRepository)
	settingRepo := new(MockSettingRepository)
	svc := NewSettingsService(userRepo, settingRepo)

	notifications := model.NotificationSettings{EmailNotifications: true, SystemUpdates: false}
	settingRepo.On("UpsertNotifications", mock.Anything, uint(1), notifications).Return(nil)

	err := svc.UpdateNotifications(context.Background(), 1, notifications)

	assert.NoError(t, err)
	settingRepo.AssertExpectations(t)
}
