package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// ProfileUpdate carries the optional profile fields of a settings update.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Language *string
	Timezone *string
	Avatar   *string
}

// ProfileView is the profile section of the settings response.
type ProfileView struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Language  string      `json:"language"`
	Timezone  string      `json:"timezone"`
	Avatar    string      `json:"avatar,omitempty"`
	CreatedAt interface{} `json:"createdAt"`
	LastLogin interface{} `json:"lastLogin"`
}

// SettingsView bundles the caller profile with the stored (or default)
// tenant settings.
type SettingsView struct {
	Profile  ProfileView  `json:"profile"`
	Settings SettingsBody `json:"settings"`
}

// SettingsBody is the notifications/system section of the settings response.
type SettingsBody struct {
	Notifications model.NotificationSettings `json:"notifications"`
	System        model.SystemSettings       `json:"system"`
}

// SettingsService handles the per-tenant settings endpoints.
type SettingsService interface {
	GetSettings(ctx context.Context, adminID uint) (*SettingsView, error)
	UpdateProfile(ctx context.Context, adminID uint, update ProfileUpdate) error
	// UpdatePassword stores a new hash only after the current password verifies.
	UpdatePassword(ctx context.Context, adminID uint, currentPassword, newPassword string) error
	UpdateNotifications(ctx context.Context, adminID uint, notifications model.NotificationSettings) error
	UpdateSystem(ctx context.Context, adminID uint, system model.SystemSettings) error
}

type settingsService struct {
	userRepo    repository.UserRepository
	settingRepo repository.SettingRepository
}

// NewSettingsService builds a SettingsService.
func NewSettingsService(userRepo repository.UserRepository, settingRepo repository.SettingRepository) SettingsService {
	return &settingsService{
		userRepo:    userRepo,
		settingRepo: settingRepo,
	}
}

// GetSettings returns the caller's profile plus stored settings, falling back
// to defaults when the tenant never saved any.
func (s *settingsService) GetSettings(ctx context.Context, adminID uint) (*SettingsView, error) {
	user, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	body := SettingsBody{
		Notifications: model.DefaultNotificationSettings(),
		System:        model.DefaultSystemSettings(),
	}
	setting, err := s.settingRepo.FindByAdmin(ctx, adminID)
	if err == nil {
		body.Notifications = setting.Notifications
		body.System = setting.System
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &SettingsView{
		Profile: ProfileView{
			Name:      user.Username,
			Email:     user.Email,
			Phone:     user.Phone,
			Language:  user.Language,
			Timezone:  user.Timezone,
			Avatar:    user.Avatar,
			CreatedAt: user.CreatedAt,
			LastLogin: user.LastLogin,
		},
		Settings: body,
	}, nil
}

// UpdateProfile applies a partial profile update to the caller's account.
func (s *settingsService) UpdateProfile(ctx context.Context, adminID uint, update ProfileUpdate) error {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["username"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Language != nil {
		fields["language"] = *update.Language
	}
	if update.Timezone != nil {
		fields["timezone"] = *update.Timezone
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.userRepo.Update(ctx, adminID, fields)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword verifies the current password before storing a new hash.
// A failed check leaves the stored hash unchanged.
func (s *settingsService) UpdatePassword(ctx context.Context, adminID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.userRepo.Update(ctx, adminID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdateNotifications upserts the tenant's notification settings.
func (s *settingsService) UpdateNotifications(ctx context.Context, adminID uint, notifications model.NotificationSettings) error {
	if err := s.settingRepo.UpsertNotifications(ctx, adminID, notifications); err != nil {
		return fmt.Errorf("upsert notifications: %w", err)
	}
	return nil
}

// UpdateSystem upserts the tenant's system settings.
func (s *settingsService) UpdateSystem(ctx context.Context, adminID uint, system model.SystemSettings) error {
	if err := s.settingRepo.UpsertSystem(ctx, adminID, system); err != nil {
		return fmt.Errorf("upsert system settings: %w", err)
	}
	return nil
}
