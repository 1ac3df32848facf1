package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/service"
)

// Settings update types accepted by UpdateSettings.
const (
	settingsTypeProfile       = "profile"
	settingsTypePassword      = "password"
	settingsTypeNotifications = "notifications"
	settingsTypeSystem        = "system"
)

// SettingsHandler handles the per-tenant settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a settings update. The payload under data
// depends on type.
type UpdateSettingsRequest struct {
	Type string          `json:"type" validate:"required,oneof=profile password notifications system"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// ProfileData is the data payload for a profile update.
type ProfileData struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Language *string `json:"language"`
	Timezone *string `json:"timezone"`
	Avatar   *string `json:"avatar"`
}

// PasswordData is the data payload for a password change.
type PasswordData struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// GetSettings godoc
// @Summary Get the caller's profile and tenant settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SettingsView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	view, err := h.settingsService.GetSettings(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateSettings godoc
// @Summary Update one settings section
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Settings type and data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	switch req.Type {
	case settingsTypeProfile:
		var data ProfileData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid profile data")
		}
		if err := c.Validate(&data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		err = h.settingsService.UpdateProfile(ctx, claims.UserID, service.ProfileUpdate{
			Name:     data.Name,
			Email:    data.Email,
			Phone:    data.Phone,
			Language: data.Language,
			Timezone: data.Timezone,
			Avatar:   data.Avatar,
		})
	case settingsTypePassword:
		var data PasswordData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid password data")
		}
		if err := c.Validate(&data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		err = h.settingsService.UpdatePassword(ctx, claims.UserID, data.CurrentPassword, data.NewPassword)
	case settingsTypeNotifications:
		var data model.NotificationSettings
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid notification data")
		}
		err = h.settingsService.UpdateNotifications(ctx, claims.UserID, data)
	case settingsTypeSystem:
		var data model.SystemSettings
		if err := json.Unmarshal(req.Data, &data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid system data")
		}
		err = h.settingsService.UpdateSystem(ctx, claims.UserID, data)
	default:
		err = apperrors.ErrInvalidSettingsType
	}

	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "settings updated successfully",
	})
}
