package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/service"
)

// LevelHandler handles tenant-scoped level endpoints.
type LevelHandler struct {
	levelService service.LevelService
}

// NewLevelHandler creates a new level handler.
func NewLevelHandler(levelService service.LevelService) *LevelHandler {
	return &LevelHandler{levelService: levelService}
}

// CreateLevelRequest represents a level creation request.
type CreateLevelRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateLevelRequest represents a partial level update.
type UpdateLevelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// ListLevels godoc
// @Summary List the tenant's levels
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /levels [get]
func (h *LevelHandler) ListLevels(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	levels, err := h.levelService.ListLevels(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"levels": levels,
	})
}

// CreateLevel godoc
// @Summary Create a level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLevelRequest true "Level data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /levels [post]
func (h *LevelHandler) CreateLevel(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	level, err := h.levelService.CreateLevel(c.Request().Context(), claims.UserID, &model.Level{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    isActive,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "level created successfully",
		"level":   level,
	})
}

// UpdateLevel godoc
// @Summary Update an owned level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Param request body UpdateLevelRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /levels/{id} [put]
func (h *LevelHandler) UpdateLevel(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.levelService.UpdateLevel(c.Request().Context(), claims.UserID, id, service.LevelUpdate{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "level updated successfully",
	})
}

// DeleteLevel godoc
// @Summary Delete an owned level
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /levels/{id} [delete]
func (h *LevelHandler) DeleteLevel(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.levelService.DeleteLevel(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "level deleted successfully",
	})
}
