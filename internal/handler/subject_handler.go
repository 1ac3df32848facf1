package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/service"
)

// SubjectHandler handles tenant-scoped subject endpoints.
type SubjectHandler struct {
	subjectService service.SubjectService
}

// NewSubjectHandler creates a new subject handler.
func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// CreateSubjectRequest represents a subject creation request. Price is a
// decimal string.
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Teacher     string `json:"teacher"`
	Grade       string `json:"grade"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateSubjectRequest represents a partial subject update.
type UpdateSubjectRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Teacher     *string `json:"teacher"`
	Grade       *string `json:"grade"`
	Price       *string `json:"price"`
	Duration    *string `json:"duration"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ListSubjects godoc
// @Summary List the tenant's subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	subjects, err := h.subjectService.ListSubjects(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subjects": subjects,
	})
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubjectRequest true "Subject data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return err
	}

	subject, err := h.subjectService.CreateSubject(c.Request().Context(), claims.UserID, &model.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Teacher:     req.Teacher,
		Grade:       req.Grade,
		Price:       price,
		Duration:    req.Duration,
		Status:      req.Status,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "subject created successfully",
		"subject": subject,
	})
}

// UpdateSubject godoc
// @Summary Update an owned subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subjects/{id} [put]
func (h *SubjectHandler) UpdateSubject(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.SubjectUpdate{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Teacher:     req.Teacher,
		Grade:       req.Grade,
		Duration:    req.Duration,
		Status:      req.Status,
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return err
		}
		update.Price = &price
	}

	if err := h.subjectService.UpdateSubject(c.Request().Context(), claims.UserID, id, update); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "subject updated successfully",
	})
}

// DeleteSubject godoc
// @Summary Delete an owned subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) DeleteSubject(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.subjectService.DeleteSubject(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "subject deleted successfully",
	})
}

// parsePrice parses a decimal price string; empty means zero.
func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}
	return price, nil
}
