package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/service"
)

// StudentHandler handles tenant-scoped student endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudentRequest represents a student creation request.
type CreateStudentRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Phone    string   `json:"phone"`
	Grade    string   `json:"grade"`
	Subjects []string `json:"subjects"`
	Status   string   `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate string   `json:"joinDate"`
}

// UpdateStudentRequest represents a partial student update.
type UpdateStudentRequest struct {
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Phone    *string   `json:"phone"`
	Grade    *string   `json:"grade"`
	Subjects *[]string `json:"subjects"`
	Status   *string   `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate *string   `json:"joinDate"`
}

// ListStudents godoc
// @Summary List the tenant's students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /students [get]
func (h *StudentHandler) ListStudents(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	students, err := h.studentService.ListStudents(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"students": students,
	})
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStudentRequest true "Student data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.studentService.CreateStudent(c.Request().Context(), claims.UserID, &model.Student{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Grade:    req.Grade,
		Subjects: req.Subjects,
		Status:   req.Status,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "student created successfully",
		"student": student,
	})
}

// UpdateStudent godoc
// @Summary Update an owned student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{id} [put]
func (h *StudentHandler) UpdateStudent(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.studentService.UpdateStudent(c.Request().Context(), claims.UserID, id, service.StudentUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Grade:    req.Grade,
		Subjects: req.Subjects,
		Status:   req.Status,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "student updated successfully",
	})
}

// DeleteStudent godoc
// @Summary Delete an owned student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.studentService.DeleteStudent(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "student deleted successfully",
	})
}
