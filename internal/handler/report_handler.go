package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/service"
)

// ReportHandler handles the read-only aggregation endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReports godoc
// @Summary Reports grouped by grade, teacher and subject
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReportsResult
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) GetReports(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	result, err := h.reportService.BuildReports(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}

// GetRevenue godoc
// @Summary Revenue rows and statistics
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RevenueResult
// @Failure 401 {object} errors.ErrorResponse
// @Router /revenue [get]
func (h *ReportHandler) GetRevenue(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	result, err := h.reportService.BuildRevenue(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}

// DashboardStats godoc
// @Summary Dashboard counters and recent students
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardResult
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/stats [post]
func (h *ReportHandler) DashboardStats(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	result, err := h.reportService.DashboardStats(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}
