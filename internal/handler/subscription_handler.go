package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/service"
)

// SubscriptionHandler handles tenant-scoped subscription endpoints.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CreateSubscriptionRequest represents a subscription creation request.
// Price is a decimal string.
type CreateSubscriptionRequest struct {
	StudentName   string `json:"studentName" validate:"required"`
	StudentEmail  string `json:"studentEmail" validate:"omitempty,email"`
	Subject       string `json:"subject"`
	Teacher       string `json:"teacher"`
	Price         string `json:"price"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
	PaymentMethod string `json:"paymentMethod"`
}

// UpdateSubscriptionRequest represents a partial subscription update.
type UpdateSubscriptionRequest struct {
	StudentName   *string `json:"studentName"`
	StudentEmail  *string `json:"studentEmail"`
	Subject       *string `json:"subject"`
	Teacher       *string `json:"teacher"`
	Price         *string `json:"price"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
	PaymentMethod *string `json:"paymentMethod"`
}

// ListSubscriptions godoc
// @Summary List the tenant's subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscriptions": subscriptions,
	})
}

// CreateSubscription godoc
// @Summary Create a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubscriptionRequest true "Subscription data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateSubscriptionRequest
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

	subscription, err := h.subscriptionService.CreateSubscription(c.Request().Context(), claims.UserID, &model.Subscription{
		StudentName:   req.StudentName,
		StudentEmail:  req.StudentEmail,
		Subject:       req.Subject,
		Teacher:       req.Teacher,
		Price:         price,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "subscription created successfully",
		"subscription": subscription,
	})
}

// UpdateSubscription godoc
// @Summary Update an owned subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Param request body UpdateSubscriptionRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.SubscriptionUpdate{
		StudentName:   req.StudentName,
		StudentEmail:  req.StudentEmail,
		Subject:       req.Subject,
		Teacher:       req.Teacher,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return err
		}
		update.Price = &price
	}

	if err := h.subscriptionService.UpdateSubscription(c.Request().Context(), claims.UserID, id, update); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "subscription updated successfully",
	})
}

// DeleteSubscription godoc
// @Summary Delete an owned subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "subscription deleted successfully",
	})
}
