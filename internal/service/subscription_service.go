package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// SubscriptionUpdate carries the optional fields of a subscription update.
type SubscriptionUpdate struct {
	StudentName   *string
	StudentEmail  *string
	Subject       *string
	Teacher       *string
	Price         *decimal.Decimal
	StartDate     *string
	EndDate       *string
	Status        *string
	PaymentStatus *string
	PaymentMethod *string
}

// SubscriptionService handles tenant-scoped subscription operations.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, adminID uint, subscription *model.Subscription) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context, adminID uint) ([]model.Subscription, error)
	UpdateSubscription(ctx context.Context, adminID, id uint, update SubscriptionUpdate) error
	DeleteSubscription(ctx context.Context, adminID, id uint) error
}

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriptionService builds a SubscriptionService.
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, adminID uint, subscription *model.Subscription) (*model.Subscription, error) {
	subscription.AdminID = adminID
	if subscription.Status == "" {
		subscription.Status = model.StatusActive
	}
	if subscription.PaymentStatus == "" {
		subscription.PaymentStatus = model.PaymentUnpaid
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return subscription, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, adminID uint) ([]model.Subscription, error) {
	return s.subscriptionRepo.ListByAdmin(ctx, adminID)
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, adminID, id uint, update SubscriptionUpdate) error {
	fields := map[string]interface{}{}
	if update.StudentName != nil {
		fields["student_name"] = *update.StudentName
	}
	if update.StudentEmail != nil {
		fields["student_email"] = *update.StudentEmail
	}
	if update.Subject != nil {
		fields["subject"] = *update.Subject
	}
	if update.Teacher != nil {
		fields["teacher"] = *update.Teacher
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.StartDate != nil {
		fields["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		fields["end_date"] = *update.EndDate
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.PaymentStatus != nil {
		fields["payment_status"] = *update.PaymentStatus
	}
	if update.PaymentMethod != nil {
		fields["payment_method"] = *update.PaymentMethod
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := s.subscriptionRepo.Update(ctx, adminID, id, fields)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, adminID, id uint) error {
	rows, err := s.subscriptionRepo.Delete(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
