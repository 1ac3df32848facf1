package repository

import (
	"context"

	"gorm.io/gorm"

	"madrasa/internal/model"
)

// SubscriptionRepository defines tenant-scoped subscription persistence.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *model.Subscription) error
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Subscription, error)
	CountByAdmin(ctx context.Context, adminID uint) (int64, error)
	Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, adminID, id uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository builds a GORM-backed repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *model.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Subscription, error) {
	var subscriptions []model.Subscription
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND admin_id = ?", id, adminID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND admin_id = ?", id, adminID).Delete(&model.Subscription{})
	return res.RowsAffected, res.Error
}
