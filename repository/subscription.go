package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sarilacivert/matchcenter-service/errs"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscription Subscription) (*Subscription, error) {
	result := r.db.WithContext(ctx).Create(&subscription)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key") {
			return nil, errs.SubscriptionAlreadyExistsError{Message: "subscription with this token already exists"}
		}

		return nil, result.Error
	}

	return &subscription, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where(&Subscription{Token: token}).Delete(&Subscription{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.SubscriptionNotFoundError{Message: fmt.Sprintf("subscription with token %s doesn't exist", token)}
	}

	return nil
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]Subscription, error) {
	var subscriptions []Subscription

	result := r.db.WithContext(ctx).Find(&subscriptions)
	if result.Error != nil {
		return nil, result.Error
	}

	return subscriptions, nil
}

func (r *SubscriptionRepository) One(ctx context.Context, token string) (*Subscription, error) {
	var subscription Subscription

	result := r.db.WithContext(ctx).Where(&Subscription{Token: token}).First(&subscription)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.SubscriptionNotFoundError{Message: fmt.Sprintf("subscription with token %s doesn't exist", token)}
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &subscription, nil
}
