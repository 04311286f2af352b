package service

import (
	"context"
	"fmt"

	"github.com/sarilacivert/matchcenter-service/repository"
)

type SubscriptionService struct {
	subscriptionRepository SubscriptionRepository
	logger                 Logger
}

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, logger Logger) *SubscriptionService {
	return &SubscriptionService{subscriptionRepository: subscriptionRepository, logger: logger}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, token string) error {
	_, err := s.subscriptionRepository.Create(ctx, repository.Subscription{Token: token})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info().Msg("subscription created")

	return nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, token string) error {
	if err := s.subscriptionRepository.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	s.logger.Info().Msg("subscription deleted")

	return nil
}
