package service

import (
	"context"
	"fmt"

	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/summary"
)

// PushNotifier sends the final score of a finished match to every
// subscribed device.
type PushNotifier struct {
	pushClient             PushClient
	subscriptionRepository SubscriptionRepository
	logger                 Logger
}

func NewPushNotifier(pushClient PushClient, subscriptionRepository SubscriptionRepository, logger Logger) *PushNotifier {
	return &PushNotifier{
		pushClient:             pushClient,
		subscriptionRepository: subscriptionRepository,
		logger:                 logger,
	}
}

func (n *PushNotifier) NotifyFinalScore(ctx context.Context, matchSummary summary.MatchSummary) error {
	subscriptions, err := n.subscriptionRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	if len(subscriptions) == 0 {
		n.logger.Info().Str("match_id", matchSummary.MatchID).Msg("no subscribers to notify")
		return nil
	}

	body := fmt.Sprintf("%s %d - %d %s",
		matchSummary.HomeTeam.Name, matchSummary.HomeTeam.Score,
		matchSummary.AwayTeam.Score, matchSummary.AwayTeam.Name,
	)

	failed := 0
	for _, subscription := range subscriptions {
		notification := client.PushNotification{
			Token: subscription.Token,
			Title: "Maç Sonucu",
			Body:  body,
		}

		if err := n.pushClient.Send(ctx, notification); err != nil {
			failed++
			n.logger.Error().Err(err).Str("match_id", matchSummary.MatchID).Msg("failed to send push notification")
		}
	}

	n.logger.Info().Str("match_id", matchSummary.MatchID).
		Int("sent", len(subscriptions)-failed).Int("failed", failed).
		Msg("final score notifications dispatched")

	return nil
}
