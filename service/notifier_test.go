package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/service"
	"github.com/sarilacivert/matchcenter-service/service/mocks"
	"github.com/sarilacivert/matchcenter-service/summary"
	"github.com/sarilacivert/matchcenter-service/testutils"
	"github.com/stretchr/testify/assert"
)

func TestPushNotifier_NotifyFinalScore(t *testing.T) {
	ctx := context.Background()
	nop := zerolog.Nop()

	matchSummary := testutils.FakeMatchSummary(func(s *summary.MatchSummary) {
		s.HomeTeam = summary.Team{ID: "432", Name: "Galatasaray", Score: 2}
		s.AwayTeam = summary.Team{ID: "998", Name: "Fenerbahçe", Score: 1}
	})

	t.Run("it sends the final score to every subscriber", func(t *testing.T) {
		first := testutils.FakeRepositorySubscription()
		second := testutils.FakeRepositorySubscription()

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("List", ctx).Return([]repository.Subscription{first, second}, nil).Once()

		pushClient := mocks.NewPushClient(t)
		pushClient.On("Send", ctx, client.PushNotification{
			Token: first.Token,
			Title: "Maç Sonucu",
			Body:  "Galatasaray 2 - 1 Fenerbahçe",
		}).Return(nil).Once()
		pushClient.On("Send", ctx, client.PushNotification{
			Token: second.Token,
			Title: "Maç Sonucu",
			Body:  "Galatasaray 2 - 1 Fenerbahçe",
		}).Return(nil).Once()

		n := service.NewPushNotifier(pushClient, subscriptionRepository, &nop)

		err := n.NotifyFinalScore(ctx, matchSummary)

		assert.NoError(t, err)
	})

	t.Run("it does nothing without subscribers", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("List", ctx).Return([]repository.Subscription{}, nil).Once()

		pushClient := mocks.NewPushClient(t)

		n := service.NewPushNotifier(pushClient, subscriptionRepository, &nop)

		err := n.NotifyFinalScore(ctx, matchSummary)

		assert.NoError(t, err)
	})

	t.Run("one failing device does not block the others", func(t *testing.T) {
		first := testutils.FakeRepositorySubscription()
		second := testutils.FakeRepositorySubscription()

		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("List", ctx).Return([]repository.Subscription{first, second}, nil).Once()

		pushClient := mocks.NewPushClient(t)
		pushClient.On("Send", ctx, client.PushNotification{
			Token: first.Token,
			Title: "Maç Sonucu",
			Body:  "Galatasaray 2 - 1 Fenerbahçe",
		}).Return(errors.New("unregistered device")).Once()
		pushClient.On("Send", ctx, client.PushNotification{
			Token: second.Token,
			Title: "Maç Sonucu",
			Body:  "Galatasaray 2 - 1 Fenerbahçe",
		}).Return(nil).Once()

		n := service.NewPushNotifier(pushClient, subscriptionRepository, &nop)

		err := n.NotifyFinalScore(ctx, matchSummary)

		assert.NoError(t, err)
	})

	t.Run("it fails when the subscriber list cannot be loaded", func(t *testing.T) {
		subscriptionRepository := mocks.NewSubscriptionRepository(t)
		subscriptionRepository.On("List", ctx).Return(nil, errors.New("database error")).Once()

		pushClient := mocks.NewPushClient(t)

		n := service.NewPushNotifier(pushClient, subscriptionRepository, &nop)

		err := n.NotifyFinalScore(ctx, matchSummary)

		assert.Error(t, err)
	})
}
