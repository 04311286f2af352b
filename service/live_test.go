package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/config"
	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/phase"
	phasemocks "github.com/sarilacivert/matchcenter-service/phase/mocks"
	"github.com/sarilacivert/matchcenter-service/service"
	"github.com/sarilacivert/matchcenter-service/service/mocks"
	"github.com/sarilacivert/matchcenter-service/summary"
	"github.com/sarilacivert/matchcenter-service/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type liveServiceMocks struct {
	fixtureProvider *mocks.FixtureProvider
	summarySaver    *mocks.SummarySaver
	taskClient      *mocks.TaskClient
	liveAPIClient   *phasemocks.LiveStatusClient
	clock           *testutils.FakeClock
}

func newLiveMatchService(t *testing.T, now time.Time) (*service.LiveMatchService, liveServiceMocks) {
	m := liveServiceMocks{
		fixtureProvider: mocks.NewFixtureProvider(t),
		summarySaver:    mocks.NewSummarySaver(t),
		taskClient:      mocks.NewTaskClient(t),
		liveAPIClient:   phasemocks.NewLiveStatusClient(t),
		clock:           testutils.NewFakeClock(now),
	}

	nop := zerolog.Nop()
	s := service.NewLiveMatchService(
		m.fixtureProvider,
		m.summarySaver,
		m.taskClient,
		m.liveAPIClient,
		m.clock,
		config.LivePolling{Interval: 30 * time.Second, PostDwell: 30 * time.Second},
		config.GoogleCloud{SummaryCheckDelay: 115 * time.Minute},
		&nop,
	)

	return s, m
}

func TestLiveMatchService_Start(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC)

	t.Run("it counts down to the next kickoff", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		fixture := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = now.Add(time.Hour) })
		m.fixtureProvider.On("Upcoming", ctx).Return(&fixture, nil).Once()

		err := s.Start(ctx)

		require.NoError(t, err)

		state := s.State()
		assert.Equal(t, phase.Countdown, state.Phase)
		assert.Equal(t, fixture.ID, state.Fixture.ID)
		assert.Equal(t, int64(3600), state.CountdownSeconds)
		assert.Nil(t, state.Summary)
	})

	t.Run("it goes idle when the schedule holds no upcoming fixture", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		m.fixtureProvider.On("Upcoming", ctx).
			Return(nil, errs.FixtureNotFoundError{Message: "no upcoming fixture found"}).
			Once()

		err := s.Start(ctx)

		require.NoError(t, err)
		assert.Equal(t, phase.Idle, s.State().Phase)
	})

	t.Run("it goes idle when the kickoff time is unknown", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		fixture := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = time.Time{} })
		m.fixtureProvider.On("Upcoming", ctx).Return(&fixture, nil).Once()

		err := s.Start(ctx)

		require.NoError(t, err)

		state := s.State()
		assert.Equal(t, phase.Idle, state.Phase)
		assert.Equal(t, fixture.ID, state.Fixture.ID)
	})

	t.Run("it fails when the upcoming fixture cannot be loaded", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		m.fixtureProvider.On("Upcoming", ctx).Return(nil, errors.New("database error")).Once()

		err := s.Start(ctx)

		assert.Error(t, err)
	})
}

func TestLiveMatchService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC)

	t.Run("it runs a match from countdown to the next fixture", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		fixture := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = now.Add(time.Hour) })
		next := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = now.Add(72 * time.Hour) })

		m.fixtureProvider.On("Upcoming", ctx).Return(&fixture, nil).Once()
		require.NoError(t, s.Start(ctx))

		inPayload := testutils.FakeLivePayload(func(p *summary.LivePayload) { p.MatchID = fixture.ID })
		postPayload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.MatchID = fixture.ID
			p.MatchState = "post"
		})
		m.liveAPIClient.On("GetLiveMatch", mock.Anything).Return(&inPayload, nil).Once()
		m.liveAPIClient.On("GetLiveMatch", mock.Anything).Return(&postPayload, nil)

		m.taskClient.On("ScheduleSummaryCheck", mock.Anything, fixture.ID, uint(1), fixture.StartsAt.Add(115*time.Minute)).
			Return(&client.Task{Name: "summary-check-" + fixture.ID}, nil).Once()

		// Kickoff: the poller starts and the first poll reports an in-play match.
		m.clock.Advance(time.Hour)

		assert.Eventually(t, func() bool {
			state := s.State()
			return state.Phase == phase.In && state.Summary != nil
		}, time.Second, 10*time.Millisecond)

		state := s.State()
		assert.Equal(t, fixture.ID, state.Summary.MatchID)
		assert.Equal(t, summary.StateIn, state.Summary.MatchState)

		m.summarySaver.On("SaveLive", mock.Anything, mock.MatchedBy(func(saved summary.MatchSummary) bool {
			return saved.MatchID == fixture.ID && saved.MatchState == summary.StatePost
		})).Return(nil).Once()
		m.fixtureProvider.On("NextAfter", mock.Anything, fixture.ID).Return(&next, nil).Once()

		// The next poll reports the final whistle.
		m.clock.Tick()

		assert.Eventually(t, func() bool {
			return s.State().Phase == phase.Post
		}, time.Second, 10*time.Millisecond)

		// The dwell timer is armed asynchronously after the summary is
		// persisted, so keep advancing until it has fired.
		assert.Eventually(t, func() bool {
			m.clock.Advance(30 * time.Second)
			state := s.State()
			return state.Phase == phase.Countdown && state.Fixture != nil && state.Fixture.ID == next.ID
		}, time.Second, 10*time.Millisecond)

		assert.Nil(t, s.State().Summary)
	})

	t.Run("it keeps showing the final score when the schedule is exhausted", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)
		defer s.Stop()

		fixture := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = now.Add(time.Minute) })

		m.fixtureProvider.On("Upcoming", ctx).Return(&fixture, nil).Once()
		require.NoError(t, s.Start(ctx))

		postPayload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.MatchID = fixture.ID
			p.MatchState = "post"
		})
		m.liveAPIClient.On("GetLiveMatch", mock.Anything).Return(&postPayload, nil)
		m.taskClient.On("ScheduleSummaryCheck", mock.Anything, fixture.ID, uint(1), mock.AnythingOfType("time.Time")).
			Return(&client.Task{Name: "summary-check-" + fixture.ID}, nil).Once()
		m.summarySaver.On("SaveLive", mock.Anything, mock.AnythingOfType("summary.MatchSummary")).Return(nil).Once()
		m.fixtureProvider.On("NextAfter", mock.Anything, fixture.ID).
			Return(nil, errs.FixtureNotFoundError{Message: "no fixture after " + fixture.ID}).
			Once()

		m.clock.Advance(time.Minute)

		assert.Eventually(t, func() bool {
			return s.State().Phase == phase.Post
		}, time.Second, 10*time.Millisecond)

		assert.Eventually(t, func() bool {
			m.clock.Advance(30 * time.Second)
			return s.State().Phase == phase.Idle
		}, time.Second, 10*time.Millisecond)

		assert.Nil(t, s.State().Fixture)
	})

	t.Run("stop cancels the pending kickoff", func(t *testing.T) {
		s, m := newLiveMatchService(t, now)

		fixture := testutils.FakeFixture(func(f *service.Fixture) { f.StartsAt = now.Add(time.Hour) })
		m.fixtureProvider.On("Upcoming", ctx).Return(&fixture, nil).Once()
		require.NoError(t, s.Start(ctx))

		s.Stop()
		m.clock.Advance(2 * time.Hour)

		// No poll, no scheduled check: the live and task mocks have no
		// expectations and would fail on any call.
		assert.Equal(t, phase.Countdown, s.State().Phase)
	})
}
