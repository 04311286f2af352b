package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sarilacivert/matchcenter-service/config"
	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/phase"
	"github.com/sarilacivert/matchcenter-service/summary"
)

// LiveMatchService drives the match lifecycle of the club: it keeps track of
// the upcoming fixture, counts down to kickoff, runs the live poller while
// the match is in play and advances to the next fixture once the match is
// over. Clients read the current state through State.
type LiveMatchService struct {
	fixtureProvider FixtureProvider
	summarySaver    SummarySaver
	taskClient      TaskClient
	poller          *phase.Poller
	machine         *phase.Machine
	clock           phase.Clock
	checkDelay      time.Duration
	postDwell       time.Duration
	logger          Logger

	mu             sync.Mutex
	fixture        *Fixture
	liveSummary    *summary.MatchSummary
	kickoffTimer   phase.Timer
	dwellTimer     phase.Timer
	checkScheduled bool
	stopped        bool
}

func NewLiveMatchService(
	fixtureProvider FixtureProvider,
	summarySaver SummarySaver,
	taskClient TaskClient,
	liveAPIClient phase.LiveStatusClient,
	clock phase.Clock,
	livePolling config.LivePolling,
	googleCloud config.GoogleCloud,
	logger Logger,
) *LiveMatchService {
	machine := phase.NewMachine()

	s := &LiveMatchService{
		fixtureProvider: fixtureProvider,
		summarySaver:    summarySaver,
		taskClient:      taskClient,
		machine:         machine,
		clock:           clock,
		checkDelay:      googleCloud.SummaryCheckDelay,
		postDwell:       livePolling.PostDwell,
		logger:          logger,
	}

	s.poller = phase.NewPoller(liveAPIClient, machine, clock, livePolling.Interval, logger, s.onSummary, s.onPhase)

	return s
}

// Start loads the upcoming fixture and arms the kickoff countdown. It is
// called once on boot.
func (s *LiveMatchService) Start(ctx context.Context) error {
	fixture, err := s.fixtureProvider.Upcoming(ctx)
	if err != nil {
		// An empty or exhausted schedule is a normal boot state, not a failure.
		if !errors.As(err, &errs.FixtureNotFoundError{}) {
			return fmt.Errorf("failed to load the upcoming fixture: %w", err)
		}

		fixture = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.arm(fixture)

	return nil
}

// Stop halts the poller and all pending timers.
func (s *LiveMatchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.disarm()
	s.poller.Stop()
}

// State returns a snapshot of the current match phase, the fixture it refers
// to, the seconds left to kickoff while counting down and the latest live
// summary while the match is in play.
func (s *LiveMatchService) State() LiveState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := LiveState{
		Phase:   s.machine.Phase(),
		Fixture: s.fixture,
		Summary: s.liveSummary,
	}

	if state.Phase == phase.Countdown && s.fixture != nil {
		remaining := s.fixture.StartsAt.Sub(s.clock.Now())
		if remaining > 0 {
			state.CountdownSeconds = int64(remaining / time.Second)
		}
	}

	return state
}

// arm points the machine at the fixture and schedules the kickoff timer.
// Callers hold s.mu.
func (s *LiveMatchService) arm(fixture *Fixture) {
	s.disarm()
	s.fixture = fixture
	s.liveSummary = nil
	s.checkScheduled = false

	if fixture == nil {
		s.machine.SetFixture("", false)
		s.logger.Info().Msg("no upcoming fixture, going idle")
		return
	}

	s.machine.SetFixture(fixture.ID, !fixture.StartsAt.IsZero())
	if fixture.StartsAt.IsZero() {
		s.logger.Info().Str("fixture_id", fixture.ID).Msg("fixture has no kickoff time, going idle")
		return
	}

	wait := fixture.StartsAt.Sub(s.clock.Now())
	if wait < 0 {
		wait = 0
	}

	s.logger.Info().Str("fixture_id", fixture.ID).Str("starts_at", fixture.StartsAt.String()).
		Msg("counting down to kickoff")

	s.kickoffTimer = s.clock.AfterFunc(wait, s.onKickoff)
}

func (s *LiveMatchService) disarm() {
	if s.kickoffTimer != nil {
		s.kickoffTimer.Stop()
		s.kickoffTimer = nil
	}
	if s.dwellTimer != nil {
		s.dwellTimer.Stop()
		s.dwellTimer = nil
	}
}

func (s *LiveMatchService) onKickoff() {
	s.mu.Lock()
	if s.stopped || s.fixture == nil {
		s.mu.Unlock()
		return
	}

	fixture := *s.fixture
	s.machine.Tick(phase.EventKickoffReached)
	s.mu.Unlock()

	s.logger.Info().Str("fixture_id", fixture.ID).Msg("kickoff reached, starting the live poller")
	s.poller.Start(context.Background())
	s.scheduleSummaryCheck(fixture)
}

func (s *LiveMatchService) scheduleSummaryCheck(fixture Fixture) {
	s.mu.Lock()
	if s.checkScheduled {
		s.mu.Unlock()
		return
	}
	s.checkScheduled = true
	s.mu.Unlock()

	scheduleAt := fixture.StartsAt.Add(s.checkDelay)

	task, err := s.taskClient.ScheduleSummaryCheck(context.Background(), fixture.ID, 1, scheduleAt)
	if err != nil {
		s.logger.Error().Err(err).Str("fixture_id", fixture.ID).Msg("failed to schedule the summary check")
		return
	}

	s.logger.Info().Str("fixture_id", fixture.ID).Str("task", task.Name).
		Str("execute_at", task.ExecuteAt.String()).Msg("summary check scheduled")
}

func (s *LiveMatchService) onSummary(matchSummary *summary.MatchSummary) {
	s.mu.Lock()
	s.liveSummary = matchSummary
	s.mu.Unlock()
}

func (s *LiveMatchService) onPhase(p phase.Phase) {
	if p != phase.Post {
		return
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}

	finalSummary := s.liveSummary
	s.mu.Unlock()

	s.poller.Stop()

	if finalSummary != nil {
		if err := s.summarySaver.SaveLive(context.Background(), *finalSummary); err != nil {
			s.logger.Error().Err(err).Str("match_id", finalSummary.MatchID).Msg("failed to persist the live summary")
		}
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.dwellTimer = s.clock.AfterFunc(s.postDwell, s.onDwellElapsed)
	s.mu.Unlock()
}

func (s *LiveMatchService) onDwellElapsed() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}

	s.machine.Tick(phase.EventDwellElapsed)
	current := s.fixture
	s.mu.Unlock()

	if current == nil {
		return
	}

	next, err := s.fixtureProvider.NextAfter(context.Background(), current.ID)
	if err != nil {
		if !errors.As(err, &errs.FixtureNotFoundError{}) {
			s.logger.Error().Err(err).Str("fixture_id", current.ID).Msg("failed to load the next fixture")
		}

		next = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	s.arm(next)
}
