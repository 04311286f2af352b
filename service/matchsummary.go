package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/config"
	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type MatchSummaryService struct {
	summaryAPIClient       SummaryAPIClient
	matchSummaryRepository MatchSummaryRepository
	taskClient             TaskClient
	notifier               Notifier
	cacheService           cache.Service
	league                 string
	cacheTTL               time.Duration
	retryDelay             time.Duration
	now                    func() time.Time
	logger                 Logger
}

func NewMatchSummaryService(
	summaryAPIClient SummaryAPIClient,
	matchSummaryRepository MatchSummaryRepository,
	taskClient TaskClient,
	notifier Notifier,
	cacheService cache.Service,
	externalAPI config.ExternalAPI,
	cacheTTL time.Duration,
	retryDelay time.Duration,
	logger Logger,
) *MatchSummaryService {
	return &MatchSummaryService{
		summaryAPIClient:       summaryAPIClient,
		matchSummaryRepository: matchSummaryRepository,
		taskClient:             taskClient,
		notifier:               notifier,
		cacheService:           cacheService,
		league:                 externalAPI.League,
		cacheTTL:               cacheTTL,
		retryDelay:             retryDelay,
		now:                    time.Now,
		logger:                 logger,
	}
}

// GetByID returns the canonical summary of one match: from the cache, then
// the database, then the upstream on demand. An upstream 404 means the
// summary is not ready yet and is reported as such, not as a failure.
func (s *MatchSummaryService) GetByID(ctx context.Context, matchID string) (*summary.MatchSummary, error) {
	return cache.Fetch(ctx, s.cacheService, cache.SummaryKey(matchID), s.cacheTTL, func(ctx context.Context) (*summary.MatchSummary, error) {
		stored, err := s.matchSummaryRepository.One(ctx, matchID)
		if err == nil {
			var matchSummary summary.MatchSummary
			if errUnmarshal := json.Unmarshal(stored.Payload, &matchSummary); errUnmarshal == nil {
				return &matchSummary, nil
			}

			s.logger.Error().Str("match_id", matchID).Msg("stored summary payload is corrupted, refetching")
		}

		if err != nil && !errors.As(err, &errs.SummaryNotReadyError{}) {
			return nil, fmt.Errorf("failed to read stored summary: %w", err)
		}

		return s.fetchAndPersist(ctx, matchID, summary.SourceESPNOnDemand)
	})
}

// CheckSummary runs one scheduled post-match summary check. While the match
// is still in play the check is re-scheduled; once the upstream reports the
// match finished, the summary is persisted and subscribers are notified.
func (s *MatchSummaryService) CheckSummary(ctx context.Context, matchID string, attempt uint) error {
	payload, err := s.summaryAPIClient.GetSummary(ctx, s.league, matchID)
	if err != nil {
		if errors.As(err, &errs.SummaryNotReadyError{}) {
			return s.reschedule(ctx, matchID, attempt)
		}

		return fmt.Errorf("failed to get summary of match %s: %w", matchID, err)
	}

	result := summary.NormalizeESPN(*payload, summary.SourceESPN, s.now())
	if result.Status != summary.StatusOK {
		s.logger.Info().Str("match_id", matchID).Str("status", string(result.Status)).
			Msg("summary payload is not usable yet, re-scheduling the check")
		return s.reschedule(ctx, matchID, attempt)
	}

	if result.Summary.MatchState != summary.StatePost {
		s.logger.Info().Str("match_id", matchID).Str("match_state", string(result.Summary.MatchState)).
			Msg("match is not finished, re-scheduling the check")
		return s.reschedule(ctx, matchID, attempt)
	}

	if err := s.persist(ctx, *result.Summary); err != nil {
		return fmt.Errorf("failed to persist summary of match %s: %w", matchID, err)
	}

	if err := s.notifier.NotifyFinalScore(ctx, *result.Summary); err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to notify subscribers about the final score")
	}

	return nil
}

// SaveLive persists a summary produced by the live feed once the match
// reaches the post state.
func (s *MatchSummaryService) SaveLive(ctx context.Context, matchSummary summary.MatchSummary) error {
	return s.persist(ctx, matchSummary)
}

func (s *MatchSummaryService) fetchAndPersist(ctx context.Context, matchID string, source summary.Source) (*summary.MatchSummary, error) {
	payload, err := s.summaryAPIClient.GetSummary(ctx, s.league, matchID)
	if err != nil {
		return nil, err
	}

	result := summary.NormalizeESPN(*payload, source, s.now())
	if result.Status == summary.StatusInvalid {
		return nil, errs.NewUnprocessableContentError(fmt.Errorf("summary payload of match %s is not usable", matchID))
	}

	if result.Status != summary.StatusOK {
		return nil, errs.SummaryNotReadyError{Message: fmt.Sprintf("summary of match %s is not available yet", matchID)}
	}

	if err := s.persist(ctx, *result.Summary); err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to persist summary")
	}

	return result.Summary, nil
}

func (s *MatchSummaryService) persist(ctx context.Context, matchSummary summary.MatchSummary) error {
	payload, err := json.Marshal(matchSummary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary of match %s: %w", matchSummary.MatchID, err)
	}

	_, err = s.matchSummaryRepository.Save(ctx, repository.MatchSummary{
		MatchID:    matchSummary.MatchID,
		League:     matchSummary.League,
		MatchState: string(matchSummary.MatchState),
		Source:     string(matchSummary.Source),
		Payload:    payload,
		UpdatedAt:  matchSummary.UpdatedAt.UTC(),
	})
	if err != nil {
		return err
	}

	_ = s.cacheService.Delete(ctx, cache.SummaryKey(matchSummary.MatchID))

	return nil
}

func (s *MatchSummaryService) reschedule(ctx context.Context, matchID string, attempt uint) error {
	nextAttempt := attempt + 1

	// Cloud Tasks may deliver a trigger more than once. An already scheduled
	// next attempt makes this re-schedule a no-op.
	if existing, err := s.taskClient.GetSummaryCheckTask(ctx, matchID, nextAttempt); err == nil {
		s.logger.Info().Str("match_id", matchID).Uint("attempt", nextAttempt).
			Str("task", existing.Name).Msg("summary check is already scheduled")

		return nil
	}

	scheduleAt := s.now().Add(s.retryDelay)

	task, err := s.taskClient.ScheduleSummaryCheck(ctx, matchID, nextAttempt, scheduleAt)
	if err != nil {
		return fmt.Errorf("failed to re-schedule summary check of match %s: %w", matchID, err)
	}

	s.logger.Info().Str("match_id", matchID).Uint("attempt", nextAttempt).
		Str("task", task.Name).Str("execute_at", task.ExecuteAt.String()).
		Msg("summary check re-scheduled")

	return nil
}
