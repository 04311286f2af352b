package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/config"
	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/repository"
)

// scoreboardDateFormat is the short timestamp format of the fixture list
// upstream, e.g. "2026-09-12T17:00Z".
const scoreboardDateFormat = "2006-01-02T15:04Z"

type FixtureService struct {
	summaryAPIClient  SummaryAPIClient
	fixtureRepository FixtureRepository
	cacheService      cache.Service
	externalAPI       config.ExternalAPI
	cacheTTL          time.Duration
	now               func() time.Time
	logger            Logger
}

func NewFixtureService(
	summaryAPIClient SummaryAPIClient,
	fixtureRepository FixtureRepository,
	cacheService cache.Service,
	externalAPI config.ExternalAPI,
	cacheTTL time.Duration,
	logger Logger,
) *FixtureService {
	return &FixtureService{
		summaryAPIClient:  summaryAPIClient,
		fixtureRepository: fixtureRepository,
		cacheService:      cacheService,
		externalAPI:       externalAPI,
		cacheTTL:          cacheTTL,
		now:               time.Now,
		logger:            logger,
	}
}

// List returns the club fixtures ordered by kickoff time. Upstream results
// are cached and persisted; when the upstream fails, the stored fixtures are
// served instead.
func (s *FixtureService) List(ctx context.Context) ([]Fixture, error) {
	key := cache.FixturesKey(s.externalAPI.TeamID)

	fixtures, err := cache.Fetch(ctx, s.cacheService, key, s.cacheTTL, func(ctx context.Context) (*[]Fixture, error) {
		fetched, err := s.fetchUpstream(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to fetch fixtures from upstream, falling back to stored fixtures")
			stored, errStored := s.listStored(ctx)
			if errStored != nil {
				return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
			}

			return &stored, nil
		}

		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}

	if fixtures == nil {
		return []Fixture{}, nil
	}

	return *fixtures, nil
}

// Upcoming returns the next fixture that has not finished yet.
func (s *FixtureService) Upcoming(ctx context.Context) (*Fixture, error) {
	fixtures, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range fixtures {
		if fixtures[i].Completed {
			continue
		}

		// A fixture stays current through the match itself, so anything
		// not completed counts once its kickoff is the nearest one.
		if fixtures[i].StartsAt.After(now) || fixtures[i].State != "post" {
			return &fixtures[i], nil
		}
	}

	return nil, errs.FixtureNotFoundError{Message: "no upcoming fixture found"}
}

// NextAfter returns the first fixture starting after the given one.
func (s *FixtureService) NextAfter(ctx context.Context, fixtureID string) (*Fixture, error) {
	fixtures, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range fixtures {
		if fixtures[i].ID == fixtureID {
			if i+1 < len(fixtures) {
				return &fixtures[i+1], nil
			}

			return nil, errs.FixtureNotFoundError{Message: fmt.Sprintf("no fixture after %s", fixtureID)}
		}
	}

	return nil, errs.FixtureNotFoundError{Message: fmt.Sprintf("fixture %s is not known", fixtureID)}
}

func (s *FixtureService) fetchUpstream(ctx context.Context) ([]Fixture, error) {
	response, err := s.summaryAPIClient.GetScoreboard(ctx, s.externalAPI.League, s.externalAPI.TeamID)
	if err != nil {
		return nil, err
	}

	fixtures := make([]Fixture, 0, len(response.Events))
	for _, event := range response.Events {
		fixture, err := fromScoreboardEvent(event, s.externalAPI.League)
		if err != nil {
			s.logger.Error().Err(err).Str("fixture_id", event.ID).Msg("skipping fixture with invalid payload")
			continue
		}

		fixtures = append(fixtures, *fixture)
	}

	if err := s.persist(ctx, fixtures); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist fixtures")
	}

	return fixtures, nil
}

func (s *FixtureService) persist(ctx context.Context, fixtures []Fixture) error {
	records := make([]repository.Fixture, 0, len(fixtures))
	for _, fixture := range fixtures {
		record, err := toRepositoryFixture(fixture, s.now())
		if err != nil {
			return err
		}

		records = append(records, *record)
	}

	return s.fixtureRepository.SaveAll(ctx, records)
}

func (s *FixtureService) listStored(ctx context.Context) ([]Fixture, error) {
	records, err := s.fixtureRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored fixtures: %w", err)
	}

	fixtures := make([]Fixture, 0, len(records))
	for _, record := range records {
		fixture, err := fromRepositoryFixture(record)
		if err != nil {
			return nil, fmt.Errorf("failed to map stored fixture %s: %w", record.ID, err)
		}

		fixtures = append(fixtures, *fixture)
	}

	return fixtures, nil
}

func fromScoreboardEvent(event client.ScoreboardEvent, league string) (*Fixture, error) {
	startsAt, err := parseScoreboardDate(event.Date)
	if err != nil {
		return nil, fmt.Errorf("unable to parse fixture date %s: %w", event.Date, err)
	}

	fixture := Fixture{
		ID:        event.ID,
		League:    league,
		Name:      event.Name,
		StartsAt:  startsAt,
		State:     event.Status.Type.State,
		Completed: event.Status.Type.Completed,
	}

	if len(event.Competitions) > 0 {
		for _, competitor := range event.Competitions[0].Competitors {
			ref := TeamRef{ID: competitor.Team.ID, Name: competitor.Team.DisplayName, Logo: teamLogo(competitor.Team)}
			switch competitor.HomeAway {
			case "home":
				fixture.HomeTeam = ref
			case "away":
				fixture.AwayTeam = ref
			}
		}
	}

	return &fixture, nil
}

func parseScoreboardDate(raw string) (time.Time, error) {
	if startsAt, err := time.Parse(time.RFC3339, raw); err == nil {
		return startsAt, nil
	}

	return time.Parse(scoreboardDateFormat, raw)
}

func teamLogo(team client.ScoreboardTeam) string {
	if team.Logo != "" {
		return team.Logo
	}

	if len(team.Logos) > 0 {
		return team.Logos[0].Href
	}

	return ""
}

func toRepositoryFixture(fixture Fixture, now time.Time) (*repository.Fixture, error) {
	home, err := json.Marshal(fixture.HomeTeam)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal home team of fixture %s: %w", fixture.ID, err)
	}

	away, err := json.Marshal(fixture.AwayTeam)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal away team of fixture %s: %w", fixture.ID, err)
	}

	return &repository.Fixture{
		ID:        fixture.ID,
		League:    fixture.League,
		Name:      fixture.Name,
		StartsAt:  fixture.StartsAt.UTC(),
		State:     fixture.State,
		Completed: fixture.Completed,
		HomeTeam:  home,
		AwayTeam:  away,
		UpdatedAt: now.UTC(),
	}, nil
}

func fromRepositoryFixture(record repository.Fixture) (*Fixture, error) {
	fixture := Fixture{
		ID:        record.ID,
		League:    record.League,
		Name:      record.Name,
		StartsAt:  record.StartsAt,
		State:     record.State,
		Completed: record.Completed,
	}

	if len(record.HomeTeam) > 0 {
		if err := json.Unmarshal(record.HomeTeam, &fixture.HomeTeam); err != nil {
			return nil, err
		}
	}

	if len(record.AwayTeam) > 0 {
		if err := json.Unmarshal(record.AwayTeam, &fixture.AwayTeam); err != nil {
			return nil, err
		}
	}

	return &fixture, nil
}
