package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
)

type StandingsService struct {
	summaryAPIClient    SummaryAPIClient
	standingsRepository StandingsRepository
	cacheService        cache.Service
	league              string
	cacheTTL            time.Duration
	now                 func() time.Time
	logger              Logger
}

func NewStandingsService(
	summaryAPIClient SummaryAPIClient,
	standingsRepository StandingsRepository,
	cacheService cache.Service,
	league string,
	cacheTTL time.Duration,
	logger Logger,
) *StandingsService {
	return &StandingsService{
		summaryAPIClient:    summaryAPIClient,
		standingsRepository: standingsRepository,
		cacheService:        cacheService,
		league:              league,
		cacheTTL:            cacheTTL,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *StandingsService) List(ctx context.Context) ([]StandingRow, error) {
	key := cache.StandingsKey(s.league)

	rows, err := cache.Fetch(ctx, s.cacheService, key, s.cacheTTL, func(ctx context.Context) (*[]StandingRow, error) {
		fetched, err := s.fetchUpstream(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to fetch standings from upstream, falling back to stored table")
			stored, errStored := s.listStored(ctx)
			if errStored != nil {
				return nil, fmt.Errorf("failed to fetch standings: %w", err)
			}

			return &stored, nil
		}

		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}

	if rows == nil {
		return []StandingRow{}, nil
	}

	return *rows, nil
}

func (s *StandingsService) fetchUpstream(ctx context.Context) ([]StandingRow, error) {
	response, err := s.summaryAPIClient.GetStandings(ctx, s.league)
	if err != nil {
		return nil, err
	}

	rows := make([]StandingRow, 0)
	for _, group := range response.Children {
		for _, entry := range group.Standings.Entries {
			rows = append(rows, fromStandingsEntry(entry))
		}
	}

	if err := s.persist(ctx, rows); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist standings")
	}

	return rows, nil
}

func (s *StandingsService) persist(ctx context.Context, rows []StandingRow) error {
	records := make([]repository.StandingRow, 0, len(rows))
	for _, row := range rows {
		records = append(records, repository.StandingRow{
			League:       s.league,
			Rank:         row.Rank,
			TeamID:       row.Team.ID,
			TeamName:     row.Team.Name,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
			UpdatedAt:    s.now().UTC(),
		})
	}

	return s.standingsRepository.ReplaceAll(ctx, s.league, records)
}

func (s *StandingsService) listStored(ctx context.Context) ([]StandingRow, error) {
	records, err := s.standingsRepository.List(ctx, s.league)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored standings: %w", err)
	}

	rows := make([]StandingRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, StandingRow{
			Rank:         record.Rank,
			Team:         TeamRef{ID: record.TeamID, Name: record.TeamName},
			Played:       record.Played,
			Won:          record.Won,
			Drawn:        record.Drawn,
			Lost:         record.Lost,
			GoalsFor:     record.GoalsFor,
			GoalsAgainst: record.GoalsAgainst,
			Points:       record.Points,
		})
	}

	return rows, nil
}

func fromStandingsEntry(entry client.StandingsEntry) StandingRow {
	row := StandingRow{
		Team: TeamRef{ID: entry.Team.ID, Name: entry.Team.DisplayName, Logo: teamLogo(entry.Team)},
	}

	for _, stat := range entry.Stats {
		value := int(stat.Value)
		switch stat.Name {
		case "rank":
			row.Rank = value
		case "gamesPlayed":
			row.Played = value
		case "wins":
			row.Won = value
		case "ties":
			row.Drawn = value
		case "losses":
			row.Lost = value
		case "pointsFor":
			row.GoalsFor = value
		case "pointsAgainst":
			row.GoalsAgainst = value
		case "points":
			row.Points = value
		}
	}

	return row
}
