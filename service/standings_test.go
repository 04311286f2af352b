package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/service"
	"github.com/sarilacivert/matchcenter-service/service/mocks"
	"github.com/sarilacivert/matchcenter-service/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStandingsService(t *testing.T) (*service.StandingsService, *mocks.SummaryAPIClient, *mocks.StandingsRepository) {
	t.Helper()

	summaryAPIClient := mocks.NewSummaryAPIClient(t)
	standingsRepository := mocks.NewStandingsRepository(t)
	nop := zerolog.Nop()

	s := service.NewStandingsService(
		summaryAPIClient,
		standingsRepository,
		cache.NewMemoryCache(),
		"tur.1",
		time.Hour,
		&nop,
	)

	return s, summaryAPIClient, standingsRepository
}

func TestStandingsService_List(t *testing.T) {
	ctx := context.Background()

	leader := testutils.FakeScoreboardTeam()
	runnerUp := testutils.FakeScoreboardTeam()

	response := &client.StandingsResponse{
		Children: []client.StandingsGroup{
			{
				Standings: client.StandingsTable{
					Entries: []client.StandingsEntry{
						{
							Team: leader,
							Stats: []client.StandingsStat{
								{Name: "rank", Value: 1},
								{Name: "gamesPlayed", Value: 30},
								{Name: "wins", Value: 26},
								{Name: "ties", Value: 3},
								{Name: "losses", Value: 1},
								{Name: "pointsFor", Value: 75},
								{Name: "pointsAgainst", Value: 20},
								{Name: "points", Value: 81},
							},
						},
						{
							Team: runnerUp,
							Stats: []client.StandingsStat{
								{Name: "rank", Value: 2},
								{Name: "points", Value: 78},
							},
						},
					},
				},
			},
		},
	}

	t.Run("it maps the upstream table, persists it and caches the result", func(t *testing.T) {
		s, summaryAPIClient, standingsRepository := newStandingsService(t)

		summaryAPIClient.On("GetStandings", ctx, "tur.1").Return(response, nil).Once()
		standingsRepository.On("ReplaceAll", ctx, "tur.1", mock.MatchedBy(func(records []repository.StandingRow) bool {
			return len(records) == 2 &&
				records[0].TeamID == leader.ID &&
				records[0].Rank == 1 &&
				records[0].Points == 81 &&
				records[1].TeamID == runnerUp.ID
		})).Return(nil).Once()

		rows, err := s.List(ctx)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].Rank)
		assert.Equal(t, leader.ID, rows[0].Team.ID)
		assert.Equal(t, leader.DisplayName, rows[0].Team.Name)
		assert.Equal(t, 30, rows[0].Played)
		assert.Equal(t, 26, rows[0].Won)
		assert.Equal(t, 3, rows[0].Drawn)
		assert.Equal(t, 1, rows[0].Lost)
		assert.Equal(t, 75, rows[0].GoalsFor)
		assert.Equal(t, 20, rows[0].GoalsAgainst)
		assert.Equal(t, 81, rows[0].Points)
		assert.Equal(t, 78, rows[1].Points)

		// served from cache, the client expectation above is Once
		cached, err := s.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, rows, cached)
	})

	t.Run("it serves the table even when persisting fails", func(t *testing.T) {
		s, summaryAPIClient, standingsRepository := newStandingsService(t)

		summaryAPIClient.On("GetStandings", ctx, "tur.1").Return(response, nil).Once()
		standingsRepository.On("ReplaceAll", ctx, "tur.1", mock.Anything).Return(errors.New("database error")).Once()

		rows, err := s.List(ctx)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("it falls back to the stored table when the upstream fails", func(t *testing.T) {
		s, summaryAPIClient, standingsRepository := newStandingsService(t)

		stored := repository.StandingRow{League: "tur.1", Rank: 1, TeamID: "432", TeamName: "Galatasaray", Points: 84}

		summaryAPIClient.On("GetStandings", ctx, "tur.1").Return(nil, errors.New("upstream is down")).Once()
		standingsRepository.On("List", ctx, "tur.1").Return([]repository.StandingRow{stored}, nil).Once()

		rows, err := s.List(ctx)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "432", rows[0].Team.ID)
		assert.Equal(t, "Galatasaray", rows[0].Team.Name)
		assert.Equal(t, 84, rows[0].Points)
	})

	t.Run("it fails when both the upstream and the stored table are unavailable", func(t *testing.T) {
		s, summaryAPIClient, standingsRepository := newStandingsService(t)

		summaryAPIClient.On("GetStandings", ctx, "tur.1").Return(nil, errors.New("upstream is down")).Once()
		standingsRepository.On("List", ctx, "tur.1").Return(nil, errors.New("database error")).Once()

		_, err := s.List(ctx)

		assert.Error(t, err)
	})
}
