package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
)

type SquadService struct {
	liveAPIClient    LiveAPIClient
	playerRepository PlayerRepository
	cacheService     cache.Service
	teamID           string
	baseURL          string
	cacheTTL         time.Duration
	now              func() time.Time
	logger           Logger
}

func NewSquadService(
	liveAPIClient LiveAPIClient,
	playerRepository PlayerRepository,
	cacheService cache.Service,
	teamID string,
	baseURL string,
	cacheTTL time.Duration,
	logger Logger,
) *SquadService {
	return &SquadService{
		liveAPIClient:    liveAPIClient,
		playerRepository: playerRepository,
		cacheService:     cacheService,
		teamID:           teamID,
		baseURL:          baseURL,
		cacheTTL:         cacheTTL,
		now:              time.Now,
		logger:           logger,
	}
}

// List returns the squad. Server-relative photo paths are rewritten to
// absolute URLs served by the media proxy of this service.
func (s *SquadService) List(ctx context.Context) ([]Player, error) {
	key := cache.SquadKey(s.teamID)

	players, err := cache.Fetch(ctx, s.cacheService, key, s.cacheTTL, func(ctx context.Context) (*[]Player, error) {
		fetched, err := s.fetchUpstream(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to fetch squad from upstream, falling back to stored players")
			stored, errStored := s.listStored(ctx)
			if errStored != nil {
				return nil, fmt.Errorf("failed to fetch squad: %w", err)
			}

			return &stored, nil
		}

		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}

	if players == nil {
		return []Player{}, nil
	}

	return *players, nil
}

func (s *SquadService) fetchUpstream(ctx context.Context) ([]Player, error) {
	results, err := s.liveAPIClient.GetSquad(ctx, s.teamID)
	if err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(results))
	for _, result := range results {
		players = append(players, fromClientPlayer(result, s.baseURL))
	}

	if err := s.persist(ctx, players); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist squad")
	}

	return players, nil
}

func (s *SquadService) persist(ctx context.Context, players []Player) error {
	records := make([]repository.Player, 0, len(players))
	for _, player := range players {
		records = append(records, repository.Player{
			ID:          player.ID,
			Name:        player.Name,
			Position:    player.Position,
			Number:      player.Number,
			Photo:       player.Photo,
			Country:     player.Country,
			MarketValue: player.MarketValue,
			Status:      player.Status,
			UpdatedAt:   s.now().UTC(),
		})
	}

	return s.playerRepository.SaveAll(ctx, records)
}

func (s *SquadService) listStored(ctx context.Context) ([]Player, error) {
	records, err := s.playerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored players: %w", err)
	}

	players := make([]Player, 0, len(records))
	for _, record := range records {
		players = append(players, Player{
			ID:          record.ID,
			Name:        record.Name,
			Position:    record.Position,
			Number:      record.Number,
			Photo:       record.Photo,
			Country:     record.Country,
			MarketValue: record.MarketValue,
			Status:      record.Status,
		})
	}

	return players, nil
}

func fromClientPlayer(result client.PlayerResult, baseURL string) Player {
	return Player{
		ID:          result.ID,
		Name:        result.Name,
		Position:    result.Position,
		Number:      result.Number,
		Photo:       rewritePhotoURL(result.Photo, baseURL),
		Country:     result.Country,
		MarketValue: result.MarketValue,
		Status:      result.Status,
	}
}

// rewritePhotoURL turns a server-relative photo path into an absolute URL
// behind the media proxy. Absolute URLs pass through untouched.
func rewritePhotoURL(photo string, baseURL string) string {
	if photo == "" || strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo
	}

	return fmt.Sprintf("%s/v1/media/%s", strings.TrimSuffix(baseURL, "/"), strings.TrimPrefix(photo, "/"))
}
