package service

import (
	"context"

	"github.com/sarilacivert/matchcenter-service/cache"
)

// Refresher re-warms the fixture, squad and standings caches on a schedule
// so fan traffic rarely hits the upstream APIs cold.
type Refresher struct {
	fixtureService   *FixtureService
	squadService     *SquadService
	standingsService *StandingsService
	cacheService     cache.Service
	teamID           string
	league           string
	logger           Logger
}

func NewRefresher(
	fixtureService *FixtureService,
	squadService *SquadService,
	standingsService *StandingsService,
	cacheService cache.Service,
	teamID string,
	league string,
	logger Logger,
) *Refresher {
	return &Refresher{
		fixtureService:   fixtureService,
		squadService:     squadService,
		standingsService: standingsService,
		cacheService:     cacheService,
		teamID:           teamID,
		league:           league,
		logger:           logger,
	}
}

// RefreshAll drops the list caches and reloads them from the upstream. Each
// section refreshes independently so one failing upstream does not block the
// others.
func (r *Refresher) RefreshAll(ctx context.Context) {
	r.logger.Info().Msg("scheduled refresh started")

	_ = r.cacheService.Delete(ctx, cache.FixturesKey(r.teamID))
	if _, err := r.fixtureService.List(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to refresh fixtures")
	}

	_ = r.cacheService.Delete(ctx, cache.SquadKey(r.teamID))
	if _, err := r.squadService.List(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to refresh squad")
	}

	_ = r.cacheService.Delete(ctx, cache.StandingsKey(r.league))
	if _, err := r.standingsService.List(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to refresh standings")
	}

	r.logger.Info().Msg("scheduled refresh finished")
}
