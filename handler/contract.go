package handler

import (
	"context"

	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/service"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type LiveMatchService interface {
	State() service.LiveState
}

type MatchSummaryService interface {
	GetByID(ctx context.Context, matchID string) (*summary.MatchSummary, error)
}

type FixtureService interface {
	List(ctx context.Context) ([]service.Fixture, error)
}

type SquadService interface {
	List(ctx context.Context) ([]service.Player, error)
}

type StandingsService interface {
	List(ctx context.Context) ([]service.StandingRow, error)
}

type MediaService interface {
	GetAsset(ctx context.Context, path string) (*client.MediaAsset, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, token string) error
	Unsubscribe(ctx context.Context, token string) error
}

type SummaryCheckerService interface {
	CheckSummary(ctx context.Context, matchID string, attempt uint) error
}
