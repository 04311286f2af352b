package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type LiveAPIClient interface {
	GetLiveMatch(ctx context.Context) (*summary.LivePayload, error)
	GetSquad(ctx context.Context, teamID string) ([]client.PlayerResult, error)
}

type SummaryAPIClient interface {
	GetSummary(ctx context.Context, league string, matchID string) (*summary.ESPNSummaryPayload, error)
	GetScoreboard(ctx context.Context, league string, teamID string) (*client.ScoreboardResponse, error)
	GetStandings(ctx context.Context, league string) (*client.StandingsResponse, error)
}

type MediaClient interface {
	GetAsset(ctx context.Context, path string) (*client.MediaAsset, error)
}

type PushClient interface {
	Send(ctx context.Context, notification client.PushNotification) error
}

type TaskClient interface {
	ScheduleSummaryCheck(ctx context.Context, matchID string, attempt uint, scheduleAt time.Time) (*client.Task, error)
	GetSummaryCheckTask(ctx context.Context, matchID string, attempt uint) (*client.Task, error)
}

type MatchSummaryRepository interface {
	Save(ctx context.Context, matchSummary repository.MatchSummary) (*repository.MatchSummary, error)
	One(ctx context.Context, matchID string) (*repository.MatchSummary, error)
}

type FixtureRepository interface {
	SaveAll(ctx context.Context, fixtures []repository.Fixture) error
	List(ctx context.Context) ([]repository.Fixture, error)
}

type PlayerRepository interface {
	SaveAll(ctx context.Context, players []repository.Player) error
	List(ctx context.Context) ([]repository.Player, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription repository.Subscription) (*repository.Subscription, error)
	Delete(ctx context.Context, token string) error
	List(ctx context.Context) ([]repository.Subscription, error)
}

type StandingsRepository interface {
	ReplaceAll(ctx context.Context, league string, rows []repository.StandingRow) error
	List(ctx context.Context, league string) ([]repository.StandingRow, error)
}

type FixtureProvider interface {
	Upcoming(ctx context.Context) (*Fixture, error)
	NextAfter(ctx context.Context, fixtureID string) (*Fixture, error)
}

type SummarySaver interface {
	SaveLive(ctx context.Context, matchSummary summary.MatchSummary) error
}

type Notifier interface {
	NotifyFinalScore(ctx context.Context, matchSummary summary.MatchSummary) error
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
