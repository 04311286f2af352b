package phase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type LiveStatusClient interface {
	GetLiveMatch(ctx context.Context) (*summary.LivePayload, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
