package phase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sarilacivert/matchcenter-service/summary"
)

// Poller queries the live-status endpoint at a fixed interval and feeds the
// phase machine. A failed tick clears the published live summary but never
// changes the phase; polling continues without backoff or a retry ceiling.
//
// Overlap policy: one request in flight at most. A tick arriving while the
// previous request is still running is skipped.
type Poller struct {
	client   LiveStatusClient
	machine  *Machine
	clock    Clock
	interval time.Duration
	logger   Logger

	// onSummary publishes the live summary of the current tick; nil clears it.
	onSummary func(*summary.MatchSummary)
	// onPhase is invoked after every phase change caused by a poll result.
	onPhase func(Phase)

	mu       sync.Mutex
	ticker   Ticker
	stop     chan struct{}
	stopped  atomic.Bool
	inFlight atomic.Bool
}

func NewPoller(
	client LiveStatusClient,
	machine *Machine,
	clock Clock,
	interval time.Duration,
	logger Logger,
	onSummary func(*summary.MatchSummary),
	onPhase func(Phase),
) *Poller {
	return &Poller{
		client:    client,
		machine:   machine,
		clock:     clock,
		interval:  interval,
		logger:    logger,
		onSummary: onSummary,
		onPhase:   onPhase,
	}
}

// Start begins polling. The first request is issued immediately, then once
// per interval. Start is a no-op when the poller already runs.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.ticker != nil {
		p.mu.Unlock()
		return
	}

	p.stopped.Store(false)
	p.stop = make(chan struct{})
	p.ticker = p.clock.NewTicker(p.interval)
	ticker := p.ticker
	stop := p.stop
	p.mu.Unlock()

	p.logger.Info().Str("fixture_id", p.machine.FixtureID()).Msg("live polling started")

	go func() {
		p.tick(ctx)

		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C():
				p.tick(ctx)
			}
		}
	}()
}

// Stop cancels polling. A poll response that arrives after Stop is dropped
// and never applied to shared state.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker == nil {
		return
	}

	p.stopped.Store(true)
	p.ticker.Stop()
	close(p.stop)
	p.ticker = nil

	p.logger.Info().Str("fixture_id", p.machine.FixtureID()).Msg("live polling stopped")
}

func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug().Msg("previous live request is still in flight, skipping tick")
		return
	}

	go func() {
		defer p.inFlight.Store(false)

		payload, err := p.client.GetLiveMatch(ctx)

		if p.stopped.Load() {
			return
		}

		if err != nil {
			p.logger.Error().Err(err).Msg("failed to get live match state, will retry on the next tick")
			p.publish(nil, EventTickFailed)
			return
		}

		result := summary.NormalizeLive(*payload, p.clock.Now())
		switch result.Status {
		case summary.StatusEmpty:
			p.publish(nil, EventNoMatch)
		case summary.StatusInvalid:
			p.logger.Debug().Msg("live payload is missing required fields, treating as no data this tick")
			p.publish(nil, EventNoMatch)
		case summary.StatusOK:
			p.publish(result.Summary, liveEvent(result.Summary.MatchState))
		}
	}()
}

func (p *Poller) publish(s *summary.MatchSummary, event Event) {
	if p.stopped.Load() {
		return
	}

	if p.onSummary != nil {
		p.onSummary(s)
	}

	phase, changed := p.machine.Tick(event)
	if changed && p.onPhase != nil {
		p.onPhase(phase)
	}
}

func liveEvent(state summary.MatchState) Event {
	switch state {
	case summary.StateIn:
		return EventLiveIn
	case summary.StatePost:
		return EventLivePost
	default:
		return EventNoMatch
	}
}
