package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type Option[T any] func(*T)

func applyOptions[T any](item *T, updates ...Option[T]) {
	for _, update := range updates {
		update(item)
	}
}

func FakeMatchSummary(options ...Option[summary.MatchSummary]) summary.MatchSummary {
	states := []summary.MatchState{summary.StatePre, summary.StateIn, summary.StatePost}

	s := summary.MatchSummary{
		MatchID:      fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		League:       "tur.1",
		MatchState:   states[gofakeit.IntRange(0, len(states)-1)],
		StatusDetail: gofakeit.Word(),
		DisplayClock: fmt.Sprintf("%d'", gofakeit.IntRange(1, 90)),
		HomeTeam:     FakeSummaryTeam(),
		AwayTeam:     FakeSummaryTeam(),
		Source:       summary.SourceLivePost,
		UpdatedAt:    gofakeit.Date(),
	}

	applyOptions(&s, options...)

	return s
}

func FakeSummaryTeam(options ...Option[summary.Team]) summary.Team {
	team := summary.Team{
		ID:    fmt.Sprintf("%d", gofakeit.Number(1, 9999)),
		Name:  gofakeit.Name(),
		Logo:  gofakeit.URL(),
		Score: gofakeit.IntRange(0, 9),
	}

	applyOptions(&team, options...)

	return team
}

func FakeLivePayload(options ...Option[summary.LivePayload]) summary.LivePayload {
	payload := summary.LivePayload{
		MatchID:      fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		League:       "tur.1",
		MatchState:   "in",
		StatusDetail: gofakeit.Word(),
		DisplayClock: fmt.Sprintf("%d'", gofakeit.IntRange(1, 90)),
		HomeTeam:     FakeLiveTeam(),
		AwayTeam:     FakeLiveTeam(),
	}

	applyOptions(&payload, options...)

	return payload
}

func FakeLiveTeam(options ...Option[summary.LiveTeam]) summary.LiveTeam {
	team := summary.LiveTeam{
		ID:    fmt.Sprintf("%d", gofakeit.Number(1, 9999)),
		Name:  gofakeit.Name(),
		Logo:  gofakeit.URL(),
		Score: gofakeit.IntRange(0, 9),
	}

	applyOptions(&team, options...)

	return team
}

func FakeESPNSummaryPayload(options ...Option[summary.ESPNSummaryPayload]) summary.ESPNSummaryPayload {
	payload := summary.ESPNSummaryPayload{
		Header: summary.ESPNHeader{
			League: summary.ESPNLeague{Name: "Turkish Super Lig"},
			Competitions: []summary.ESPNCompetition{
				{
					ID:   fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
					Date: gofakeit.Date().Format("2006-01-02T15:04Z"),
					Status: summary.ESPNStatus{
						DisplayClock: "90'",
						Type:         summary.ESPNStatusType{State: "post", Detail: "FT", Completed: true},
					},
					Competitors: []summary.ESPNCompetitor{
						FakeESPNCompetitor(func(c *summary.ESPNCompetitor) { c.HomeAway = "home" }),
						FakeESPNCompetitor(func(c *summary.ESPNCompetitor) { c.HomeAway = "away" }),
					},
				},
			},
		},
	}

	applyOptions(&payload, options...)

	return payload
}

func FakeESPNCompetitor(options ...Option[summary.ESPNCompetitor]) summary.ESPNCompetitor {
	competitor := summary.ESPNCompetitor{
		HomeAway: "home",
		Score:    fmt.Sprintf("%d", gofakeit.IntRange(0, 9)),
		Team: summary.ESPNTeam{
			ID:          fmt.Sprintf("%d", gofakeit.Number(1, 9999)),
			DisplayName: gofakeit.Name(),
			Logos:       []summary.ESPNLogo{{Href: gofakeit.URL()}},
		},
	}

	applyOptions(&competitor, options...)

	return competitor
}

func FakeESPNEvent(options ...Option[summary.ESPNEvent]) summary.ESPNEvent {
	event := summary.ESPNEvent{
		Clock: summary.ESPNClock{DisplayValue: fmt.Sprintf("%d'", gofakeit.IntRange(1, 90))},
		Team:  summary.ESPNEventTeam{ID: fmt.Sprintf("%d", gofakeit.Number(1, 9999))},
		Type:  summary.ESPNEventType{Text: "Goal"},
		Participants: []summary.ESPNParticipant{
			{Athlete: summary.ESPNAthlete{DisplayName: gofakeit.Name()}},
		},
	}

	applyOptions(&event, options...)

	return event
}
