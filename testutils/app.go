package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/service"
)

func FakeFixture(options ...Option[service.Fixture]) service.Fixture {
	home := FakeTeamRef()
	away := FakeTeamRef()

	f := service.Fixture{
		ID:       fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		League:   "tur.1",
		Name:     fmt.Sprintf("%s at %s", away.Name, home.Name),
		StartsAt: gofakeit.FutureDate(),
		State:    "pre",
		HomeTeam: home,
		AwayTeam: away,
	}

	applyOptions(&f, options...)

	return f
}

func FakeTeamRef(options ...Option[service.TeamRef]) service.TeamRef {
	team := service.TeamRef{
		ID:   fmt.Sprintf("%d", gofakeit.Number(1, 9999)),
		Name: gofakeit.Name(),
		Logo: gofakeit.URL(),
	}

	applyOptions(&team, options...)

	return team
}

func FakeRepositoryFixture(options ...Option[repository.Fixture]) repository.Fixture {
	f := repository.Fixture{
		ID:        fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		League:    "tur.1",
		Name:      gofakeit.Sentence(3),
		StartsAt:  gofakeit.FutureDate(),
		State:     "pre",
		HomeTeam:  []byte(`{}`),
		AwayTeam:  []byte(`{}`),
		UpdatedAt: gofakeit.Date(),
	}

	applyOptions(&f, options...)

	return f
}

func FakeRepositoryPlayer(options ...Option[repository.Player]) repository.Player {
	p := repository.Player{
		ID:       fmt.Sprintf("%d", gofakeit.Number(1, 99999)),
		Name:     gofakeit.Name(),
		Position: gofakeit.RandomString([]string{"Goalkeeper", "Defender", "Midfielder", "Forward"}),
		Number:   gofakeit.IntRange(1, 99),
		Photo:    gofakeit.URL(),
		Country:  gofakeit.Country(),
		Status:   "active",
	}

	applyOptions(&p, options...)

	return p
}

func FakeRepositorySubscription(options ...Option[repository.Subscription]) repository.Subscription {
	sub := repository.Subscription{
		ID:        uint(gofakeit.Uint8()),
		Token:     gofakeit.UUID(),
		CreatedAt: gofakeit.Date(),
	}

	applyOptions(&sub, options...)

	return sub
}

func FakePlayerResult(options ...Option[client.PlayerResult]) client.PlayerResult {
	p := client.PlayerResult{
		ID:       fmt.Sprintf("%d", gofakeit.Number(1, 99999)),
		Name:     gofakeit.Name(),
		Position: gofakeit.RandomString([]string{"Goalkeeper", "Defender", "Midfielder", "Forward"}),
		Number:   gofakeit.IntRange(1, 99),
		Photo:    fmt.Sprintf("assets/players/%d.png", gofakeit.Number(1, 99999)),
		Country:  gofakeit.Country(),
		Status:   "active",
	}

	applyOptions(&p, options...)

	return p
}

func FakeScoreboardEvent(options ...Option[client.ScoreboardEvent]) client.ScoreboardEvent {
	e := client.ScoreboardEvent{
		ID:   fmt.Sprintf("%d", gofakeit.Number(100000, 999999)),
		Date: gofakeit.FutureDate().Format("2006-01-02T15:04Z"),
		Name: gofakeit.Sentence(3),
		Status: client.ScoreboardStatus{
			Type: client.ScoreboardStatusType{State: "pre"},
		},
		Competitions: []client.ScoreboardCompetition{
			{
				Competitors: []client.ScoreboardCompetitor{
					{HomeAway: "home", Team: FakeScoreboardTeam()},
					{HomeAway: "away", Team: FakeScoreboardTeam()},
				},
			},
		},
	}

	applyOptions(&e, options...)

	return e
}

func FakeScoreboardTeam(options ...Option[client.ScoreboardTeam]) client.ScoreboardTeam {
	team := client.ScoreboardTeam{
		ID:          fmt.Sprintf("%d", gofakeit.Number(1, 9999)),
		DisplayName: gofakeit.Name(),
		Logos:       []client.ScoreboardLogo{{Href: gofakeit.URL()}},
	}

	applyOptions(&team, options...)

	return team
}
