package service

import (
	"time"

	"github.com/sarilacivert/matchcenter-service/phase"
	"github.com/sarilacivert/matchcenter-service/summary"
)

type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Fixture struct {
	ID        string    `json:"id"`
	League    string    `json:"league"`
	Name      string    `json:"name"`
	StartsAt  time.Time `json:"startsAt"`
	State     string    `json:"state"`
	Completed bool      `json:"completed"`
	HomeTeam  TeamRef   `json:"homeTeam"`
	AwayTeam  TeamRef   `json:"awayTeam"`
}

type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Number      int    `json:"number"`
	Photo       string `json:"photo"`
	Country     string `json:"country"`
	MarketValue string `json:"marketValue"`
	Status      string `json:"status"`
}

type StandingRow struct {
	Rank         int     `json:"rank"`
	Team         TeamRef `json:"team"`
	Played       int     `json:"played"`
	Won          int     `json:"won"`
	Drawn        int     `json:"drawn"`
	Lost         int     `json:"lost"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Points       int     `json:"points"`
}

// LiveState is what fan clients poll: the phase of the currently displayed
// fixture plus the latest live summary when one exists.
type LiveState struct {
	Phase            phase.Phase           `json:"phase"`
	Fixture          *Fixture              `json:"fixture,omitempty"`
	CountdownSeconds int64                 `json:"countdownSeconds"`
	Summary          *summary.MatchSummary `json:"summary,omitempty"`
}
