package repository

import "time"

type MatchSummary struct {
	MatchID    string `gorm:"primaryKey"`
	League     string
	MatchState string
	Source     string
	Payload    []byte `gorm:"type:jsonb"`
	UpdatedAt  time.Time
}

type Fixture struct {
	ID        string `gorm:"primaryKey"`
	League    string
	Name      string
	StartsAt  time.Time
	State     string
	Completed bool
	HomeTeam  []byte `gorm:"type:jsonb"`
	AwayTeam  []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

type Player struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Position    string
	Number      int
	Photo       string
	Country     string
	MarketValue string
	Status      string
	UpdatedAt   time.Time
}

type Subscription struct {
	ID        uint `gorm:"primaryKey"`
	Token     string
	CreatedAt time.Time
}

type StandingRow struct {
	League       string `db:"league"`
	Rank         int    `db:"rank"`
	TeamID       string `db:"team_id"`
	TeamName     string `db:"team_name"`
	Played       int    `db:"played"`
	Won          int    `db:"won"`
	Drawn        int    `db:"drawn"`
	Lost         int    `db:"lost"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
	Points       int    `db:"points"`
	UpdatedAt    time.Time `db:"updated_at"`
}
