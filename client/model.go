package client

import "time"

type SquadResponse struct {
	Players []PlayerResult `json:"players"`
}

type PlayerResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Number      int    `json:"shirtNumber"`
	Photo       string `json:"photo"`
	Country     string `json:"country"`
	MarketValue string `json:"marketValue"`
	Status      string `json:"status"`
}

type ScoreboardResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

type ScoreboardEvent struct {
	ID           string                  `json:"id"`
	Date         string                  `json:"date"`
	Name         string                  `json:"name"`
	Status       ScoreboardStatus        `json:"status"`
	Competitions []ScoreboardCompetition `json:"competitions"`
}

type ScoreboardStatus struct {
	Type ScoreboardStatusType `json:"type"`
}

type ScoreboardStatusType struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type ScoreboardCompetition struct {
	Competitors []ScoreboardCompetitor `json:"competitors"`
}

type ScoreboardCompetitor struct {
	HomeAway string         `json:"homeAway"`
	Score    string         `json:"score"`
	Team     ScoreboardTeam `json:"team"`
}

type ScoreboardTeam struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Logos       []ScoreboardLogo `json:"logos"`
	Logo        string           `json:"logo"`
}

type ScoreboardLogo struct {
	Href string `json:"href"`
}

type StandingsResponse struct {
	Children []StandingsGroup `json:"children"`
}

type StandingsGroup struct {
	Standings StandingsTable `json:"standings"`
}

type StandingsTable struct {
	Entries []StandingsEntry `json:"entries"`
}

type StandingsEntry struct {
	Team  ScoreboardTeam  `json:"team"`
	Stats []StandingsStat `json:"stats"`
}

type StandingsStat struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type PushNotification struct {
	Token string
	Title string
	Body  string
}

type Task struct {
	Name      string
	ExecuteAt time.Time
}
