package summary

import "time"

type Source string

const (
	SourceLivePost     Source = "live-post"
	SourceESPN         Source = "espn-summary"
	SourceESPNOnDemand Source = "espn-summary-on-demand"
)

type MatchState string

const (
	StatePre     MatchState = "pre"
	StateIn      MatchState = "in"
	StatePost    MatchState = "post"
	StateNoMatch MatchState = "no-match"
)

type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Score int    `json:"score"`
}

type Stat struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	HomeValue string `json:"homeValue"`
	AwayValue string `json:"awayValue"`
}

type MatchEvent struct {
	Clock          string `json:"clock"`
	Team           string `json:"team"`
	Type           string `json:"type"`
	Player         string `json:"player"`
	Assist         string `json:"assist"`
	IsGoal         bool   `json:"isGoal"`
	IsPenalty      bool   `json:"isPenalty"`
	IsOwnGoal      bool   `json:"isOwnGoal"`
	IsYellowCard   bool   `json:"isYellowCard"`
	IsRedCard      bool   `json:"isRedCard"`
	IsSubstitution bool   `json:"isSubstitution"`
}

type MatchSummary struct {
	MatchID      string       `json:"matchId"`
	League       string       `json:"league"`
	MatchState   MatchState   `json:"matchState"`
	StatusDetail string       `json:"statusDetail"`
	DisplayClock string       `json:"displayClock"`
	HomeTeam     Team         `json:"homeTeam"`
	AwayTeam     Team         `json:"awayTeam"`
	Stats        []Stat       `json:"stats"`
	Events       []MatchEvent `json:"events"`
	Source       Source       `json:"source"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

const (
	statYellowCards = "yellowCards"
	statRedCards    = "redCards"
)

// statPriority fixes the order of the stats list. A metric is included only
// when at least one side reports it.
var statPriority = []Stat{
	{Key: "possessionPct", Label: "Topla Oynama"},
	{Key: "totalShots", Label: "Toplam Şut"},
	{Key: "shotsOnTarget", Label: "İsabetli Şut"},
	{Key: "wonCorners", Label: "Korner"},
	{Key: "foulsCommitted", Label: "Faul"},
	{Key: "offsides", Label: "Ofsayt"},
	{Key: statYellowCards, Label: "Sarı Kart"},
	{Key: statRedCards, Label: "Kırmızı Kart"},
	{Key: "saves", Label: "Kurtarış"},
	{Key: "totalPasses", Label: "Toplam Pas"},
	{Key: "accuratePasses", Label: "İsabetli Pas"},
}
