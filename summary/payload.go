package summary

import "strings"

// LivePayload is the shape served by the live-status upstream.
type LivePayload struct {
	MatchID      string      `json:"matchId"`
	League       string      `json:"league"`
	MatchState   string      `json:"matchState"`
	StatusDetail string      `json:"statusDetail"`
	DisplayClock string      `json:"displayClock"`
	HomeTeam     LiveTeam    `json:"homeTeam"`
	AwayTeam     LiveTeam    `json:"awayTeam"`
	Stats        []LiveStat  `json:"stats"`
	Events       []LiveEvent `json:"events"`
}

type LiveTeam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Score int    `json:"score"`
}

type LiveStat struct {
	Name      string `json:"name"`
	HomeValue string `json:"homeValue"`
	AwayValue string `json:"awayValue"`
}

type LiveEvent struct {
	Clock          string `json:"clock"`
	Team           string `json:"team"`
	Type           string `json:"type"`
	Text           string `json:"text"`
	Player         string `json:"player"`
	Assist         string `json:"assist"`
	ScoringPlay    bool   `json:"scoringPlay"`
	IsGoal         bool   `json:"isGoal"`
	IsPenalty      bool   `json:"isPenalty"`
	IsOwnGoal      bool   `json:"isOwnGoal"`
	IsYellowCard   bool   `json:"isYellowCard"`
	IsRedCard      bool   `json:"isRedCard"`
	IsSubstitution bool   `json:"isSubstitution"`
}

// ESPNSummaryPayload is the competition-summary shape of the secondary
// provider.
type ESPNSummaryPayload struct {
	Header    ESPNHeader   `json:"header"`
	Boxscore  ESPNBoxscore `json:"boxscore"`
	KeyEvents []ESPNEvent  `json:"keyEvents"`
}

type ESPNHeader struct {
	League       ESPNLeague        `json:"league"`
	Competitions []ESPNCompetition `json:"competitions"`
}

type ESPNLeague struct {
	Name string `json:"name"`
}

type ESPNCompetition struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Status      ESPNStatus       `json:"status"`
	Competitors []ESPNCompetitor `json:"competitors"`
	Details     []ESPNEvent      `json:"details"`
}

type ESPNStatus struct {
	DisplayClock string         `json:"displayClock"`
	Type         ESPNStatusType `json:"type"`
}

type ESPNStatusType struct {
	State     string `json:"state"`
	Detail    string `json:"detail"`
	Completed bool   `json:"completed"`
}

type ESPNCompetitor struct {
	HomeAway   string     `json:"homeAway"`
	Score      string     `json:"score"`
	Team       ESPNTeam   `json:"team"`
	Statistics []ESPNStat `json:"statistics"`
}

type ESPNTeam struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Logos       []ESPNLogo `json:"logos"`
}

type ESPNLogo struct {
	Href string `json:"href"`
}

type ESPNBoxscore struct {
	Teams []ESPNBoxscoreTeam `json:"teams"`
}

type ESPNBoxscoreTeam struct {
	Team       ESPNTeam   `json:"team"`
	Statistics []ESPNStat `json:"statistics"`
}

type ESPNStat struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type ESPNEvent struct {
	Clock            ESPNClock         `json:"clock"`
	Team             ESPNEventTeam     `json:"team"`
	Type             ESPNEventType     `json:"type"`
	Text             string            `json:"text"`
	ShortText        string            `json:"shortText"`
	ScoringPlay      bool              `json:"scoringPlay"`
	OwnGoal          bool              `json:"ownGoal"`
	PenaltyKick      bool              `json:"penaltyKick"`
	YellowCard       bool              `json:"yellowCard"`
	RedCard          bool              `json:"redCard"`
	Participants     []ESPNParticipant `json:"participants"`
	Assists          []ESPNParticipant `json:"assists"`
	AthletesInvolved []ESPNAthlete     `json:"athletesInvolved"`
}

type ESPNClock struct {
	DisplayValue string `json:"displayValue"`
}

type ESPNEventTeam struct {
	ID string `json:"id"`
}

type ESPNEventType struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ESPNParticipant struct {
	Athlete ESPNAthlete   `json:"athlete"`
	Team    ESPNEventTeam `json:"team"`
}

type ESPNAthlete struct {
	DisplayName string        `json:"displayName"`
	Team        ESPNEventTeam `json:"team"`
}

// RawEvent is the source-independent input of the classifier. Both upstream
// event shapes are folded into it before classification.
type RawEvent struct {
	Clock        string
	TypeToken    string
	Text         string
	ShortText    string
	TeamID       string
	Player       string
	Assist       string
	ScoringPlay  bool
	OwnGoal      bool
	PenaltyKick  bool
	YellowCard   bool
	RedCard      bool
	Substitution bool
	Participants []Participant
	Assists      []string
}

type Participant struct {
	Name   string
	TeamID string
}

func (e LiveEvent) toRaw() RawEvent {
	raw := RawEvent{
		Clock:        e.Clock,
		TypeToken:    tokenize(e.Type),
		Text:         e.Text,
		TeamID:       e.Team,
		Player:       e.Player,
		Assist:       e.Assist,
		ScoringPlay:  e.ScoringPlay || e.IsGoal,
		OwnGoal:      e.IsOwnGoal,
		PenaltyKick:  e.IsPenalty,
		YellowCard:   e.IsYellowCard,
		RedCard:      e.IsRedCard,
		Substitution: e.IsSubstitution,
	}

	if e.Player != "" {
		raw.Participants = []Participant{{Name: e.Player, TeamID: e.Team}}
	}

	if e.Assist != "" {
		raw.Assists = []string{e.Assist}
	}

	return raw
}

func (e ESPNEvent) toRaw() RawEvent {
	raw := RawEvent{
		Clock:        e.Clock.DisplayValue,
		TypeToken:    tokenize(e.Type.Text),
		Text:         e.Text,
		ShortText:    e.ShortText,
		TeamID:       e.Team.ID,
		ScoringPlay:  e.ScoringPlay,
		OwnGoal:      e.OwnGoal,
		PenaltyKick:  e.PenaltyKick,
		YellowCard:   e.YellowCard,
		RedCard:      e.RedCard,
	}

	for _, p := range e.Participants {
		teamID := p.Team.ID
		if teamID == "" {
			teamID = p.Athlete.Team.ID
		}
		raw.Participants = append(raw.Participants, Participant{Name: p.Athlete.DisplayName, TeamID: teamID})
	}

	for _, a := range e.AthletesInvolved {
		raw.Participants = append(raw.Participants, Participant{Name: a.DisplayName, TeamID: a.Team.ID})
	}

	for _, a := range e.Assists {
		if a.Athlete.DisplayName != "" {
			raw.Assists = append(raw.Assists, a.Athlete.DisplayName)
		}
	}

	return raw
}

// tokenize turns a free-form type label into a comparable token,
// e.g. "Yellow Card" -> "yellow-card".
func tokenize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
