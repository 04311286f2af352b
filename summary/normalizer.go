package summary

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindLive         Kind = "live"
	KindESPN         Kind = "espn"
	KindESPNOnDemand Kind = "espn-on-demand"
)

// Normalize converts a raw upstream payload of the given kind into the
// canonical match summary. Unknown kinds and undecodable payloads yield an
// invalid result, never an error.
func Normalize(raw []byte, kind Kind, now time.Time) Result {
	switch kind {
	case KindLive:
		var payload LivePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Invalid()
		}
		return NormalizeLive(payload, now)
	case KindESPN:
		var payload ESPNSummaryPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Invalid()
		}
		return NormalizeESPN(payload, SourceESPN, now)
	case KindESPNOnDemand:
		var payload ESPNSummaryPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Invalid()
		}
		return NormalizeESPN(payload, SourceESPNOnDemand, now)
	default:
		return Invalid()
	}
}

// NormalizeLive converts the live-provider shape into the canonical summary.
func NormalizeLive(payload LivePayload, now time.Time) Result {
	if payload.MatchState == string(StateNoMatch) {
		return Empty()
	}

	if payload.HomeTeam.ID == "" || payload.AwayTeam.ID == "" {
		return Invalid()
	}

	homeStats := map[string]string{}
	awayStats := map[string]string{}
	for _, stat := range payload.Stats {
		homeStats[stat.Name] = stat.HomeValue
		awayStats[stat.Name] = stat.AwayValue
	}

	classified := classifyAll(liveRawEvents(payload.Events))
	deriveCardCounts(homeStats, awayStats, classified, payload.HomeTeam.ID, payload.AwayTeam.ID)

	result := MatchSummary{
		MatchID:      payload.MatchID,
		League:       payload.League,
		MatchState:   MatchState(payload.MatchState),
		StatusDetail: payload.StatusDetail,
		DisplayClock: payload.DisplayClock,
		HomeTeam: Team{
			ID:    payload.HomeTeam.ID,
			Name:  payload.HomeTeam.Name,
			Logo:  payload.HomeTeam.Logo,
			Score: payload.HomeTeam.Score,
		},
		AwayTeam: Team{
			ID:    payload.AwayTeam.ID,
			Name:  payload.AwayTeam.Name,
			Logo:  payload.AwayTeam.Logo,
			Score: payload.AwayTeam.Score,
		},
		Stats:     buildStats(homeStats, awayStats),
		Events:    summaryEvents(classified),
		Source:    SourceLivePost,
		UpdatedAt: now,
	}

	return Ok(result)
}

// NormalizeESPN converts the competition-summary shape into the canonical
// summary. A summary without both competitors is invalid.
func NormalizeESPN(payload ESPNSummaryPayload, source Source, now time.Time) Result {
	if len(payload.Header.Competitions) == 0 {
		return Invalid()
	}

	competition := payload.Header.Competitions[0]

	home := findCompetitor(competition.Competitors, "home")
	away := findCompetitor(competition.Competitors, "away")
	if home == nil || away == nil {
		return Invalid()
	}

	homeStats := competitorStats(payload.Boxscore, *home)
	awayStats := competitorStats(payload.Boxscore, *away)

	events := payload.KeyEvents
	if len(events) == 0 {
		events = competition.Details
	}

	classified := classifyAll(espnRawEvents(events))
	deriveCardCounts(homeStats, awayStats, classified, home.Team.ID, away.Team.ID)

	result := MatchSummary{
		MatchID:      competition.ID,
		League:       payload.Header.League.Name,
		MatchState:   MatchState(competition.Status.Type.State),
		StatusDetail: competition.Status.Type.Detail,
		DisplayClock: competition.Status.DisplayClock,
		HomeTeam:     espnTeam(*home),
		AwayTeam:     espnTeam(*away),
		Stats:        buildStats(homeStats, awayStats),
		Events:       summaryEvents(classified),
		Source:       source,
		UpdatedAt:    now,
	}

	return Ok(result)
}

func liveRawEvents(events []LiveEvent) []RawEvent {
	raw := make([]RawEvent, 0, len(events))
	for _, e := range events {
		raw = append(raw, e.toRaw())
	}

	return raw
}

func espnRawEvents(events []ESPNEvent) []RawEvent {
	raw := make([]RawEvent, 0, len(events))
	for _, e := range events {
		raw = append(raw, e.toRaw())
	}

	return raw
}

func classifyAll(raw []RawEvent) []MatchEvent {
	classified := make([]MatchEvent, 0, len(raw))
	for _, r := range raw {
		if event := Classify(r); event != nil {
			classified = append(classified, *event)
		}
	}

	return classified
}

// summaryEvents keeps goal and card events only. Substitutions are displayed
// by the live feed but never persisted in the canonical summary.
func summaryEvents(classified []MatchEvent) []MatchEvent {
	events := make([]MatchEvent, 0, len(classified))
	for _, e := range classified {
		if e.IsSubstitution {
			continue
		}

		if e.IsGoal || e.IsYellowCard || e.IsRedCard {
			events = append(events, e)
		}
	}

	return events
}

// deriveCardCounts fills yellow/red card stats from classified events. An
// explicit upstream value is never overwritten by a derived count.
func deriveCardCounts(homeStats, awayStats map[string]string, classified []MatchEvent, homeID, awayID string) {
	counts := map[string]int{}
	for _, e := range classified {
		if e.IsYellowCard {
			counts[statYellowCards+e.Team]++
		}
		if e.IsRedCard {
			counts[statRedCards+e.Team]++
		}
	}

	for _, key := range []string{statYellowCards, statRedCards} {
		if _, ok := homeStats[key]; !ok {
			homeStats[key] = strconv.Itoa(counts[key+homeID])
		}
		if _, ok := awayStats[key]; !ok {
			awayStats[key] = strconv.Itoa(counts[key+awayID])
		}
	}
}

func buildStats(homeStats, awayStats map[string]string) []Stat {
	stats := make([]Stat, 0, len(statPriority))
	for _, def := range statPriority {
		home, hasHome := homeStats[def.Key]
		away, hasAway := awayStats[def.Key]
		if !hasHome && !hasAway {
			continue
		}

		if home == "" {
			home = "0"
		}
		if away == "" {
			away = "0"
		}

		stats = append(stats, Stat{Key: def.Key, Label: def.Label, HomeValue: home, AwayValue: away})
	}

	return stats
}

func findCompetitor(competitors []ESPNCompetitor, homeAway string) *ESPNCompetitor {
	for i := range competitors {
		if strings.EqualFold(competitors[i].HomeAway, homeAway) {
			return &competitors[i]
		}
	}

	return nil
}

// competitorStats prefers the boxscore team statistics matched by team id,
// compared case-insensitively as strings, falling back to whatever
// statistics the competitor itself carries.
func competitorStats(boxscore ESPNBoxscore, competitor ESPNCompetitor) map[string]string {
	stats := map[string]string{}

	var source []ESPNStat
	for _, team := range boxscore.Teams {
		if strings.EqualFold(team.Team.ID, competitor.Team.ID) {
			source = team.Statistics
			break
		}
	}

	if source == nil {
		source = competitor.Statistics
	}

	for _, stat := range source {
		stats[stat.Name] = stat.DisplayValue
	}

	return stats
}

func espnTeam(competitor ESPNCompetitor) Team {
	team := Team{
		ID:    competitor.Team.ID,
		Name:  competitor.Team.DisplayName,
		Score: parseScore(competitor.Score),
	}

	if len(competitor.Team.Logos) > 0 {
		team.Logo = competitor.Team.Logos[0].Href
	}

	return team
}

func parseScore(raw string) int {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return score
}
