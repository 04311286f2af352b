package summary

import (
	"regexp"
	"strings"
)

var (
	goalPattern         = regexp.MustCompile(`(?i)goal|penalty - scored`)
	yellowCardPattern   = regexp.MustCompile(`(?i)yellow card`)
	redCardPattern      = regexp.MustCompile(`(?i)red card`)
	substitutionPattern = regexp.MustCompile(`(?i)substitution`)
	ownGoalPattern      = regexp.MustCompile(`(?i)own goal`)
	penaltyPattern      = regexp.MustCompile(`(?i)penalty`)
)

// Classify decides the canonical type of one raw upstream event. Goal, card
// and substitution events are returned; neutral events (corners, VAR stops
// and the like) yield nil. Substitutions are classified so the live feed can
// display them, but the summary builder filters them out.
func Classify(raw RawEvent) *MatchEvent {
	if isSubstitution(raw) {
		return &MatchEvent{
			Clock:          raw.Clock,
			Team:           resolveTeamID(raw),
			Type:           "substitution",
			Player:         primaryPlayer(raw),
			IsSubstitution: true,
		}
	}

	isGoal := raw.ScoringPlay || strings.Contains(raw.TypeToken, "goal") || goalPattern.MatchString(raw.Text)
	isYellow := raw.YellowCard || strings.Contains(raw.TypeToken, "yellow-card") || yellowCardPattern.MatchString(raw.Text)
	isRed := raw.RedCard || strings.Contains(raw.TypeToken, "red-card") || redCardPattern.MatchString(raw.Text)

	if !isGoal && !isYellow && !isRed {
		return nil
	}

	isOwnGoal := raw.OwnGoal || ownGoalPattern.MatchString(raw.Text)
	isPenalty := raw.PenaltyKick || penaltyPattern.MatchString(raw.Text)
	player := primaryPlayer(raw)

	event := MatchEvent{
		Clock:        raw.Clock,
		Team:         resolveTeamID(raw),
		Type:         eventLabel(raw),
		Player:       player,
		IsGoal:       isGoal,
		IsPenalty:    isGoal && isPenalty,
		IsOwnGoal:    isGoal && isOwnGoal,
		IsYellowCard: isYellow,
		IsRedCard:    isRed,
	}

	if event.IsGoal && !event.IsOwnGoal {
		event.Assist = assistName(raw, player)
	}

	applyDisplayPrecedence(&event)

	return &event
}

// applyDisplayPrecedence enforces the mutual exclusivity of the
// classification flags. This is a display precedence policy: both underlying
// flags may be true upstream, only one is shown.
func applyDisplayPrecedence(e *MatchEvent) {
	if e.IsGoal {
		e.IsYellowCard = false
		e.IsRedCard = false
		return
	}

	if e.IsRedCard {
		e.IsYellowCard = false
	}
}

func isSubstitution(raw RawEvent) bool {
	return raw.Substitution || raw.TypeToken == "substitution" || substitutionPattern.MatchString(raw.Text)
}

func primaryPlayer(raw RawEvent) string {
	for _, p := range raw.Participants {
		if p.Name != "" {
			return p.Name
		}
	}

	if raw.Player != "" {
		return raw.Player
	}

	return raw.ShortText
}

func assistName(raw RawEvent, scorer string) string {
	for _, a := range raw.Assists {
		if a != "" && a != scorer {
			return a
		}
	}

	for _, p := range raw.Participants {
		if p.Name != "" && p.Name != scorer {
			return p.Name
		}
	}

	return ""
}

func resolveTeamID(raw RawEvent) string {
	if raw.TeamID != "" {
		return raw.TeamID
	}

	for _, p := range raw.Participants {
		if p.TeamID != "" {
			return p.TeamID
		}
	}

	return ""
}

func eventLabel(raw RawEvent) string {
	if raw.TypeToken != "" {
		return raw.TypeToken
	}

	return raw.Text
}
