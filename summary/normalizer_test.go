package summary_test

import (
	"testing"
	"time"

	"github.com/sarilacivert/matchcenter-service/summary"
	"github.com/sarilacivert/matchcenter-service/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLive(t *testing.T) {
	now := time.Date(2026, 3, 8, 20, 45, 0, 0, time.UTC)

	t.Run("it returns an empty result when no match is running", func(t *testing.T) {
		payload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.MatchState = "no-match"
		})

		result := summary.NormalizeLive(payload, now)

		assert.Equal(t, summary.StatusEmpty, result.Status)
		assert.Nil(t, result.Summary)
	})

	t.Run("it returns an invalid result when a team id is missing", func(t *testing.T) {
		payload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.AwayTeam.ID = ""
		})

		result := summary.NormalizeLive(payload, now)

		assert.Equal(t, summary.StatusInvalid, result.Status)
		assert.Nil(t, result.Summary)
	})

	t.Run("it normalizes a running match", func(t *testing.T) {
		payload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.MatchState = "in"
			p.HomeTeam.ID = "432"
			p.AwayTeam.ID = "998"
			p.Stats = []summary.LiveStat{
				{Name: "totalShots", HomeValue: "14", AwayValue: "6"},
				{Name: "possessionPct", HomeValue: "58", AwayValue: "42"},
			}
			p.Events = []summary.LiveEvent{
				{Clock: "12'", Team: "432", Type: "Goal", Player: "Striker", Assist: "Winger", ScoringPlay: true},
				{Clock: "33'", Team: "998", Type: "Yellow Card", Player: "Midfielder", IsYellowCard: true},
				{Clock: "60'", Team: "432", Type: "Substitution", Player: "Fresh Legs", IsSubstitution: true},
			}
		})

		result := summary.NormalizeLive(payload, now)

		require.Equal(t, summary.StatusOK, result.Status)
		require.NotNil(t, result.Summary)

		s := result.Summary
		assert.Equal(t, payload.MatchID, s.MatchID)
		assert.Equal(t, summary.StateIn, s.MatchState)
		assert.Equal(t, summary.SourceLivePost, s.Source)
		assert.Equal(t, now, s.UpdatedAt)

		// Stats follow the fixed priority order, with derived card counts
		// appended because the upstream sent none.
		require.Len(t, s.Stats, 4)
		assert.Equal(t, summary.Stat{Key: "possessionPct", Label: "Topla Oynama", HomeValue: "58", AwayValue: "42"}, s.Stats[0])
		assert.Equal(t, summary.Stat{Key: "totalShots", Label: "Toplam Şut", HomeValue: "14", AwayValue: "6"}, s.Stats[1])
		assert.Equal(t, summary.Stat{Key: "yellowCards", Label: "Sarı Kart", HomeValue: "0", AwayValue: "1"}, s.Stats[2])
		assert.Equal(t, summary.Stat{Key: "redCards", Label: "Kırmızı Kart", HomeValue: "0", AwayValue: "0"}, s.Stats[3])

		// The substitution is classified but excluded from the summary events.
		require.Len(t, s.Events, 2)
		assert.True(t, s.Events[0].IsGoal)
		assert.Equal(t, "Striker", s.Events[0].Player)
		assert.Equal(t, "Winger", s.Events[0].Assist)
		assert.True(t, s.Events[1].IsYellowCard)
	})

	t.Run("it never overwrites an explicit card count with a derived one", func(t *testing.T) {
		payload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.HomeTeam.ID = "432"
			p.AwayTeam.ID = "998"
			p.Stats = []summary.LiveStat{
				{Name: "yellowCards", HomeValue: "3", AwayValue: "2"},
			}
			p.Events = []summary.LiveEvent{
				{Clock: "33'", Team: "432", Type: "Yellow Card", IsYellowCard: true},
			}
		})

		result := summary.NormalizeLive(payload, now)

		require.Equal(t, summary.StatusOK, result.Status)
		var yellow *summary.Stat
		for i := range result.Summary.Stats {
			if result.Summary.Stats[i].Key == "yellowCards" {
				yellow = &result.Summary.Stats[i]
			}
		}
		require.NotNil(t, yellow)
		assert.Equal(t, "3", yellow.HomeValue)
		assert.Equal(t, "2", yellow.AwayValue)
	})

	t.Run("it fills a one-sided stat with zero", func(t *testing.T) {
		payload := testutils.FakeLivePayload(func(p *summary.LivePayload) {
			p.HomeTeam.ID = "432"
			p.AwayTeam.ID = "998"
			p.Stats = []summary.LiveStat{
				{Name: "wonCorners", HomeValue: "7", AwayValue: ""},
			}
		})

		result := summary.NormalizeLive(payload, now)

		require.Equal(t, summary.StatusOK, result.Status)
		var corners *summary.Stat
		for i := range result.Summary.Stats {
			if result.Summary.Stats[i].Key == "wonCorners" {
				corners = &result.Summary.Stats[i]
			}
		}
		require.NotNil(t, corners)
		assert.Equal(t, "7", corners.HomeValue)
		assert.Equal(t, "0", corners.AwayValue)
	})
}

func TestNormalizeESPN(t *testing.T) {
	now := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)

	t.Run("it returns an invalid result without competitions", func(t *testing.T) {
		payload := testutils.FakeESPNSummaryPayload(func(p *summary.ESPNSummaryPayload) {
			p.Header.Competitions = nil
		})

		result := summary.NormalizeESPN(payload, summary.SourceESPN, now)

		assert.Equal(t, summary.StatusInvalid, result.Status)
	})

	t.Run("it returns an invalid result when a competitor is missing", func(t *testing.T) {
		payload := testutils.FakeESPNSummaryPayload(func(p *summary.ESPNSummaryPayload) {
			p.Header.Competitions[0].Competitors = p.Header.Competitions[0].Competitors[:1]
		})

		result := summary.NormalizeESPN(payload, summary.SourceESPN, now)

		assert.Equal(t, summary.StatusInvalid, result.Status)
	})

	t.Run("it normalizes a finished match", func(t *testing.T) {
		payload := testutils.FakeESPNSummaryPayload(func(p *summary.ESPNSummaryPayload) {
			p.Header.Competitions[0].Competitors[0].Score = "2"
			p.Header.Competitions[0].Competitors[0].Team.ID = "432"
			p.Header.Competitions[0].Competitors[1].Score = "1"
			p.Header.Competitions[0].Competitors[1].Team.ID = "998"
			p.Boxscore = summary.ESPNBoxscore{
				Teams: []summary.ESPNBoxscoreTeam{
					{
						Team: summary.ESPNTeam{ID: "432"},
						Statistics: []summary.ESPNStat{
							{Name: "totalShots", DisplayValue: "15"},
						},
					},
					{
						Team: summary.ESPNTeam{ID: "998"},
						Statistics: []summary.ESPNStat{
							{Name: "totalShots", DisplayValue: "8"},
						},
					},
				},
			}
			p.KeyEvents = []summary.ESPNEvent{
				testutils.FakeESPNEvent(func(e *summary.ESPNEvent) {
					e.Team.ID = "432"
					e.Type = summary.ESPNEventType{Text: "Goal"}
					e.ScoringPlay = true
				}),
				testutils.FakeESPNEvent(func(e *summary.ESPNEvent) {
					e.Team.ID = "998"
					e.Type = summary.ESPNEventType{Text: "Yellow Card"}
					e.YellowCard = true
					e.ScoringPlay = false
				}),
			}
		})

		result := summary.NormalizeESPN(payload, summary.SourceESPN, now)

		require.Equal(t, summary.StatusOK, result.Status)
		s := result.Summary
		assert.Equal(t, summary.StatePost, s.MatchState)
		assert.Equal(t, summary.SourceESPN, s.Source)
		assert.Equal(t, 2, s.HomeTeam.Score)
		assert.Equal(t, 1, s.AwayTeam.Score)

		require.Len(t, s.Stats, 3)
		assert.Equal(t, summary.Stat{Key: "totalShots", Label: "Toplam Şut", HomeValue: "15", AwayValue: "8"}, s.Stats[0])
		assert.Equal(t, summary.Stat{Key: "yellowCards", Label: "Sarı Kart", HomeValue: "0", AwayValue: "1"}, s.Stats[1])
		assert.Equal(t, summary.Stat{Key: "redCards", Label: "Kırmızı Kart", HomeValue: "0", AwayValue: "0"}, s.Stats[2])

		require.Len(t, s.Events, 2)
	})

	t.Run("it falls back to competition details when there are no key events", func(t *testing.T) {
		payload := testutils.FakeESPNSummaryPayload(func(p *summary.ESPNSummaryPayload) {
			p.KeyEvents = nil
			p.Header.Competitions[0].Details = []summary.ESPNEvent{
				testutils.FakeESPNEvent(func(e *summary.ESPNEvent) {
					e.Type = summary.ESPNEventType{Text: "Red Card"}
					e.RedCard = true
				}),
			}
		})

		result := summary.NormalizeESPN(payload, summary.SourceESPN, now)

		require.Equal(t, summary.StatusOK, result.Status)
		require.Len(t, result.Summary.Events, 1)
		assert.True(t, result.Summary.Events[0].IsRedCard)
	})

	t.Run("it matches boxscore teams case-insensitively", func(t *testing.T) {
		payload := testutils.FakeESPNSummaryPayload(func(p *summary.ESPNSummaryPayload) {
			p.Header.Competitions[0].Competitors[0].Team.ID = "abc"
			p.Header.Competitions[0].Competitors[1].Team.ID = "xyz"
			p.Boxscore = summary.ESPNBoxscore{
				Teams: []summary.ESPNBoxscoreTeam{
					{Team: summary.ESPNTeam{ID: "ABC"}, Statistics: []summary.ESPNStat{{Name: "saves", DisplayValue: "5"}}},
					{Team: summary.ESPNTeam{ID: "XYZ"}, Statistics: []summary.ESPNStat{{Name: "saves", DisplayValue: "2"}}},
				},
			}
		})

		result := summary.NormalizeESPN(payload, summary.SourceESPN, now)

		require.Equal(t, summary.StatusOK, result.Status)
		var saves *summary.Stat
		for i := range result.Summary.Stats {
			if result.Summary.Stats[i].Key == "saves" {
				saves = &result.Summary.Stats[i]
			}
		}
		require.NotNil(t, saves)
		assert.Equal(t, "5", saves.HomeValue)
		assert.Equal(t, "2", saves.AwayValue)
	})
}

func TestNormalize(t *testing.T) {
	now := time.Now()

	t.Run("it treats an undecodable payload as invalid", func(t *testing.T) {
		result := summary.Normalize([]byte("{not json"), summary.KindLive, now)

		assert.Equal(t, summary.StatusInvalid, result.Status)
	})

	t.Run("it treats an unknown kind as invalid", func(t *testing.T) {
		result := summary.Normalize([]byte("{}"), summary.Kind("rss"), now)

		assert.Equal(t, summary.StatusInvalid, result.Status)
	})
}
