package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/summary"
)

// SummaryAPIClient talks to the secondary summary provider exposing the
// ESPN-style competition shapes.
type SummaryAPIClient struct {
	httpClient HTTPManager
	logger     Logger
	baseURL    string
}

func NewSummaryAPIClient(httpClient HTTPManager, logger Logger, baseURL string) *SummaryAPIClient {
	return &SummaryAPIClient{httpClient: httpClient, logger: logger, baseURL: baseURL}
}

// GetSummary fetches the competition summary of one match. A 404 means the
// summary is not available yet, which is a normal state.
func (c *SummaryAPIClient) GetSummary(ctx context.Context, league string, matchID string) (*summary.ESPNSummaryPayload, error) {
	url := fmt.Sprintf("%s/%s/summary", c.baseURL, league)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get match summary: %w", err)
	}

	q := req.URL.Query()
	q.Add("event", matchID)
	req.URL.RawQuery = q.Encode()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get match summary: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, errs.SummaryNotReadyError{Message: fmt.Sprintf("summary of match %s is not available yet", matchID)}
	}

	if res.StatusCode == http.StatusOK {
		var body summary.ESPNSummaryPayload
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode get match summary response body: %w", err)
		}

		return &body, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get match summary, status %d", res.StatusCode), errs.ErrUnexpectedSummaryAPIStatusCode)
}

// GetScoreboard fetches the fixture list of a team.
func (c *SummaryAPIClient) GetScoreboard(ctx context.Context, league string, teamID string) (*ScoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, league, teamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get scoreboard: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get scoreboard: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusOK {
		var body ScoreboardResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode get scoreboard response body: %w", err)
		}

		return &body, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get scoreboard, status %d", res.StatusCode), errs.ErrUnexpectedSummaryAPIStatusCode)
}

// GetStandings fetches the league table.
func (c *SummaryAPIClient) GetStandings(ctx context.Context, league string) (*StandingsResponse, error) {
	url := fmt.Sprintf("%s/%s/standings", c.baseURL, league)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get standings: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get standings: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusOK {
		var body StandingsResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode get standings response body: %w", err)
		}

		return &body, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get standings, status %d", res.StatusCode), errs.ErrUnexpectedSummaryAPIStatusCode)
}
