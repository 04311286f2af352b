package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sarilacivert/matchcenter-service/errs"
	"github.com/sarilacivert/matchcenter-service/summary"
)

const (
	livePath  = "/api/live"
	squadPath = "/api/squad"
)

const liveAuthHeader = "X-API-Key"

// LiveAPIClient talks to the live-status provider. Its payloads follow the
// live "boxscore" shape.
type LiveAPIClient struct {
	httpClient HTTPManager
	logger     Logger
	baseURL    string
	apiKey     string
}

func NewLiveAPIClient(httpClient HTTPManager, logger Logger, baseURL string, apiKey string) *LiveAPIClient {
	return &LiveAPIClient{httpClient: httpClient, logger: logger, baseURL: baseURL, apiKey: apiKey}
}

// GetLiveMatch returns the current live match payload. A payload with match
// state "no-match" is a normal response, not an error.
func (c *LiveAPIClient) GetLiveMatch(ctx context.Context) (*summary.LivePayload, error) {
	url := c.baseURL + livePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get live match: %w", err)
	}

	req.Header.Set(liveAuthHeader, c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get live match: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusOK {
		var body summary.LivePayload
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode get live match response body: %w", err)
		}

		return &body, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get live match, status %d", res.StatusCode), errs.ErrUnexpectedLiveAPIStatusCode)
}

// GetSquad returns the club squad.
func (c *LiveAPIClient) GetSquad(ctx context.Context, teamID string) ([]PlayerResult, error) {
	url := c.baseURL + squadPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get squad: %w", err)
	}

	q := req.URL.Query()
	q.Add("team", teamID)
	req.URL.RawQuery = q.Encode()

	req.Header.Set(liveAuthHeader, c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get squad: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusOK {
		var body SquadResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode get squad response body: %w", err)
		}

		return body.Players, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get squad, status %d", res.StatusCode), errs.ErrUnexpectedLiveAPIStatusCode)
}
