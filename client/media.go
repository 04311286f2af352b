package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sarilacivert/matchcenter-service/errs"
)

// MediaClient fetches images from the upstream media host for the reverse
// proxy.
type MediaClient struct {
	httpClient HTTPManager
	logger     Logger
	baseURL    string
}

type MediaAsset struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

func NewMediaClient(httpClient HTTPManager, logger Logger, baseURL string) *MediaClient {
	return &MediaClient{httpClient: httpClient, logger: logger, baseURL: baseURL}
}

func (c *MediaClient) GetAsset(ctx context.Context, path string) (*MediaAsset, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get media asset: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to get media asset: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, errs.NewResourceNotFoundError(fmt.Errorf("media asset %s does not exist", path))
	}

	if res.StatusCode == http.StatusOK {
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read media asset body: %w", err)
		}

		return &MediaAsset{Data: data, ContentType: res.Header.Get("Content-Type")}, nil
	}

	return nil, fmt.Errorf("%s: %w", fmt.Sprintf("failed to get media asset %s, status %d", path, res.StatusCode), errs.ErrUnexpectedMediaStatusCode)
}
