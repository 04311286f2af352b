package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sarilacivert/matchcenter-service/errs"
)

const pushAuthHeader = "Authorization"

// PushClient relays push notifications to the FCM-style gateway.
type PushClient struct {
	httpClient HTTPManager
	logger     Logger
	gatewayURL string
	serverKey  string
}

func NewPushClient(httpClient HTTPManager, logger Logger, gatewayURL string, serverKey string) *PushClient {
	return &PushClient{httpClient: httpClient, logger: logger, gatewayURL: gatewayURL, serverKey: serverKey}
}

type pushBody struct {
	To           string           `json:"to"`
	Notification pushNotification `json:"notification"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *PushClient) Send(ctx context.Context, notification PushNotification) error {
	body := pushBody{
		To: notification.Token,
		Notification: pushNotification{
			Title: notification.Title,
			Body:  notification.Body,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal push notification body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request to send push notification: %w", err)
	}

	req.Header.Set(pushAuthHeader, fmt.Sprintf("key=%s", c.serverKey))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push notification request: %w", err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode >= http.StatusOK && res.StatusCode <= http.StatusNoContent {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf("failed to send push notification, status %d", res.StatusCode), errs.ErrUnexpectedPushStatusCode)
}
