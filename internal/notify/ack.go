package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/veilbot/veilpay/pkg/clients"
)

// AckClient edits the original interaction response once the purchase the
// interaction started has completed. Addressed by (application id, token):
// the webhook route needs no bot token.
type AckClient struct {
	apiBase string
	client  clients.HTTPClientI
}

func NewAckClient(apiBase string, httpClient clients.HTTPClientI) *AckClient {
	return &AckClient{
		apiBase: apiBase,
		client:  httpClient,
	}
}

type ackPayload struct {
	Content string `json:"content"`
}

func (a *AckClient) EditOriginal(ctx context.Context, applicationID, token string, coins, balance int64) error {
	url := fmt.Sprintf("%s/webhooks/%s/%s/messages/@original", a.apiBase, applicationID, token)

	body, err := json.Marshal(ackPayload{
		Content: fmt.Sprintf("✅ Purchase complete! %d coins added. New balance: %d.", coins, balance),
	})
	if err != nil {
		return fmt.Errorf("marshal acknowledgement: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, _, err := a.client.Send(http.MethodPatch, url, headers, body)
	if err != nil {
		return fmt.Errorf("edit original response: %w", err)
	}
	if status >= http.StatusBadRequest {
		return fmt.Errorf("acknowledgement edit rejected with status %d", status)
	}
	return nil
}
