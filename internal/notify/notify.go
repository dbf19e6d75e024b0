package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/pkg/clients"
)

// Client delivers fire-and-forget notifications to the downstream bot
// process. Failures are the caller's to log; nothing here is retried.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, httpClient clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: httpClient,
	}
}

type upgradeMessage struct {
	Kind    string `json:"kind"`
	GuildID int64  `json:"guild_id,string"`
	Tier    string `json:"tier"`
}

type topUpMessage struct {
	Kind    string `json:"kind"`
	UserID  int64  `json:"user_id,string"`
	GuildID int64  `json:"guild_id,string"`
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
}

func (c *Client) NotifyUpgrade(ctx context.Context, guildID int64, tier domain.Tier) error {
	return c.post(ctx, upgradeMessage{Kind: "tier_upgrade", GuildID: guildID, Tier: string(tier)})
}

func (c *Client) NotifyTopUp(ctx context.Context, userID, guildID, amount, balance int64) error {
	return c.post(ctx, topUpMessage{
		Kind:    "coin_top_up",
		UserID:  userID,
		GuildID: guildID,
		Amount:  amount,
		Balance: balance,
	})
}

func (c *Client) post(ctx context.Context, payload any) error {
	if c.url == "" {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, _, err := c.client.Send(http.MethodPost, c.url, headers, body)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	if status >= http.StatusBadRequest {
		return fmt.Errorf("notification rejected with status %d", status)
	}
	return nil
}
