package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/subscription"

	"github.com/veilbot/veilpay/internal/domain"
)

// StripeClient adapts the Stripe subscription API to the reconciler's
// BillingClient interface.
type StripeClient struct{}

func NewStripeClient(apiKey string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{}
}

func (c *StripeClient) GetSubscription(ctx context.Context, id string) (*domain.ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := subscription.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve subscription %s: %w", id, err)
	}

	psub := &domain.ProviderSubscription{
		ID:       sub.ID,
		Canceled: sub.Status == stripe.SubscriptionStatusCanceled || sub.Status == stripe.SubscriptionStatusIncompleteExpired,
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		psub.PriceID = sub.Items.Data[0].Price.ID
	}
	if raw := sub.Metadata["guild_id"]; raw != "" {
		if guildID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			psub.GuildID = guildID
		}
	}
	psub.RenewsAt = renewalFromRaw(sub)

	return psub, nil
}

func (c *StripeClient) CancelSubscription(ctx context.Context, id string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	if _, err := subscription.Cancel(id, params); err != nil {
		return fmt.Errorf("cancel subscription %s: %w", id, err)
	}
	return nil
}

// renewalFromRaw reads the renewal timestamp from the raw provider
// response. Older API versions put current_period_end on the subscription
// object; newer ones move it onto each line item. Both are epoch seconds.
func renewalFromRaw(sub *stripe.Subscription) (renewsAt time.Time) {
	if sub.LastResponse == nil {
		return
	}
	var shim struct {
		CurrentPeriodEnd int64 `json:"current_period_end"`
		Items            struct {
			Data []struct {
				CurrentPeriodEnd int64 `json:"current_period_end"`
			} `json:"data"`
		} `json:"items"`
	}
	if err := json.Unmarshal(sub.LastResponse.RawJSON, &shim); err != nil {
		return
	}

	end := shim.CurrentPeriodEnd
	if end == 0 {
		for _, item := range shim.Items.Data {
			if item.CurrentPeriodEnd > end {
				end = item.CurrentPeriodEnd
			}
		}
	}
	if end == 0 {
		return
	}
	return time.Unix(end, 0).UTC()
}
