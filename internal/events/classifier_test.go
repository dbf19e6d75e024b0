package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v84"
)

func makeEvent(t *testing.T, eventType stripe.EventType, object string) *stripe.Event {
	t.Helper()
	data := &stripe.EventData{Raw: json.RawMessage(object)}
	assert.NoError(t, json.Unmarshal(data.Raw, &data.Object))
	return &stripe.Event{
		Type: eventType,
		Data: data,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		event       *stripe.Event
		expected    Command
		expectError bool
	}{
		{
			name: "Payment-mode checkout is a coin purchase",
			event: makeEvent(t, stripe.EventTypeCheckoutSessionCompleted, `{
				"id": "cs_test_1",
				"mode": "payment",
				"client_reference_id": "42",
				"metadata": {"guild_id": "555", "coins": "250"}
			}`),
			expected: Command{
				Kind:      KindCoinsPurchased,
				SessionID: "cs_test_1",
				UserID:    42,
				GuildID:   555,
				Coins:     250,
			},
		},
		{
			name: "Payment-mode checkout without metadata still resolves the session",
			event: makeEvent(t, stripe.EventTypeCheckoutSessionCompleted, `{
				"id": "cs_test_1",
				"mode": "payment"
			}`),
			expected: Command{Kind: KindCoinsPurchased, SessionID: "cs_test_1"},
		},
		{
			name: "Subscription-mode checkout is an activation",
			event: makeEvent(t, stripe.EventTypeCheckoutSessionCompleted, `{
				"id": "cs_test_2",
				"mode": "subscription",
				"subscription": "sub_1Example",
				"metadata": {"guild_id": "555"}
			}`),
			expected: Command{
				Kind:           KindSubscriptionActivated,
				GuildID:        555,
				SubscriptionID: "sub_1Example",
			},
		},
		{
			name: "Setup-mode checkout is ignored",
			event: makeEvent(t, stripe.EventTypeCheckoutSessionCompleted, `{
				"id": "cs_test_3",
				"mode": "setup"
			}`),
			expected: Command{Kind: KindIgnored},
		},
		{
			name: "Subscription checkout without a subscription id is malformed",
			event: makeEvent(t, stripe.EventTypeCheckoutSessionCompleted, `{
				"id": "cs_test_4",
				"mode": "subscription"
			}`),
			expectError: true,
		},
		{
			name: "Paid invoice is a renewal",
			event: makeEvent(t, stripe.EventTypeInvoicePaid, `{
				"id": "in_test_1",
				"subscription": "sub_1Example"
			}`),
			expected: Command{Kind: KindSubscriptionRenewed, SubscriptionID: "sub_1Example"},
		},
		{
			name: "Renewal resolves the nested subscription id shape",
			event: makeEvent(t, stripe.EventTypeInvoicePaid, `{
				"id": "in_test_1",
				"parent": {"subscription_details": {"subscription": "sub_1Example"}}
			}`),
			expected: Command{Kind: KindSubscriptionRenewed, SubscriptionID: "sub_1Example"},
		},
		{
			name: "Failed invoice payment",
			event: makeEvent(t, stripe.EventTypeInvoicePaymentFailed, `{
				"id": "in_test_2",
				"subscription": "sub_1Example"
			}`),
			expected: Command{Kind: KindSubscriptionPaymentFailed, SubscriptionID: "sub_1Example"},
		},
		{
			name: "Invoice without a subscription id is malformed",
			event: makeEvent(t, stripe.EventTypeInvoicePaid, `{
				"id": "in_test_3"
			}`),
			expectError: true,
		},
		{
			name: "Deleted subscription is a cancellation",
			event: makeEvent(t, stripe.EventTypeCustomerSubscriptionDeleted, `{
				"id": "sub_1Example",
				"metadata": {"guild_id": "555"}
			}`),
			expected: Command{
				Kind:           KindSubscriptionCanceled,
				GuildID:        555,
				SubscriptionID: "sub_1Example",
			},
		},
		{
			name:     "Unrecognized event type is ignored, not an error",
			event:    makeEvent(t, "charge.refunded", `{"id": "ch_test_1"}`),
			expected: Command{Kind: KindIgnored},
		},
		{
			name:        "Event without data is malformed",
			event:       &stripe.Event{Type: stripe.EventTypeInvoicePaid},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Classify(tt.event)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrMalformedEvent)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseID(t *testing.T) {
	assert.Equal(t, int64(927350149968396338), parseID("927350149968396338"))
	assert.Equal(t, int64(0), parseID(""))
	assert.Equal(t, int64(0), parseID("not-a-snowflake"))
}
