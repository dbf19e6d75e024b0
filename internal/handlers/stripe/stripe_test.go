package stripe

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/service/purchaseservice"
	"github.com/veilbot/veilpay/internal/service/subscriptionservice"
)

const signingSecret = "whsec_test"

func NewMock(t *testing.T) (*WebhookHandler, *MockSubscriptionService, *MockPurchaseService) {
	ctrl := gomock.NewController(t)
	subscriptions := NewMockSubscriptionService(ctrl)
	purchases := NewMockPurchaseService(ctrl)
	handler := New(subscriptions, purchases, signingSecret)
	defer ctrl.Finish()
	return handler, subscriptions, purchases
}

func sign(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestWebhookHandler(t *testing.T) {
	handler, subscriptions, purchases := NewMock(t)

	tests := []struct {
		name         string
		payload      string
		secret       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Subscription checkout activates the guild",
			payload: `{
				"id": "evt_1",
				"object": "event", "api_version": "2025-11-17.clover", "type": "checkout.session.completed",
				"data": {"object": {
					"id": "cs_test_1",
					"mode": "subscription",
					"subscription": "sub_1Example",
					"metadata": {"guild_id": "555"}
				}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().Activate(gomock.Any(), int64(555), "sub_1Example").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Payment checkout credits coins",
			payload: `{
				"id": "evt_2",
				"object": "event", "api_version": "2025-11-17.clover", "type": "checkout.session.completed",
				"data": {"object": {
					"id": "cs_test_2",
					"mode": "payment",
					"client_reference_id": "42",
					"metadata": {"guild_id": "555", "coins": "250"}
				}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				purchases.EXPECT().HandlePurchase(gomock.Any(), purchaseservice.Purchase{
					SessionID: "cs_test_2",
					UserID:    42,
					GuildID:   555,
					Coins:     250,
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Paid invoice renews",
			payload: `{
				"id": "evt_3",
				"object": "event", "api_version": "2025-11-17.clover", "type": "invoice.paid",
				"data": {"object": {"id": "in_test_1", "subscription": "sub_1Example"}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().Renew(gomock.Any(), int64(0), "sub_1Example").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failed invoice payment downgrades",
			payload: `{
				"id": "evt_4",
				"object": "event", "api_version": "2025-11-17.clover", "type": "invoice.payment_failed",
				"data": {"object": {"id": "in_test_2", "subscription": "sub_1Example"}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().PaymentFailed(gomock.Any(), int64(0), "sub_1Example").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Deleted subscription cancels",
			payload: `{
				"id": "evt_5",
				"object": "event", "api_version": "2025-11-17.clover", "type": "customer.subscription.deleted",
				"data": {"object": {"id": "sub_1Example", "metadata": {"guild_id": "555"}}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().Cancel(gomock.Any(), int64(555), "sub_1Example").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unrecognized event type answers success",
			payload: `{
				"id": "evt_6",
				"object": "event", "api_version": "2025-11-17.clover", "type": "charge.refunded",
				"data": {"object": {"id": "ch_test_1"}}
			}`,
			secret:       signingSecret,
			prepareMock:  func() {},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Wrong signing secret",
			payload:      `{"id": "evt_7", "object": "event", "api_version": "2025-11-17.clover", "type": "invoice.paid", "data": {"object": {}}}`,
			secret:       "whsec_wrong",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Malformed event",
			payload: `{
				"id": "evt_8",
				"object": "event", "api_version": "2025-11-17.clover", "type": "invoice.paid",
				"data": {"object": {"id": "in_test_3"}}
			}`,
			secret:       signingSecret,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Degraded outcome still answers success",
			payload: `{
				"id": "evt_9",
				"object": "event", "api_version": "2025-11-17.clover", "type": "invoice.paid",
				"data": {"object": {"id": "in_test_4", "subscription": "sub_1Example"}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().Renew(gomock.Any(), int64(0), "sub_1Example").
					Return(subscriptionservice.ErrUpstreamLookup)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Store failure asks for redelivery",
			payload: `{
				"id": "evt_10",
				"object": "event", "api_version": "2025-11-17.clover", "type": "invoice.paid",
				"data": {"object": {"id": "in_test_5", "subscription": "sub_1Example"}}
			}`,
			secret: signingSecret,
			prepareMock: func() {
				subscriptions.EXPECT().Renew(gomock.Any(), int64(0), "sub_1Example").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			payload := []byte(tt.payload)
			r := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBuffer(payload))
			r.Header.Set("Stripe-Signature", sign(payload, tt.secret))
			w := httptest.NewRecorder()
			handler.Webhook(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
