package stripe

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v84/webhook"
	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/events"
	"github.com/veilbot/veilpay/internal/service/purchaseservice"
	"github.com/veilbot/veilpay/internal/service/subscriptionservice"
	"github.com/veilbot/veilpay/pkg/utils"
)

//go:generate mockgen -source=stripe.go -destination=stripe_mock.go -package=stripe

type SubscriptionService interface {
	Activate(ctx context.Context, guildID int64, subscriptionID string) error
	Renew(ctx context.Context, guildID int64, subscriptionID string) error
	PaymentFailed(ctx context.Context, guildID int64, subscriptionID string) error
	Cancel(ctx context.Context, guildID int64, subscriptionID string) error
}

type PurchaseService interface {
	HandlePurchase(ctx context.Context, p purchaseservice.Purchase) error
}

type WebhookHandler struct {
	subscriptions SubscriptionService
	purchases     PurchaseService
	signingSecret string
}

func New(subscriptions SubscriptionService, purchases PurchaseService, signingSecret string) *WebhookHandler {
	return &WebhookHandler{
		subscriptions: subscriptions,
		purchases:     purchases,
		signingSecret: signingSecret,
	}
}

// Webhook godoc
//
//	@Summary		Billing provider webhook
//	@Description	Receives signed Stripe events and reconciles them into guild subscription and coin balance state.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Event processed or ignored"
//	@Failure		400	{object}	utils.Response	"Bad signature or malformed payload"
//	@Failure		500	{object}	utils.Response	"Primary state write failed; provider should retry"
//	@Router			/webhooks/stripe [post]
func (h *WebhookHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "can't read request body")
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.signingSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid signature")
		return
	}

	cmd, err := events.Classify(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed event payload")
		return
	}

	if err := h.dispatch(r.Context(), cmd); err != nil {
		// Only a failed primary state write propagates: the provider
		// retries and every transition is idempotent. Everything else
		// already degraded gracefully inside the services.
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to apply event")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *WebhookHandler) dispatch(ctx context.Context, cmd events.Command) error {
	var err error
	switch cmd.Kind {
	case events.KindSubscriptionActivated:
		err = h.subscriptions.Activate(ctx, cmd.GuildID, cmd.SubscriptionID)
	case events.KindSubscriptionRenewed:
		err = h.subscriptions.Renew(ctx, cmd.GuildID, cmd.SubscriptionID)
	case events.KindSubscriptionPaymentFailed:
		err = h.subscriptions.PaymentFailed(ctx, cmd.GuildID, cmd.SubscriptionID)
	case events.KindSubscriptionCanceled:
		err = h.subscriptions.Cancel(ctx, cmd.GuildID, cmd.SubscriptionID)
	case events.KindCoinsPurchased:
		err = h.purchases.HandlePurchase(ctx, purchaseservice.Purchase{
			SessionID: cmd.SessionID,
			UserID:    cmd.UserID,
			GuildID:   cmd.GuildID,
			Coins:     cmd.Coins,
		})
	case events.KindIgnored:
		return nil
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, subscriptionservice.ErrUpstreamLookup),
		errors.Is(err, subscriptionservice.ErrUnknownPrice),
		errors.Is(err, subscriptionservice.ErrUnknownGuild):
		// Degraded outcomes: logged upstream, no state changed, and a
		// failure response would only buy a redelivery storm.
		zap.L().Warn("event dropped without state change",
			zap.String("kind", string(cmd.Kind)), zap.Error(err))
		return nil
	default:
		return err
	}
}
