package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v84"
)

// Kind is the internal command vocabulary the reconcilers understand.
type Kind string

const (
	KindIgnored                   Kind = "ignored"
	KindSubscriptionActivated     Kind = "subscription_activated"
	KindSubscriptionRenewed       Kind = "subscription_renewed"
	KindSubscriptionPaymentFailed Kind = "subscription_payment_failed"
	KindSubscriptionCanceled      Kind = "subscription_canceled"
	KindCoinsPurchased            Kind = "coins_purchased"
)

// Command is one classified provider notification. Zero-valued fields mean
// the payload did not carry them; the reconcilers resolve the gaps.
type Command struct {
	Kind           Kind
	GuildID        int64
	UserID         int64
	SubscriptionID string
	SessionID      string
	Coins          int64
}

var ErrMalformedEvent = errors.New("malformed provider event")

// Classify maps a verified provider event onto exactly one internal
// command. Unrecognized event types classify as Ignored, never as an
// error: providers add event types over time, and a failure response
// triggers redelivery storms.
func Classify(event *stripe.Event) (Command, error) {
	if event == nil || event.Data == nil {
		return Command{}, fmt.Errorf("%w: missing event data", ErrMalformedEvent)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return Command{}, fmt.Errorf("%w: decode checkout session: %v", ErrMalformedEvent, err)
		}
		return classifySession(&session)

	case stripe.EventTypeInvoicePaid, stripe.EventTypeInvoicePaymentSucceeded:
		subID := subscriptionFromInvoice(event)
		if subID == "" {
			return Command{}, fmt.Errorf("%w: invoice carries no subscription id", ErrMalformedEvent)
		}
		return Command{Kind: KindSubscriptionRenewed, SubscriptionID: subID}, nil

	case stripe.EventTypeInvoicePaymentFailed:
		subID := subscriptionFromInvoice(event)
		if subID == "" {
			return Command{}, fmt.Errorf("%w: invoice carries no subscription id", ErrMalformedEvent)
		}
		return Command{Kind: KindSubscriptionPaymentFailed, SubscriptionID: subID}, nil

	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return Command{}, fmt.Errorf("%w: decode subscription: %v", ErrMalformedEvent, err)
		}
		return Command{
			Kind:           KindSubscriptionCanceled,
			GuildID:        parseID(sub.Metadata["guild_id"]),
			SubscriptionID: sub.ID,
		}, nil

	default:
		return Command{Kind: KindIgnored}, nil
	}
}

// The checkout mode field, not the event type, decides whether a completed
// session is a one-time coin pack or a subscription.
func classifySession(session *stripe.CheckoutSession) (Command, error) {
	switch session.Mode {
	case stripe.CheckoutSessionModePayment:
		cmd := Command{
			Kind:      KindCoinsPurchased,
			SessionID: session.ID,
			UserID:    parseID(session.ClientReferenceID),
			GuildID:   parseID(session.Metadata["guild_id"]),
			Coins:     parseID(session.Metadata["coins"]),
		}
		if cmd.SessionID == "" {
			return Command{}, fmt.Errorf("%w: checkout session has no id", ErrMalformedEvent)
		}
		return cmd, nil

	case stripe.CheckoutSessionModeSubscription:
		cmd := Command{
			Kind:    KindSubscriptionActivated,
			GuildID: parseID(session.Metadata["guild_id"]),
		}
		if session.Subscription != nil {
			cmd.SubscriptionID = session.Subscription.ID
		}
		if cmd.SubscriptionID == "" {
			return Command{}, fmt.Errorf("%w: checkout session has no subscription", ErrMalformedEvent)
		}
		return cmd, nil

	default:
		// Setup-mode sessions and future modes carry nothing to reconcile.
		return Command{Kind: KindIgnored}, nil
	}
}

func subscriptionFromInvoice(event *stripe.Event) string {
	if subID := event.GetObjectValue("subscription"); subID != "" {
		return subID
	}
	// Newer API versions move the id under parent.subscription_details.
	return event.GetObjectValue("parent", "subscription_details", "subscription")
}

func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
