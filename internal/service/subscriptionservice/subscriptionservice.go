package subscriptionservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/config"
	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

//go:generate mockgen -source=subscriptionservice.go -destination=subscriptionservice_mock.go -package=subscriptionservice

type Repo interface {
	GetByGuildID(ctx context.Context, guildID int64) (*domain.GuildSubscription, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.GuildSubscription, error)
	Upsert(ctx context.Context, sub *domain.GuildSubscription) (*domain.GuildSubscription, error)
	MarkPaymentFailed(ctx context.Context, guildID int64) (*domain.GuildSubscription, error)
}

// BillingClient is the provider's read/cancel API surface.
type BillingClient interface {
	GetSubscription(ctx context.Context, id string) (*domain.ProviderSubscription, error)
	CancelSubscription(ctx context.Context, id string) error
}

type Ledger interface {
	CreditBonus(ctx context.Context, guildID, amount int64) error
}

type Notifier interface {
	NotifyUpgrade(ctx context.Context, guildID int64, tier domain.Tier) error
}

var (
	// ErrUpstreamLookup marks a provider read failure: the primary state
	// write never ran, and the response must not trigger a redelivery storm.
	ErrUpstreamLookup = errors.New("provider subscription lookup failed")
	ErrUnknownPrice   = errors.New("price id maps to no tier")
	ErrUnknownGuild   = errors.New("event resolves to no guild")
)

type Service struct {
	repo      Repo
	billing   BillingClient
	ledger    Ledger
	notifier  Notifier
	pricing   *config.Pricing
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, billing BillingClient, ledger Ledger, notifier Notifier, pricing *config.Pricing, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		billing:   billing,
		ledger:    ledger,
		notifier:  notifier,
		pricing:   pricing,
		txManager: txManager,
		now:       time.Now,
	}
}

// Activate upserts the guild subscription for a newly completed checkout.
// When the guild already had a different active external subscription, the
// old one is cancelled best-effort: an upgrade replaces, never stacks.
func (s *Service) Activate(ctx context.Context, guildID int64, subscriptionID string) error {
	tier, renewsAt, resolvedGuild, err := s.lookupTier(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if guildID == 0 {
		guildID = resolvedGuild
	}
	if guildID == 0 {
		return ErrUnknownGuild
	}

	var prevExternal string
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		prev, err := s.repo.GetByGuildID(ctx, guildID)
		if err != nil {
			return err
		}
		if prev != nil && prev.ExternalID != nil {
			prevExternal = *prev.ExternalID
		}

		_, err = s.repo.Upsert(ctx, &domain.GuildSubscription{
			GuildID:      guildID,
			Tier:         tier,
			SubscribedAt: s.now(),
			RenewsAt:     &renewsAt,
			ExternalID:   &subscriptionID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to activate subscription", zap.Int64("guildID", guildID), zap.Error(err))
		return err
	}

	if prevExternal != "" && prevExternal != subscriptionID {
		if err := s.billing.CancelSubscription(ctx, prevExternal); err != nil {
			zap.L().Warn("failed to cancel replaced subscription",
				zap.Int64("guildID", guildID),
				zap.String("externalID", prevExternal),
				zap.Error(err),
			)
		}
	}

	s.applySideEffects(ctx, guildID, tier)
	zap.L().Info("subscription activated",
		zap.Int64("guildID", guildID), zap.String("tier", string(tier)))
	return nil
}

// Renew reapplies the subscription row on a successful renewal invoice.
// Unlike Activate it never cancels anything: a renewal keeps its external id.
func (s *Service) Renew(ctx context.Context, guildID int64, subscriptionID string) error {
	tier, renewsAt, resolvedGuild, err := s.lookupTier(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if guildID == 0 {
		guildID = resolvedGuild
	}
	if guildID == 0 {
		if guildID, err = s.guildByExternalID(ctx, subscriptionID); err != nil {
			return err
		}
	}
	if guildID == 0 {
		return ErrUnknownGuild
	}

	_, err = s.repo.Upsert(ctx, &domain.GuildSubscription{
		GuildID:      guildID,
		Tier:         tier,
		SubscribedAt: s.now(),
		RenewsAt:     &renewsAt,
		ExternalID:   &subscriptionID,
	})
	if err != nil {
		zap.L().Error("failed to renew subscription", zap.Int64("guildID", guildID), zap.Error(err))
		return err
	}

	s.applySideEffects(ctx, guildID, tier)
	zap.L().Info("subscription renewed",
		zap.Int64("guildID", guildID), zap.String("tier", string(tier)))
	return nil
}

// PaymentFailed downgrades to free but keeps the external id: the provider
// may self-heal the subscription on its retry schedule.
func (s *Service) PaymentFailed(ctx context.Context, guildID int64, subscriptionID string) error {
	if guildID == 0 {
		var err error
		if guildID, err = s.guildByExternalID(ctx, subscriptionID); err != nil {
			return err
		}
	}
	if guildID == 0 {
		zap.L().Warn("payment failure for unknown subscription, ignoring",
			zap.String("subscriptionID", subscriptionID))
		return nil
	}

	if _, err := s.repo.MarkPaymentFailed(ctx, guildID); err != nil {
		zap.L().Error("failed to mark payment failed", zap.Int64("guildID", guildID), zap.Error(err))
		return err
	}
	zap.L().Info("subscription payment failed", zap.Int64("guildID", guildID))
	return nil
}

// Cancel is the terminal transition: free tier, no renewal, no external id.
func (s *Service) Cancel(ctx context.Context, guildID int64, subscriptionID string) error {
	if guildID == 0 {
		var err error
		if guildID, err = s.guildByExternalID(ctx, subscriptionID); err != nil {
			return err
		}
	}
	if guildID == 0 {
		zap.L().Warn("cancellation for unknown subscription, ignoring",
			zap.String("subscriptionID", subscriptionID))
		return nil
	}

	_, err := s.repo.Upsert(ctx, &domain.GuildSubscription{
		GuildID:      guildID,
		Tier:         domain.TierFree,
		SubscribedAt: s.now(),
	})
	if err != nil {
		zap.L().Error("failed to cancel subscription", zap.Int64("guildID", guildID), zap.Error(err))
		return err
	}
	zap.L().Info("subscription canceled", zap.Int64("guildID", guildID))
	return nil
}

func (s *Service) lookupTier(ctx context.Context, subscriptionID string) (domain.Tier, time.Time, int64, error) {
	psub, err := s.billing.GetSubscription(ctx, subscriptionID)
	if err != nil {
		zap.L().Error("provider subscription lookup failed",
			zap.String("subscriptionID", subscriptionID), zap.Error(err))
		return "", time.Time{}, 0, ErrUpstreamLookup
	}

	tier, ok := s.pricing.TierByPrice[psub.PriceID]
	if !ok {
		zap.L().Error("subscription price maps to no tier",
			zap.String("subscriptionID", subscriptionID),
			zap.String("priceID", psub.PriceID))
		return "", time.Time{}, 0, ErrUnknownPrice
	}
	return tier, psub.RenewsAt, psub.GuildID, nil
}

func (s *Service) guildByExternalID(ctx context.Context, subscriptionID string) (int64, error) {
	if subscriptionID == "" {
		return 0, nil
	}
	sub, err := s.repo.GetByExternalID(ctx, subscriptionID)
	if err != nil {
		return 0, err
	}
	if sub == nil {
		return 0, nil
	}
	return sub.GuildID, nil
}

// Side effects never unwind the committed subscription write.
func (s *Service) applySideEffects(ctx context.Context, guildID int64, tier domain.Tier) {
	if bonus := s.pricing.BonusByTier[tier]; bonus > 0 {
		if err := s.ledger.CreditBonus(ctx, guildID, bonus); err != nil {
			zap.L().Warn("failed to apply tier bonus", zap.Int64("guildID", guildID), zap.Error(err))
		}
	}
	if err := s.notifier.NotifyUpgrade(ctx, guildID, tier); err != nil {
		zap.L().Warn("failed to send upgrade notification", zap.Int64("guildID", guildID), zap.Error(err))
	}
}
