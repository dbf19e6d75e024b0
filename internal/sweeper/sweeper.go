package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/veilbot/veilpay/internal/domain"
)

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=sweeper

var inFlightGuilds sync.Map

type SubscriptionRepo interface {
	FindDueForRenewalCheck(ctx context.Context, limit uint32) ([]domain.GuildSubscription, error)
}

// Reconciler applies the same transitions webhook delivery would have.
type Reconciler interface {
	Renew(ctx context.Context, guildID int64, subscriptionID string) error
	Cancel(ctx context.Context, guildID int64, subscriptionID string) error
}

type BillingClient interface {
	GetSubscription(ctx context.Context, id string) (*domain.ProviderSubscription, error)
}

// Service periodically re-reads provider state for subscriptions whose
// renewal timestamp has lapsed, healing guilds whose webhook delivery was
// lost. Every reapplied transition is the same idempotent upsert the
// webhook path uses, so racing a late redelivery is harmless.
type Service struct {
	repo          SubscriptionRepo
	reconciler    Reconciler
	billing       BillingClient
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(repo SubscriptionRepo, reconciler Reconciler, billing BillingClient) *Service {
	return &Service{
		repo:          repo,
		reconciler:    reconciler,
		billing:       billing,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Minute * 10,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Renewal sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	subs, err := s.repo.FindDueForRenewalCheck(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch subscriptions for sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, sub := range subs {
		sub := sub

		if _, loaded := inFlightGuilds.LoadOrStore(sub.GuildID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlightGuilds.Delete(sub.GuildID)
				return s.handleSubscription(ctx, sub)
			})
			if err != nil {
				inFlightGuilds.Delete(sub.GuildID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping subscriptions", zap.Error(err))
	}
}

func (s *Service) handleSubscription(ctx context.Context, sub domain.GuildSubscription) error {
	if sub.ExternalID == nil {
		return nil
	}

	psub, err := s.billing.GetSubscription(ctx, *sub.ExternalID)
	if err != nil {
		// Next sweep retries; nothing to unwind.
		zap.L().Warn("Provider lookup failed during sweep",
			zap.Int64("guildID", sub.GuildID), zap.Error(err))
		return nil
	}

	if psub.Canceled {
		return s.reconciler.Cancel(ctx, sub.GuildID, psub.ID)
	}
	if psub.RenewsAt.After(time.Now()) {
		return s.reconciler.Renew(ctx, sub.GuildID, psub.ID)
	}

	zap.L().Info("Subscription still past due at provider, leaving as is",
		zap.Int64("guildID", sub.GuildID))
	return nil
}
