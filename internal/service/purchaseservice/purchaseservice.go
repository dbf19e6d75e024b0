package purchaseservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

//go:generate mockgen -source=purchaseservice.go -destination=purchaseservice_mock.go -package=purchaseservice

type CorrelationRepo interface {
	Create(ctx context.Context, corr *domain.PurchaseCorrelation) error
	Consume(ctx context.Context, sessionID string) (*domain.PurchaseCorrelation, error)
	Exists(ctx context.Context, sessionID string) (bool, error)
}

type Ledger interface {
	CreditPurchase(ctx context.Context, userID, guildID, amount int64) (int64, error)
}

// AckEditor edits the original interaction response once the asynchronous
// payment completes.
type AckEditor interface {
	EditOriginal(ctx context.Context, applicationID, token string, coins, balance int64) error
}

type Notifier interface {
	NotifyTopUp(ctx context.Context, userID, guildID, amount, balance int64) error
}

// Purchase is a completed one-time coin purchase event.
type Purchase struct {
	SessionID string
	UserID    int64
	GuildID   int64
	Coins     int64
}

var ErrMissingTarget = errors.New("purchase has no user or guild target")

type Service struct {
	correlationRepo CorrelationRepo
	ledger          Ledger
	ack             AckEditor
	notifier        Notifier
	txManager       pg.TXManager
}

func New(correlationRepo CorrelationRepo, ledger Ledger, ack AckEditor, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		correlationRepo: correlationRepo,
		ledger:          ledger,
		ack:             ack,
		notifier:        notifier,
		txManager:       txManager,
	}
}

// HandlePurchase reconciles a purchase-completed event. The correlation
// row is the idempotency gate: it is consumed at most once, so duplicate
// deliveries of the same session credit exactly once. A missing row still
// credits (degraded, no acknowledgement); a consumed row is a redelivery
// and a no-op.
func (s *Service) HandlePurchase(ctx context.Context, p Purchase) error {
	var corr *domain.PurchaseCorrelation
	var balance int64
	credited := int64(0)
	target := Purchase{}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		corr, err = s.correlationRepo.Consume(ctx, p.SessionID)
		if err != nil {
			return err
		}

		if corr == nil {
			seen, err := s.correlationRepo.Exists(ctx, p.SessionID)
			if err != nil {
				return err
			}
			if seen {
				zap.L().Info("purchase already processed, skipping",
					zap.String("sessionID", p.SessionID))
				return nil
			}
			// No correlation was ever written. Credit from the event
			// payload alone; the acknowledgement is unavoidably lost.
			if p.UserID == 0 || p.GuildID == 0 || p.Coins <= 0 {
				return ErrMissingTarget
			}
			zap.L().Warn("no correlation record for session, crediting without acknowledgement",
				zap.String("sessionID", p.SessionID))
			balance, err = s.ledger.CreditPurchase(ctx, p.UserID, p.GuildID, p.Coins)
			if err == nil {
				credited = p.Coins
				target = Purchase{UserID: p.UserID, GuildID: p.GuildID}
			}
			return err
		}

		if mismatched(corr, p) {
			zap.L().Error("correlation record disagrees with event payload, suppressing credit",
				zap.String("sessionID", p.SessionID),
				zap.Int64("recordUserID", corr.UserID),
				zap.Int64("eventUserID", p.UserID),
			)
			corr = nil
			return nil
		}

		var err2 error
		balance, err2 = s.ledger.CreditPurchase(ctx, corr.UserID, corr.GuildID, corr.Coins)
		if err2 == nil {
			credited = corr.Coins
			target = Purchase{UserID: corr.UserID, GuildID: corr.GuildID}
		}
		return err2
	})
	if err != nil {
		if errors.Is(err, ErrMissingTarget) {
			zap.L().Error("purchase event carries no usable target, dropping",
				zap.String("sessionID", p.SessionID))
			return nil
		}
		zap.L().Error("failed to handle purchase", zap.String("sessionID", p.SessionID), zap.Error(err))
		return err
	}

	if corr != nil {
		if ackErr := s.ack.EditOriginal(ctx, corr.ApplicationID, corr.InteractionToken, corr.Coins, balance); ackErr != nil {
			zap.L().Warn("failed to edit purchase acknowledgement",
				zap.String("sessionID", p.SessionID), zap.Error(ackErr))
		}
	}
	if credited > 0 {
		if nErr := s.notifier.NotifyTopUp(ctx, target.UserID, target.GuildID, credited, balance); nErr != nil {
			zap.L().Warn("failed to send top-up notification",
				zap.String("sessionID", p.SessionID), zap.Error(nErr))
		}
	}
	return nil
}

// Correlate records the session-to-interaction link when the purchase flow
// is initiated.
func (s *Service) Correlate(ctx context.Context, corr *domain.PurchaseCorrelation) error {
	if err := s.correlationRepo.Create(ctx, corr); err != nil {
		zap.L().Error("failed to store purchase correlation",
			zap.String("sessionID", corr.SessionID), zap.Error(err))
		return err
	}
	return nil
}

// An identity mismatch only counts when the event payload actually carries
// the field: providers omit metadata on some event shapes.
func mismatched(corr *domain.PurchaseCorrelation, p Purchase) bool {
	if p.UserID != 0 && p.UserID != corr.UserID {
		return true
	}
	if p.GuildID != 0 && p.GuildID != corr.GuildID {
		return true
	}
	if p.Coins != 0 && p.Coins != corr.Coins {
		return true
	}
	return false
}
