package voteservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/config"
	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

//go:generate mockgen -source=voteservice.go -destination=voteservice_mock.go -package=voteservice

// contextTTL bounds how long a declared crediting target stays valid.
const contextTTL = 24 * time.Hour

type VoteRepo interface {
	InsertVote(ctx context.Context, userID int64, source string, amount int64) (bool, error)
	GetContext(ctx context.Context, userID int64) (*domain.VoteContext, error)
	UpsertContext(ctx context.Context, userID, guildID int64) error
	InsertPending(ctx context.Context, userID int64, source string, amount int64) error
	ListPending(ctx context.Context, userID int64) ([]domain.PendingVoteCredit, error)
	DeletePending(ctx context.Context, id int64) error
}

type Ledger interface {
	CreditPurchase(ctx context.Context, userID, guildID, amount int64) (int64, error)
}

type Status string

const (
	StatusDuplicate Status = "duplicate"
	StatusCredited  Status = "credited"
	StatusPending   Status = "pending"
)

type Result struct {
	Status  Status
	Amount  int64
	Balance int64
	GuildID int64
}

var (
	ErrUnknownSource = errors.New("unknown vote source")
	ErrNoContext     = errors.New("no valid vote context")
)

type Service struct {
	voteRepo      VoteRepo
	ledger        Ledger
	pricing       *config.Pricing
	txManager     pg.TXManager
	weekendDouble bool
	now           func() time.Time
}

func New(voteRepo VoteRepo, ledger Ledger, pricing *config.Pricing, txManager pg.TXManager, weekendDouble bool) *Service {
	return &Service{
		voteRepo:      voteRepo,
		ledger:        ledger,
		pricing:       pricing,
		txManager:     txManager,
		weekendDouble: weekendDouble,
		now:           time.Now,
	}
}

// Record runs the vote pipeline: dedup, guild resolution, then either a
// direct credit or a pending credit awaiting a claim.
func (s *Service) Record(ctx context.Context, userID int64, source string, weekend bool) (*Result, error) {
	amount, ok := s.pricing.VoteAmount[source]
	if !ok {
		return nil, ErrUnknownSource
	}
	if weekend && s.weekendDouble {
		amount *= 2
	}

	var result Result
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.voteRepo.InsertVote(ctx, userID, source, amount)
		if err != nil {
			return err
		}
		if !inserted {
			result = Result{Status: StatusDuplicate}
			return nil
		}

		guildID, err := s.resolveGuild(ctx, userID)
		if err != nil {
			return err
		}
		if guildID == 0 {
			if err := s.voteRepo.InsertPending(ctx, userID, source, amount); err != nil {
				return err
			}
			result = Result{Status: StatusPending, Amount: amount}
			return nil
		}

		balance, err := s.ledger.CreditPurchase(ctx, userID, guildID, amount)
		if err != nil {
			return err
		}
		result = Result{Status: StatusCredited, Amount: amount, Balance: balance, GuildID: guildID}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record vote",
			zap.Int64("userID", userID),
			zap.String("source", source),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Info("vote processed",
		zap.Int64("userID", userID),
		zap.String("source", source),
		zap.String("status", string(result.Status)),
	)
	return &result, nil
}

// Claim applies every pending credit of the user against a freshly
// declared vote context and removes the claimed rows.
func (s *Service) Claim(ctx context.Context, userID int64) (*Result, error) {
	var result Result
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		guildID, err := s.resolveGuild(ctx, userID)
		if err != nil {
			return err
		}
		if guildID == 0 {
			return ErrNoContext
		}

		pending, err := s.voteRepo.ListPending(ctx, userID)
		if err != nil {
			return err
		}
		result = Result{Status: StatusCredited, GuildID: guildID}
		for _, p := range pending {
			balance, err := s.ledger.CreditPurchase(ctx, userID, guildID, p.Amount)
			if err != nil {
				return err
			}
			if err := s.voteRepo.DeletePending(ctx, p.ID); err != nil {
				return err
			}
			result.Amount += p.Amount
			result.Balance = balance
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoContext) {
			zap.L().Error("failed to claim pending credits", zap.Int64("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return &result, nil
}

// DeclareContext records the user's crediting target guild.
func (s *Service) DeclareContext(ctx context.Context, userID, guildID int64) error {
	if err := s.voteRepo.UpsertContext(ctx, userID, guildID); err != nil {
		zap.L().Error("failed to declare vote context", zap.Int64("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) resolveGuild(ctx context.Context, userID int64) (int64, error) {
	vctx, err := s.voteRepo.GetContext(ctx, userID)
	if err != nil {
		return 0, err
	}
	if vctx == nil || s.now().Sub(vctx.LastOpened) > contextTTL {
		return 0, nil
	}
	return vctx.GuildID, nil
}
