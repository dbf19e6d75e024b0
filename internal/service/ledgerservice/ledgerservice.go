package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID, guildID int64) (*domain.UserBalance, error)
	CreditUser(ctx context.Context, userID, guildID, amount int64) (int64, error)
	CreditGuild(ctx context.Context, guildID, amount int64) (int64, error)
}

type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{balanceRepo: balanceRepo}
}

var ErrInvalidAmount = errors.New("credit amount must be positive")

// CreditPurchase atomically adds coins to the (user, guild) balance,
// creating the row when absent, and returns the new balance.
func (s *Service) CreditPurchase(ctx context.Context, userID, guildID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	coins, err := s.balanceRepo.CreditUser(ctx, userID, guildID, amount)
	if err != nil {
		zap.L().Error("failed to credit purchase", zap.Error(err))
		return 0, err
	}
	return coins, nil
}

// CreditBonus broadcasts a tier bonus to every balance row of the guild.
func (s *Service) CreditBonus(ctx context.Context, guildID, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	rows, err := s.balanceRepo.CreditGuild(ctx, guildID, amount)
	if err != nil {
		zap.L().Error("failed to credit bonus", zap.Error(err))
		return err
	}
	zap.L().Info("tier bonus applied",
		zap.Int64("guildID", guildID),
		zap.Int64("amount", amount),
		zap.Int64("balances", rows),
	)
	return nil
}

func (s *Service) GetBalance(ctx context.Context, userID, guildID int64) (*domain.UserBalance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, userID, guildID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.UserBalance{UserID: userID, GuildID: guildID}, nil
	}
	return balance, nil
}
