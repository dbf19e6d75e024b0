package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetBalance(ctx context.Context, userID, guildID int64) (*domain.UserBalance, error) {
	query := `
        SELECT user_id, guild_id, coins, last_refill
        FROM user_balances
        WHERE user_id = $1 AND guild_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, guildID)
	var balance domain.UserBalance
	err := row.Scan(&balance.UserID, &balance.GuildID, &balance.Coins, &balance.LastRefill)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// CreditUser adds coins to the (user, guild) balance in a single atomic
// round-trip, creating the row when absent, and returns the new balance.
func (r *Repository) CreditUser(ctx context.Context, userID, guildID, amount int64) (int64, error) {
	query := `
        INSERT INTO user_balances (user_id, guild_id, coins)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, guild_id) DO UPDATE
        SET coins = user_balances.coins + EXCLUDED.coins
        RETURNING coins
    `
	var coins int64
	err := r.db.QueryRow(ctx, query, userID, guildID, amount).Scan(&coins)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return 0, err
	}
	return coins, nil
}

// CreditGuild adds coins to every balance row of the guild and stamps
// last_refill. Returns the number of rows touched.
func (r *Repository) CreditGuild(ctx context.Context, guildID, amount int64) (int64, error) {
	query := `
        UPDATE user_balances
        SET coins = coins + $1, last_refill = now()
        WHERE guild_id = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, guildID)
	if err != nil {
		zap.L().Error("failed to credit guild balances", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
