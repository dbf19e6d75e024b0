package correlationrepo

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

// Create records the link between a checkout session and the interaction
// that initiated it. Written once when the purchase flow starts.
func (r *Repository) Create(ctx context.Context, corr *domain.PurchaseCorrelation) error {
	query := `
        INSERT INTO purchase_correlations (session_id, interaction_token, application_id, user_id, guild_id, coins)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		corr.SessionID, corr.InteractionToken, corr.ApplicationID, corr.UserID, corr.GuildID, corr.Coins)
	if err != nil {
		zap.L().Error("failed to create purchase correlation", zap.Error(err))
		return err
	}
	return nil
}

// Consume claims the correlation for a session exactly once. A second call
// for the same session returns nil: the consumed_at test makes duplicate
// deliveries of the same purchase event no-ops.
func (r *Repository) Consume(ctx context.Context, sessionID string) (*domain.PurchaseCorrelation, error) {
	query := `
        UPDATE purchase_correlations
        SET consumed_at = now()
        WHERE session_id = $1 AND consumed_at IS NULL
        RETURNING session_id, interaction_token, application_id, user_id, guild_id, coins, consumed_at
    `
	row := r.db.QueryRow(ctx, query, sessionID)
	var corr domain.PurchaseCorrelation
	err := row.Scan(&corr.SessionID, &corr.InteractionToken, &corr.ApplicationID,
		&corr.UserID, &corr.GuildID, &corr.Coins, &corr.ConsumedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to consume purchase correlation", zap.Error(err))
		return nil, err
	}
	return &corr, nil
}

// Exists reports whether any correlation row, consumed or not, was ever
// written for the session.
func (r *Repository) Exists(ctx context.Context, sessionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchase_correlations WHERE session_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, sessionID).Scan(&exists); err != nil {
		zap.L().Error("failed to check purchase correlation", zap.Error(err))
		return false, err
	}
	return exists, nil
}
