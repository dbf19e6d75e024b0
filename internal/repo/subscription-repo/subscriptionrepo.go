package subscriptionrepo

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

func (r *Repository) GetByGuildID(ctx context.Context, guildID int64) (*domain.GuildSubscription, error) {
	query := `
        SELECT guild_id, tier, subscribed_at, renews_at, external_id, payment_failed
        FROM guild_subscriptions
        WHERE guild_id = $1
    `
	row := r.db.QueryRow(ctx, query, guildID)
	var sub domain.GuildSubscription
	err := row.Scan(&sub.GuildID, &sub.Tier, &sub.SubscribedAt, &sub.RenewsAt, &sub.ExternalID, &sub.PaymentFailed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get guild subscription", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.GuildSubscription, error) {
	query := `
        SELECT guild_id, tier, subscribed_at, renews_at, external_id, payment_failed
        FROM guild_subscriptions
        WHERE external_id = $1
    `
	row := r.db.QueryRow(ctx, query, externalID)
	var sub domain.GuildSubscription
	err := row.Scan(&sub.GuildID, &sub.Tier, &sub.SubscribedAt, &sub.RenewsAt, &sub.ExternalID, &sub.PaymentFailed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get guild subscription by external id", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

// Upsert writes the full subscription row for the guild. Redelivery of the
// same event reproduces the identical row.
func (r *Repository) Upsert(ctx context.Context, sub *domain.GuildSubscription) (*domain.GuildSubscription, error) {
	query := `
        INSERT INTO guild_subscriptions (guild_id, tier, subscribed_at, renews_at, external_id, payment_failed)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (guild_id) DO UPDATE
        SET tier = EXCLUDED.tier,
            subscribed_at = EXCLUDED.subscribed_at,
            renews_at = EXCLUDED.renews_at,
            external_id = EXCLUDED.external_id,
            payment_failed = EXCLUDED.payment_failed
        RETURNING guild_id, tier, subscribed_at, renews_at, external_id, payment_failed
    `
	row := r.db.QueryRow(ctx, query, sub.GuildID, sub.Tier, sub.SubscribedAt, sub.RenewsAt, sub.ExternalID, sub.PaymentFailed)
	var updated domain.GuildSubscription
	err := row.Scan(&updated.GuildID, &updated.Tier, &updated.SubscribedAt, &updated.RenewsAt, &updated.ExternalID, &updated.PaymentFailed)
	if err != nil {
		zap.L().Error("failed to upsert guild subscription", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// MarkPaymentFailed downgrades the guild to free without touching
// external_id: the provider may still heal the subscription on its own
// retry schedule.
func (r *Repository) MarkPaymentFailed(ctx context.Context, guildID int64) (*domain.GuildSubscription, error) {
	query := `
        INSERT INTO guild_subscriptions (guild_id, tier, subscribed_at, renews_at, external_id, payment_failed)
        VALUES ($1, 'free', now(), NULL, NULL, TRUE)
        ON CONFLICT (guild_id) DO UPDATE
        SET tier = 'free',
            subscribed_at = now(),
            renews_at = NULL,
            payment_failed = TRUE
        RETURNING guild_id, tier, subscribed_at, renews_at, external_id, payment_failed
    `
	row := r.db.QueryRow(ctx, query, guildID)
	var updated domain.GuildSubscription
	err := row.Scan(&updated.GuildID, &updated.Tier, &updated.SubscribedAt, &updated.RenewsAt, &updated.ExternalID, &updated.PaymentFailed)
	if err != nil {
		zap.L().Error("failed to mark payment failed", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) FindDueForRenewalCheck(ctx context.Context, limit uint32) ([]domain.GuildSubscription, error) {
	query := `
        SELECT guild_id, tier, subscribed_at, renews_at, external_id, payment_failed
        FROM guild_subscriptions
        WHERE tier <> 'free'
          AND external_id IS NOT NULL
          AND renews_at IS NOT NULL
          AND renews_at < now()
        ORDER BY renews_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to find subscriptions due for renewal check", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.GuildSubscription
	for rows.Next() {
		var sub domain.GuildSubscription
		err := rows.Scan(&sub.GuildID, &sub.Tier, &sub.SubscribedAt, &sub.RenewsAt, &sub.ExternalID, &sub.PaymentFailed)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
