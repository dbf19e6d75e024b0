package voterepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// InsertVote appends a vote record unless an identical (user, source) vote
// was recorded within the last 12 hours. Returns false for the duplicate
// case. The advisory lock serializes concurrent duplicate deliveries that
// would otherwise both pass the window check.
func (r *Repository) InsertVote(ctx context.Context, userID int64, source string, amount int64) (bool, error) {
	var inserted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		lock := `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2))`
		if _, err := r.db.Exec(ctx, lock, userID, source); err != nil {
			zap.L().Error("failed to take vote lock", zap.Error(err))
			return err
		}

		query := `
            INSERT INTO vote_records (user_id, source, amount)
            SELECT $1, $2, $3
            WHERE NOT EXISTS (
                SELECT 1 FROM vote_records
                WHERE user_id = $1 AND source = $2
                  AND recorded_at > now() - interval '12 hours'
            )
        `
		tag, err := r.db.Exec(ctx, query, userID, source, amount)
		if err != nil {
			zap.L().Error("failed to insert vote record", zap.Error(err))
			return err
		}
		inserted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *Repository) GetContext(ctx context.Context, userID int64) (*domain.VoteContext, error) {
	query := `
        SELECT user_id, guild_id, last_opened
        FROM vote_contexts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var vctx domain.VoteContext
	err := row.Scan(&vctx.UserID, &vctx.GuildID, &vctx.LastOpened)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get vote context", zap.Error(err))
		return nil, err
	}
	return &vctx, nil
}

func (r *Repository) UpsertContext(ctx context.Context, userID, guildID int64) error {
	query := `
        INSERT INTO vote_contexts (user_id, guild_id, last_opened)
        VALUES ($1, $2, now())
        ON CONFLICT (user_id) DO UPDATE
        SET guild_id = EXCLUDED.guild_id, last_opened = now()
    `
	if _, err := r.db.Exec(ctx, query, userID, guildID); err != nil {
		zap.L().Error("failed to upsert vote context", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) InsertPending(ctx context.Context, userID int64, source string, amount int64) error {
	query := `
        INSERT INTO pending_vote_credits (user_id, source, amount)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, userID, source, amount); err != nil {
		zap.L().Error("failed to insert pending vote credit", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPending(ctx context.Context, userID int64) ([]domain.PendingVoteCredit, error) {
	query := `
        SELECT id, user_id, source, amount, created_at
        FROM pending_vote_credits
        WHERE user_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list pending vote credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingVoteCredit
	for rows.Next() {
		var p domain.PendingVoteCredit
		err := rows.Scan(&p.ID, &p.UserID, &p.Source, &p.Amount, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan pending vote credit row", zap.Error(err))
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

func (r *Repository) DeletePending(ctx context.Context, id int64) error {
	query := `DELETE FROM pending_vote_credits WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to delete pending vote credit", zap.Error(err))
		return err
	}
	return nil
}
