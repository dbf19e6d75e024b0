package voterepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_InsertVote(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	passthrough := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		inserted  bool
	}{
		{
			name: "First vote in the window is recorded",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				mock.ExpectExec(regexp.QuoteMeta(`pg_advisory_xact_lock`)).
					WithArgs(int64(42), "topgg").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vote_records`)).
					WithArgs(int64(42), "topgg", int64(20)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			inserted: true,
		},
		{
			name: "Duplicate within the window is skipped",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				mock.ExpectExec(regexp.QuoteMeta(`pg_advisory_xact_lock`)).
					WithArgs(int64(42), "topgg").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vote_records`)).
					WithArgs(int64(42), "topgg", int64(20)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			inserted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				mock.ExpectExec(regexp.QuoteMeta(`pg_advisory_xact_lock`)).
					WithArgs(int64(42), "topgg").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			inserted, err := repo.InsertVote(context.Background(), 42, "topgg", 20)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetContext(t *testing.T) {
	repo, mock, _ := NewMock(t)
	lastOpened := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Existing context returns row", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "guild_id", "last_opened"}).
			AddRow(int64(42), int64(555), lastOpened)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM vote_contexts`)).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		vctx, err := repo.GetContext(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, &domain.VoteContext{UserID: 42, GuildID: 555, LastOpened: lastOpened}, vctx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing context returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM vote_contexts`)).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		vctx, err := repo.GetContext(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, vctx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpsertContext(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Overwrites earlier declaration", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vote_contexts`)).
			WithArgs(int64(42), int64(555)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.UpsertContext(context.Background(), 42, 555)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vote_contexts`)).
			WithArgs(int64(42), int64(555)).
			WillReturnError(errors.New("database error"))

		err := repo.UpsertContext(context.Background(), 42, 555)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Pending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Insert, list and delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pending_vote_credits`)).
			WithArgs(int64(42), "topgg", int64(20)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		rows := pgxmock.NewRows([]string{"id", "user_id", "source", "amount", "created_at"}).
			AddRow(int64(1), int64(42), "topgg", int64(20), createdAt).
			AddRow(int64(2), int64(42), "discords", int64(20), createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM pending_vote_credits`)).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pending_vote_credits`)).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.InsertPending(context.Background(), 42, "topgg", 20)
		assert.NoError(t, err)

		pending, err := repo.ListPending(context.Background(), 42)
		assert.NoError(t, err)
		assert.Len(t, pending, 2)
		assert.Equal(t, int64(20), pending[0].Amount)

		err = repo.DeletePending(context.Background(), 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM pending_vote_credits`)).
			WithArgs(int64(42)).
			WillReturnError(errors.New("database error"))

		pending, err := repo.ListPending(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, pending)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
