package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/veilbot/veilpay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	refill := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int64
		guildID   int64
		mockSetup func()
		expectErr bool
		result    *domain.UserBalance
	}{
		{
			name:    "Existing balance returns row",
			userID:  42,
			guildID: 555,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "guild_id", "coins", "last_refill"}).
					AddRow(int64(42), int64(555), int64(420), refill)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, guild_id, coins, last_refill`)).
					WithArgs(int64(42), int64(555)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.UserBalance{UserID: 42, GuildID: 555, Coins: 420, LastRefill: refill},
		},
		{
			name:    "Missing balance returns nil",
			userID:  42,
			guildID: 999,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, guild_id, coins, last_refill`)).
					WithArgs(int64(42), int64(999)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			userID:  42,
			guildID: 555,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, guild_id, coins, last_refill`)).
					WithArgs(int64(42), int64(555)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.userID, tt.guildID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreditUser(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		expectErr bool
		balance   int64
	}{
		{
			name:   "Creates row on first credit",
			amount: 250,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coins"}).AddRow(int64(250))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_balances`)).
					WithArgs(int64(42), int64(555), int64(250)).
					WillReturnRows(rows)
			},
			expectErr: false,
			balance:   250,
		},
		{
			name:   "Adds to existing row",
			amount: 20,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coins"}).AddRow(int64(270))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_balances`)).
					WithArgs(int64(42), int64(555), int64(20)).
					WillReturnRows(rows)
			},
			expectErr: false,
			balance:   270,
		},
		{
			name:   "Database error",
			amount: 20,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_balances`)).
					WithArgs(int64(42), int64(555), int64(20)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			balance:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.CreditUser(context.Background(), 42, 555, tt.amount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.balance, balance)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreditGuild(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		rows      int64
	}{
		{
			name: "Credits every balance of the guild",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_balances`)).
					WithArgs(int64(500), int64(555)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
			},
			expectErr: false,
			rows:      3,
		},
		{
			name: "No members is not an error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_balances`)).
					WithArgs(int64(500), int64(555)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			rows:      0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE user_balances`)).
					WithArgs(int64(500), int64(555)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			rows:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rows, err := repo.CreditGuild(context.Background(), 555, 500)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.rows, rows)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
