package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockBalanceRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreditPurchase(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		amount          int64
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name:   "Credits and returns the new balance",
			amount: 250,
			prepareMock: func() {
				repo.EXPECT().CreditUser(gomock.Any(), int64(42), int64(555), int64(250)).Return(int64(670), nil)
			},
			expectedBalance: 670,
		},
		{
			name:          "Zero amount is rejected",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount is rejected",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repo error propagates",
			amount: 250,
			prepareMock: func() {
				repo.EXPECT().CreditUser(gomock.Any(), int64(42), int64(555), int64(250)).Return(int64(0), errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.CreditPurchase(context.Background(), 42, 555, tt.amount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestCreditBonus(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Broadcasts the bonus to the guild",
			amount: 500,
			prepareMock: func() {
				repo.EXPECT().CreditGuild(gomock.Any(), int64(555), int64(500)).Return(int64(3), nil)
			},
		},
		{
			name:          "Zero amount is rejected",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repo error propagates",
			amount: 500,
			prepareMock: func() {
				repo.EXPECT().CreditGuild(gomock.Any(), int64(555), int64(500)).Return(int64(0), errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.CreditBonus(context.Background(), 555, tt.amount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.UserBalance
		expectedError   error
	}{
		{
			name: "Existing balance is returned",
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), int64(42), int64(555)).
					Return(&domain.UserBalance{UserID: 42, GuildID: 555, Coins: 420}, nil)
			},
			expectedBalance: &domain.UserBalance{UserID: 42, GuildID: 555, Coins: 420},
		},
		{
			name: "Missing balance reads as zero",
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), int64(42), int64(555)).Return(nil, nil)
			},
			expectedBalance: &domain.UserBalance{UserID: 42, GuildID: 555, Coins: 0},
		},
		{
			name: "Repo error propagates",
			prepareMock: func() {
				repo.EXPECT().GetBalance(gomock.Any(), int64(42), int64(555)).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(context.Background(), 42, 555)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}
