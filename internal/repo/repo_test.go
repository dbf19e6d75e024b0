package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/pg"
	balancerepo "github.com/veilbot/veilpay/internal/repo/balance-repo"
	correlationrepo "github.com/veilbot/veilpay/internal/repo/correlation-repo"
	subscriptionrepo "github.com/veilbot/veilpay/internal/repo/subscription-repo"
	voterepo "github.com/veilbot/veilpay/internal/repo/vote-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.SubscriptionRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.VoteRepo)
	assert.NotNil(t, repo.CorrelationRepo)

	assert.IsType(t, &subscriptionrepo.Repository{}, repo.SubscriptionRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &voterepo.Repository{}, repo.VoteRepo)
	assert.IsType(t, &correlationrepo.Repository{}, repo.CorrelationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
