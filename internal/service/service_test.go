package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/config"
	"github.com/veilbot/veilpay/internal/pg"
	"github.com/veilbot/veilpay/internal/repo"
	"github.com/veilbot/veilpay/internal/service/purchaseservice"
	"github.com/veilbot/veilpay/internal/service/subscriptionservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	services := New(repos, &config.Config{}, mockTxManager, Collaborators{
		Billing:  subscriptionservice.NewMockBillingClient(ctrl),
		Notifier: subscriptionservice.NewMockNotifier(ctrl),
		TopUp:    purchaseservice.NewMockNotifier(ctrl),
		Ack:      purchaseservice.NewMockAckEditor(ctrl),
	})

	assert.NotNil(t, services.SubscriptionService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.VoteService)
	assert.NotNil(t, services.PurchaseService)
}
