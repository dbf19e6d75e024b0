package service

import (
	"github.com/veilbot/veilpay/internal/config"
	"github.com/veilbot/veilpay/internal/pg"
	"github.com/veilbot/veilpay/internal/repo"
	"github.com/veilbot/veilpay/internal/service/ledgerservice"
	"github.com/veilbot/veilpay/internal/service/purchaseservice"
	"github.com/veilbot/veilpay/internal/service/subscriptionservice"
	"github.com/veilbot/veilpay/internal/service/voteservice"
)

// Collaborators are the outbound capabilities the reconcilers depend on,
// injected so the services stay testable without network access.
type Collaborators struct {
	Billing  subscriptionservice.BillingClient
	Notifier subscriptionservice.Notifier
	TopUp    purchaseservice.Notifier
	Ack      purchaseservice.AckEditor
}

type Services struct {
	SubscriptionService *subscriptionservice.Service
	LedgerService       *ledgerservice.Service
	VoteService         *voteservice.Service
	PurchaseService     *purchaseservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, txManager pg.TXManager, ext Collaborators) *Services {
	pricing := cfg.Pricing()

	ledgerService := ledgerservice.New(repo.BalanceRepo)
	subscriptionService := subscriptionservice.New(
		repo.SubscriptionRepo, ext.Billing, ledgerService, ext.Notifier, pricing, txManager)
	voteService := voteservice.New(repo.VoteRepo, ledgerService, pricing, txManager, cfg.TopggWeekendDouble)
	purchaseService := purchaseservice.New(repo.CorrelationRepo, ledgerService, ext.Ack, ext.TopUp, txManager)

	return &Services{
		SubscriptionService: subscriptionService,
		LedgerService:       ledgerService,
		VoteService:         voteService,
		PurchaseService:     purchaseService,
	}
}
