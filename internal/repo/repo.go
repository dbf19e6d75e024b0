package repo

import (
	"github.com/veilbot/veilpay/internal/pg"
	balancerepo "github.com/veilbot/veilpay/internal/repo/balance-repo"
	correlationrepo "github.com/veilbot/veilpay/internal/repo/correlation-repo"
	subscriptionrepo "github.com/veilbot/veilpay/internal/repo/subscription-repo"
	voterepo "github.com/veilbot/veilpay/internal/repo/vote-repo"
	"github.com/veilbot/veilpay/internal/service/ledgerservice"
	"github.com/veilbot/veilpay/internal/service/purchaseservice"
	"github.com/veilbot/veilpay/internal/service/voteservice"
)

type Repositories struct {
	SubscriptionRepo *subscriptionrepo.Repository
	BalanceRepo      ledgerservice.BalanceRepo
	VoteRepo         voteservice.VoteRepo
	CorrelationRepo  purchaseservice.CorrelationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	subscriptionRepo := subscriptionrepo.New(conn)
	balanceRepo := balancerepo.New(conn)
	voteRepo := voterepo.New(conn, txManager)
	correlationRepo := correlationrepo.New(conn)

	return &Repositories{
		SubscriptionRepo: subscriptionRepo,
		BalanceRepo:      balanceRepo,
		VoteRepo:         voteRepo,
		CorrelationRepo:  correlationRepo,
	}
}
