package domain

import "time"

// Tier is a guild subscription level.
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierElite   Tier = "elite"
)

func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPremium, TierElite:
		return true
	}
	return false
}

type GuildSubscription struct {
	GuildID       int64      `db:"guild_id"`
	Tier          Tier       `db:"tier"`
	SubscribedAt  time.Time  `db:"subscribed_at"`
	RenewsAt      *time.Time `db:"renews_at"`
	ExternalID    *string    `db:"external_id"`
	PaymentFailed bool       `db:"payment_failed"`
}

type UserBalance struct {
	UserID     int64     `db:"user_id"`
	GuildID    int64     `db:"guild_id"`
	Coins      int64     `db:"coins"`
	LastRefill time.Time `db:"last_refill"`
}

type VoteRecord struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Source     string    `db:"source"`
	Amount     int64     `db:"amount"`
	RecordedAt time.Time `db:"recorded_at"`
}

type VoteContext struct {
	UserID     int64     `db:"user_id"`
	GuildID    int64     `db:"guild_id"`
	LastOpened time.Time `db:"last_opened"`
}

type PendingVoteCredit struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Source    string    `db:"source"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

type PurchaseCorrelation struct {
	SessionID        string     `db:"session_id"`
	InteractionToken string     `db:"interaction_token"`
	ApplicationID    string     `db:"application_id"`
	UserID           int64      `db:"user_id"`
	GuildID          int64      `db:"guild_id"`
	Coins            int64      `db:"coins"`
	ConsumedAt       *time.Time `db:"consumed_at"`
}

// ProviderSubscription is the tier-determining slice of a billing provider
// subscription object, normalized across provider API versions.
type ProviderSubscription struct {
	ID       string
	PriceID  string
	GuildID  int64
	RenewsAt time.Time
	Canceled bool
}
