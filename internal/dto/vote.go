package dto

// TopggVoteRequestDTO is top.gg's webhook payload.
type TopggVoteRequestDTO struct {
	User      string `json:"user" example:"221543521104297984" validate:"required,number"`
	Type      string `json:"type" example:"upvote"`
	IsWeekend bool   `json:"isWeekend" example:"false"`
}

// DiscordsVoteRequestDTO is discords.com's webhook payload.
type DiscordsVoteRequestDTO struct {
	User string `json:"user" example:"221543521104297984" validate:"required,number"`
}

type VoteResponseDTO struct {
	Status  string `json:"status" example:"credited"`
	Amount  int64  `json:"amount,omitempty" example:"20"`
	Balance int64  `json:"balance,omitempty" example:"420"`
}
