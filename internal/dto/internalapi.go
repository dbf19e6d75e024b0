package dto

// DeclareContextRequestDTO declares the guild a user's future vote credits
// should target.
type DeclareContextRequestDTO struct {
	UserID  string `json:"user_id" example:"221543521104297984" validate:"required,number"`
	GuildID string `json:"guild_id" example:"927350149968396338" validate:"required,number"`
}

type ClaimRequestDTO struct {
	UserID string `json:"user_id" example:"221543521104297984" validate:"required,number"`
}

type ClaimResponseDTO struct {
	Status  string `json:"status" example:"credited"`
	Amount  int64  `json:"amount" example:"40"`
	Balance int64  `json:"balance" example:"460"`
	GuildID string `json:"guild_id" example:"927350149968396338"`
}

// CorrelateRequestDTO links a checkout session to the interaction that
// started it, so the completed purchase can be acknowledged in place.
type CorrelateRequestDTO struct {
	SessionID        string `json:"session_id" example:"cs_test_a1B2c3D4" validate:"required"`
	InteractionToken string `json:"interaction_token" example:"aW50ZXJhY3Rpb24tdG9rZW4" validate:"required"`
	ApplicationID    string `json:"application_id" example:"913852362232791142" validate:"required,number"`
	UserID           string `json:"user_id" example:"221543521104297984" validate:"required,number"`
	GuildID          string `json:"guild_id" example:"927350149968396338" validate:"required,number"`
	Coins            int64  `json:"coins" example:"250" validate:"required,gt=0"`
}

type BalanceResponseDTO struct {
	UserID  string `json:"user_id" example:"221543521104297984"`
	GuildID string `json:"guild_id" example:"927350149968396338"`
	Coins   int64  `json:"coins" example:"420"`
}
