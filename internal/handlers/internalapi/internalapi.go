package internalapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/veilbot/veilpay/internal/domain"
	"github.com/veilbot/veilpay/internal/dto"
	"github.com/veilbot/veilpay/internal/service/voteservice"
	"github.com/veilbot/veilpay/pkg/utils"
)

//go:generate mockgen -source=internalapi.go -destination=internalapi_mock.go -package=internalapi

type VoteService interface {
	DeclareContext(ctx context.Context, userID, guildID int64) error
	Claim(ctx context.Context, userID int64) (*voteservice.Result, error)
}

type LedgerService interface {
	GetBalance(ctx context.Context, userID, guildID int64) (*domain.UserBalance, error)
}

type PurchaseService interface {
	Correlate(ctx context.Context, corr *domain.PurchaseCorrelation) error
}

// InternalHandler serves the bot-facing endpoints behind service-token auth.
type InternalHandler struct {
	voteService     VoteService
	ledgerService   LedgerService
	purchaseService PurchaseService
	validate        *validator.Validate
}

func New(voteService VoteService, ledgerService LedgerService, purchaseService PurchaseService) *InternalHandler {
	return &InternalHandler{
		voteService:     voteService,
		ledgerService:   ledgerService,
		purchaseService: purchaseService,
		validate:        validator.New(),
	}
}

// DeclareContext godoc
//
//	@Summary		Declare vote crediting target
//	@Description	Records the guild the user's future vote credits should land in. Overwrites any earlier declaration.
//	@Tags			Internal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeclareContextRequestDTO	true	"User and target guild"
//	@Success		200		{object}	utils.Response					"Context stored"
//	@Failure		400		{object}	utils.Response					"Malformed payload"
//	@Failure		401		{object}	utils.Response					"Missing or invalid service token"
//	@Failure		500		{object}	utils.Response					"Store failure"
//	@Router			/api/votes/context [post]
func (h *InternalHandler) DeclareContext(w http.ResponseWriter, r *http.Request) {
	var req dto.DeclareContextRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid context payload")
		return
	}

	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	guildID, err := strconv.ParseInt(req.GuildID, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid guild id")
		return
	}

	if err := h.voteService.DeclareContext(r.Context(), userID, guildID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "context stored"})
}

// Claim godoc
//
//	@Summary		Claim pending vote credits
//	@Description	Applies every pending vote credit of the user to their freshly declared guild and removes the claimed rows.
//	@Tags			Internal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO		true	"Claiming user"
//	@Success		200		{object}	dto.ClaimResponseDTO	"Credits applied (amount 0 when nothing was pending)"
//	@Failure		400		{object}	utils.Response			"Malformed payload or no declared guild"
//	@Failure		401		{object}	utils.Response			"Missing or invalid service token"
//	@Failure		500		{object}	utils.Response			"Store failure"
//	@Router			/api/votes/claim [post]
func (h *InternalHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid claim payload")
		return
	}

	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.voteService.Claim(r.Context(), userID)
	if err != nil {
		if errors.Is(err, voteservice.ErrNoContext) {
			utils.RespondWithError(w, http.StatusBadRequest, "no guild declared for crediting")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		Status:  string(result.Status),
		Amount:  result.Amount,
		Balance: result.Balance,
		GuildID: strconv.FormatInt(result.GuildID, 10),
	})
}

// Correlate godoc
//
//	@Summary		Correlate a checkout session with its interaction
//	@Description	Stores the session-to-interaction link when the purchase flow is initiated, so the completed purchase can edit the original response.
//	@Tags			Internal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CorrelateRequestDTO	true	"Checkout session and interaction identity"
//	@Success		200		{object}	utils.Response			"Correlation stored"
//	@Failure		400		{object}	utils.Response			"Malformed payload"
//	@Failure		401		{object}	utils.Response			"Missing or invalid service token"
//	@Failure		500		{object}	utils.Response			"Store failure"
//	@Router			/api/purchases/correlate [post]
func (h *InternalHandler) Correlate(w http.ResponseWriter, r *http.Request) {
	var req dto.CorrelateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid correlation payload")
		return
	}

	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	guildID, err := strconv.ParseInt(req.GuildID, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid guild id")
		return
	}

	corr := &domain.PurchaseCorrelation{
		SessionID:        req.SessionID,
		InteractionToken: req.InteractionToken,
		ApplicationID:    req.ApplicationID,
		UserID:           userID,
		GuildID:          guildID,
		Coins:            req.Coins,
	}
	if err := h.purchaseService.Correlate(r.Context(), corr); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "correlation stored"})
}

// GetBalance godoc
//
//	@Summary		Get a user's coin balance in a guild
//	@Tags			Internal
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id		query		string	true	"User id"
//	@Param			guild_id	query		string	true	"Guild id"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed identifiers"
//	@Failure		401			{object}	utils.Response	"Missing or invalid service token"
//	@Failure		500			{object}	utils.Response	"Store failure"
//	@Router			/api/balance [get]
func (h *InternalHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	guildID, err := strconv.ParseInt(r.URL.Query().Get("guild_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid guild id")
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID, guildID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  strconv.FormatInt(balance.UserID, 10),
		GuildID: strconv.FormatInt(balance.GuildID, 10),
		Coins:   balance.Coins,
	})
}
