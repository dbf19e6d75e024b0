package votes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/veilbot/veilpay/internal/dto"
	"github.com/veilbot/veilpay/internal/service/voteservice"
	"github.com/veilbot/veilpay/pkg/utils"
)

//go:generate mockgen -source=votes.go -destination=votes_mock.go -package=votes

const (
	SourceTopgg    = "topgg"
	SourceDiscords = "discords"
)

type Service interface {
	Record(ctx context.Context, userID int64, source string, weekend bool) (*voteservice.Result, error)
}

type VoteHandler struct {
	voteService    Service
	topggSecret    string
	discordsSecret string
	validate       *validator.Validate
}

func New(voteService Service, topggSecret, discordsSecret string) *VoteHandler {
	return &VoteHandler{
		voteService:    voteService,
		topggSecret:    topggSecret,
		discordsSecret: discordsSecret,
		validate:       validator.New(),
	}
}

// Topgg godoc
//
//	@Summary		top.gg vote webhook
//	@Description	Records a vote from top.gg and credits the voter's declared guild, or defers the credit until one is declared.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Shared webhook secret"
//	@Param			request			body		dto.TopggVoteRequestDTO	true	"Vote payload"
//	@Success		200				{object}	dto.VoteResponseDTO		"duplicate, credited or pending"
//	@Failure		400				{object}	utils.Response			"Malformed payload"
//	@Failure		401				{object}	utils.Response			"Bad shared secret"
//	@Failure		500				{object}	utils.Response			"Store failure"
//	@Router			/webhooks/votes/topgg [post]
func (h *VoteHandler) Topgg(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != h.topggSecret || h.topggSecret == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.TopggVoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vote payload")
		return
	}

	h.record(w, r, req.User, SourceTopgg, req.IsWeekend)
}

// Discords godoc
//
//	@Summary		discords.com vote webhook
//	@Description	Records a vote from discords.com and credits the voter's declared guild, or defers the credit until one is declared.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string						true	"Shared webhook secret"
//	@Param			request			body		dto.DiscordsVoteRequestDTO	true	"Vote payload"
//	@Success		200				{object}	dto.VoteResponseDTO			"duplicate, credited or pending"
//	@Failure		400				{object}	utils.Response				"Malformed payload"
//	@Failure		401				{object}	utils.Response				"Bad shared secret"
//	@Failure		500				{object}	utils.Response				"Store failure"
//	@Router			/webhooks/votes/discords [post]
func (h *VoteHandler) Discords(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != h.discordsSecret || h.discordsSecret == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DiscordsVoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vote payload")
		return
	}

	h.record(w, r, req.User, SourceDiscords, false)
}

func (h *VoteHandler) record(w http.ResponseWriter, r *http.Request, user, source string, weekend bool) {
	userID, err := strconv.ParseInt(user, 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.voteService.Record(r.Context(), userID, source, weekend)
	if err != nil {
		if errors.Is(err, voteservice.ErrUnknownSource) {
			utils.RespondWithError(w, http.StatusBadRequest, "unknown vote source")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VoteResponseDTO{
		Status:  string(result.Status),
		Amount:  result.Amount,
		Balance: result.Balance,
	})
}
