package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/veilbot/veilpay/docs"
	"github.com/veilbot/veilpay/internal/config"
	internalapihandlers "github.com/veilbot/veilpay/internal/handlers/internalapi"
	stripehandlers "github.com/veilbot/veilpay/internal/handlers/stripe"
	voteshandlers "github.com/veilbot/veilpay/internal/handlers/votes"
	"github.com/veilbot/veilpay/internal/service"
	"github.com/veilbot/veilpay/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type StripeHandler interface {
	Webhook(w http.ResponseWriter, r *http.Request)
}

type VoteHandler interface {
	Topgg(w http.ResponseWriter, r *http.Request)
	Discords(w http.ResponseWriter, r *http.Request)
}

type InternalHandler interface {
	DeclareContext(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Correlate(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	StripeHandler   StripeHandler
	VoteHandler     VoteHandler
	InternalHandler InternalHandler

	jwtService *auth.JWTService
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		StripeHandler:   stripehandlers.New(s.SubscriptionService, s.PurchaseService, cfg.StripeWebhookSecret),
		VoteHandler:     voteshandlers.New(s.VoteService, cfg.TopggSecret, cfg.DiscordsSecret),
		InternalHandler: internalapihandlers.New(s.VoteService, s.LedgerService, s.PurchaseService),
		jwtService:      auth.NewJWTService(cfg.ServiceTokenSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/webhooks", func(r chi.Router) {
		r.Post("/stripe", h.StripeHandler.Webhook)
		r.Route("/votes", func(r chi.Router) {
			r.Post("/topgg", h.VoteHandler.Topgg)
			r.Post("/discords", h.VoteHandler.Discords)
		})
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(h.jwtService.Middleware)
		r.Route("/votes", func(r chi.Router) {
			r.Post("/context", h.InternalHandler.DeclareContext)
			r.Post("/claim", h.InternalHandler.Claim)
		})
		r.Post("/purchases/correlate", h.InternalHandler.Correlate)
		r.Get("/balance", h.InternalHandler.GetBalance)
	})

	return r
}
