package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veilbot/veilpay/internal/config"
	"github.com/veilbot/veilpay/internal/service"
	"github.com/veilbot/veilpay/pkg/auth"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{}, &config.Config{ServiceTokenSecret: "secret"})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStripeHandler := NewMockStripeHandler(ctrl)
	mockVoteHandler := NewMockVoteHandler(ctrl)
	mockInternalHandler := NewMockInternalHandler(ctrl)

	mockStripeHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockVoteHandler.EXPECT().Topgg(gomock.Any(), gomock.Any()).AnyTimes()
	mockVoteHandler.EXPECT().Discords(gomock.Any(), gomock.Any()).AnyTimes()
	mockInternalHandler.EXPECT().DeclareContext(gomock.Any(), gomock.Any()).AnyTimes()
	mockInternalHandler.EXPECT().Claim(gomock.Any(), gomock.Any()).AnyTimes()
	mockInternalHandler.EXPECT().Correlate(gomock.Any(), gomock.Any()).AnyTimes()
	mockInternalHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	h := &Handlers{
		StripeHandler:   mockStripeHandler,
		VoteHandler:     mockVoteHandler,
		InternalHandler: mockInternalHandler,
		jwtService:      jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT("veilbot", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/webhooks/stripe", "", http.StatusOK},
		{"POST", "/webhooks/votes/topgg", "", http.StatusOK},
		{"POST", "/webhooks/votes/discords", "", http.StatusOK},
		{"POST", "/api/votes/context", "", http.StatusUnauthorized},
		{"POST", "/api/votes/claim", "", http.StatusUnauthorized},
		{"POST", "/api/purchases/correlate", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "", http.StatusUnauthorized},
		{"POST", "/api/votes/context", token, http.StatusOK},
		{"POST", "/api/votes/claim", token, http.StatusOK},
		{"POST", "/api/purchases/correlate", token, http.StatusOK},
		{"GET", "/api/balance", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
