package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"claims_settlement/internal/adapter/http/handlers"
	"claims_settlement/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	router := NewRouter(
		handlers.NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl)),
		handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), false),
	)

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("offer statuses", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/offer-statuses", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	want := map[string]bool{}
	for _, r := range router.Routes() {
		want[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		"POST /v1/offers",
		"GET /v1/offers",
		"POST /v1/offers/expire-due",
		"GET /v1/offers/:offer_id",
		"PATCH /v1/offers/:offer_id/amounts",
		"PATCH /v1/offers/:offer_id/terms",
		"POST /v1/offers/:offer_id/submit",
		"POST /v1/offers/:offer_id/approve",
		"POST /v1/offers/:offer_id/reject",
		"POST /v1/offers/:offer_id/expire",
		"POST /v1/offers/:offer_id/payment-processing",
		"POST /v1/offers/:offer_id/cancel",
		"POST /v1/offers/:offer_id/presentation",
		"PATCH /v1/offers/:offer_id/presentation/delivery-status",
		"POST /v1/offers/:offer_id/response",
		"POST /v1/offers/:offer_id/documents",
		"DELETE /v1/offers/:offer_id/documents/:name",
		"POST /v1/payments/:offer_id",
		"POST /v1/payments/:offer_id/gateway",
		"GET /swagger/*any",
	} {
		if !want[route] {
			t.Fatalf("route not registered: %s", route)
		}
	}
}
