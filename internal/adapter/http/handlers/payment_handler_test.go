package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"claims_settlement/internal/adapter/http/handlers/mocks"
	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/domain/settlement"
	"claims_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, mockMode)

	r := gin.New()
	r.POST("/v1/payments/:offer_id", h.RecordPayment)
	r.POST("/v1/payments/:offer_id/gateway", h.PayThroughGateway)
	return r, uc
}

func paidOffer() entities.SettlementOffer {
	o := draftOffer()
	o.Status = entities.OfferStatusPaid
	o.Payment = &entities.PaymentRecord{
		PaymentDetails: entities.PaymentDetails{
			PaymentMethod:        entities.PaymentMethodCheque,
			TransactionReference: "CHQ-1",
			PaymentStatus:        entities.PaymentStatusCompleted,
		},
		ProcessedBy:   "finance-1",
		ReceiptNumber: "RCP-1",
	}
	return o
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1", "{", "finance-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bank transfer without bank fields", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		verr := &settlement.ValidationError{Fields: []settlement.FieldError{{Field: "bank_name", Rule: "required_if", Message: "is required"}}}
		uc.EXPECT().Record(gomock.Any(), "OFF-1", gomock.Any(), "finance-1").Return(entities.SettlementOffer{}, verr)

		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1", `{"payment_method":"BANK_TRANSFER","transaction_reference":"TXN1","payment_status":"COMPLETED"}`, "finance-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("offer not in payment processing", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().Record(gomock.Any(), "OFF-1", gomock.Any(), "finance-1").Return(entities.SettlementOffer{}, settlement.ErrInvalidState)

		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1", `{"payment_method":"CHEQUE","transaction_reference":"CHQ-1","payment_status":"COMPLETED"}`, "finance-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().Record(gomock.Any(), "OFF-1", gomock.Any(), "finance-1").DoAndReturn(
			func(_ context.Context, _ string, d entities.PaymentDetails, _ string) (entities.SettlementOffer, error) {
				if d.PaymentMethod != entities.PaymentMethodCheque || d.TransactionReference != "CHQ-1" {
					t.Fatalf("unexpected details: %+v", d)
				}
				return paidOffer(), nil
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1", `{"payment_method":"CHEQUE","transaction_reference":"CHQ-1","payment_status":"COMPLETED"}`, "finance-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status  string `json:"status"`
			Payment struct {
				ReceiptNumber string `json:"receipt_number"`
			} `json:"payment"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "PAID" || body.Payment.ReceiptNumber != "RCP-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_PayThroughGateway(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1/gateway", "{", "finance-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload falls back in mock mode", func(t *testing.T) {
		r, uc := newPaymentRouter(t, true)
		uc.EXPECT().PayThroughGateway(gomock.Any(), "OFF-1", json.RawMessage("{}"), "finance-1").Return(paidOffer(), nil)

		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1/gateway", "{", "finance-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload envelope", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().PayThroughGateway(gomock.Any(), "OFF-1", gomock.Any(), "finance-1").DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage, _ string) (entities.SettlementOffer, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return paidOffer(), nil
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1/gateway", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`, "finance-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty mp_payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1/gateway", `{"mp_payload":null}`, "finance-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
			{usecase.ErrOfferNotPayable, http.StatusConflict},
			{usecase.ErrOfferNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			r, uc := newPaymentRouter(t, false)
			uc.EXPECT().PayThroughGateway(gomock.Any(), "OFF-1", gomock.Any(), "finance-1").Return(entities.SettlementOffer{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/payments/OFF-1/gateway", `{"payment_method_id":"pix"}`, "finance-1")
			if w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
		}
	})
}
