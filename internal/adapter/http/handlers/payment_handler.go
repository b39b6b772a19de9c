package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "claims_settlement/internal/adapter/http/dto/request"
	response "claims_settlement/internal/adapter/http/dto/response"
	"claims_settlement/internal/usecase"
	"claims_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for settlement payouts.

type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// RecordPayment godoc
// @Summary  Record a payout made for an offer
// @Description  Stores the payment details of an offer in payment processing. A COMPLETED payment marks the offer PAID.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Actor-ID  header  string                  true  "Finance user"
// @Param    offer_id    path    string                  true  "Offer id"
// @Param    body        body    request.PaymentRequest  true  "Payment"
// @Success  200  {object}  response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /payments/{offer_id} [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	offerID := c.Param("offer_id")
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload offer_id=%s err=%v", offerID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	paid, err := h.usecase.Record(c.Request.Context(), offerID, payload.ToDetails(), actor)
	if err != nil {
		log.Printf("[payment][handler] record failed offer_id=%s err=%v", offerID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] record success offer_id=%s status=%s", offerID, paid.Status)

	c.JSON(http.StatusOK, response.FromOffer(paid))
}

// PayThroughGateway godoc
// @Summary  Pay an offer through Mercado Pago
// @Description  Creates the payment at Mercado Pago and records the provider outcome on the offer.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Actor-ID  header  string                         true  "Finance user"
// @Param    offer_id    path    string                         true  "Offer id"
// @Param    body        body    request.GatewayPaymentRequest  true  "Mercado Pago payload"
// @Success  200  {object}  response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  401  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /payments/{offer_id}/gateway [post]
func (h *PaymentHandler) PayThroughGateway(c *gin.Context) {
	offerID := c.Param("offer_id")
	log.Printf("[payment][handler] gateway start offer_id=%s", offerID)
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload offer_id=%s err=%v", offerID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload offer_id=%s err=%v", offerID, err)
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
	}

	paid, err := h.usecase.PayThroughGateway(c.Request.Context(), offerID, mpPayload, actor)
	if err != nil {
		log.Printf("[payment][handler] gateway failed offer_id=%s err=%v", offerID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] gateway success offer_id=%s status=%s", offerID, paid.Status)

	c.JSON(http.StatusOK, response.FromOffer(paid))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOfferNotPayable):
		return pkg.NewDomainErrorSimple("OFFER_NOT_PAYABLE", "Offer is not in payment processing", http.StatusConflict)
	default:
		return mapOfferError(err)
	}
}
