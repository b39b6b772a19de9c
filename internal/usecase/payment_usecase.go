package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOfferNotPayable                = errors.New("offer is not in payment processing")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how payloads are sent to Mercado Pago.
type PaymentOptions struct {
	// Mock relaxes payload checks; the gateway itself simulates the payment.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase pays out accepted offers.
//
//   - Record stores payment details captured by finance (bank transfer, cheque).
//   - PayThroughGateway creates the payment at Mercado Pago and records the outcome.

type IPaymentUseCase interface {
	Record(ctx context.Context, offerID string, details entities.PaymentDetails, processedBy string) (entities.SettlementOffer, error)
	PayThroughGateway(ctx context.Context, offerID string, mpPayload json.RawMessage, processedBy string) (entities.SettlementOffer, error)
}

type PaymentUseCase struct {
	offers  IOfferUseCase
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(offers IOfferUseCase, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	return &PaymentUseCase{offers: offers, gateway: gateway, opts: opts}
}

func (u *PaymentUseCase) Record(ctx context.Context, offerID string, details entities.PaymentDetails, processedBy string) (entities.SettlementOffer, error) {
	log.Printf("[payment][usecase] record start offer_id=%q method=%s status=%s", offerID, details.PaymentMethod, details.PaymentStatus)
	paid, err := u.offers.RecordPayment(ctx, offerID, details, processedBy)
	if err != nil {
		log.Printf("[payment][usecase] record failed offer_id=%q err=%v", offerID, err)
		return entities.SettlementOffer{}, err
	}
	receipt := ""
	if paid.Payment != nil {
		receipt = paid.Payment.ReceiptNumber
	}
	log.Printf("[payment][usecase] record success offer_id=%s status=%s receipt=%s", paid.ID, paid.Status, receipt)
	return paid, nil
}

func (u *PaymentUseCase) PayThroughGateway(ctx context.Context, offerID string, mpPayload json.RawMessage, processedBy string) (entities.SettlementOffer, error) {
	log.Printf("[payment][usecase] gateway start raw_offer_id=%q payload_len=%d", offerID, len(mpPayload))
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.SettlementOffer{}, ErrInvalidOfferID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Printf("[payment][usecase] invalid payload offer_id=%s", offerID)
			return entities.SettlementOffer{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured offer_id=%s", offerID)
		return entities.SettlementOffer{}, ErrPaymentGatewayNotConfigured
	}

	paid, err := u.offers.RecordChargedPayment(ctx, offerID, func(offer entities.SettlementOffer) (entities.PaymentDetails, error) {
		return u.charge(ctx, offer, mpPayload)
	}, processedBy)
	if err != nil {
		log.Printf("[payment][usecase] gateway payment failed offer_id=%s err=%v", offerID, err)
		return entities.SettlementOffer{}, err
	}
	log.Printf("[payment][usecase] gateway payment recorded offer_id=%s status=%s", paid.ID, paid.Status)
	return paid, nil
}

// charge sends the payment for offer to the gateway. It runs under the offer lock.
func (u *PaymentUseCase) charge(ctx context.Context, offer entities.SettlementOffer, mpPayload json.RawMessage) (entities.PaymentDetails, error) {
	if offer.Status != entities.OfferStatusPaymentProcessing {
		log.Printf("[payment][usecase] offer not payable offer_id=%s status=%s", offer.ID, offer.Status)
		return entities.PaymentDetails{}, ErrOfferNotPayable
	}
	amount, _ := offer.Amounts.FinalAmount.Float64()
	log.Printf("[payment][usecase] offer loaded offer_id=%s final_amount=%s version=%d", offer.ID, offer.Amounts.FinalAmount, offer.Version)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil && reqMap != nil {
		if !u.opts.Mock && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id offer_id=%s", offer.ID)
			return entities.PaymentDetails{}, ErrInvalidMPPayload
		}
		if !u.opts.Mock {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Printf("[payment][usecase] missing/invalid payer offer_id=%s", offer.ID)
				return entities.PaymentDetails{}, ErrInvalidMPPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = offer.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Settlement offer %s (claim %s)", offer.ID, offer.ClaimID)
		}
		// The offer's final amount is the only amount that may be paid.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else if !u.opts.Mock {
		log.Printf("[payment][usecase] payload is not an object offer_id=%s", offer.ID)
		return entities.PaymentDetails{}, ErrInvalidMPPayload
	}

	key := IdempotencyKey(offer)
	log.Printf("[payment][usecase] calling payment gateway offer_id=%s idempotency_key=%s", offer.ID, key)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, key, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed offer_id=%s err=%v", offer.ID, err)
		return entities.PaymentDetails{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success offer_id=%s provider_payment_id=%s provider_status=%s", offer.ID, providerPaymentID, providerStatus)

	return entities.PaymentDetails{
		PaymentMethod:        entities.PaymentMethodOther,
		TransactionReference: providerPaymentID,
		PaymentStatus:        MapProviderStatus(providerStatus),
		PaymentNotes:         "mercadopago status=" + providerStatus,
		ProviderPayloadRaw:   providerResp,
	}, nil
}

// IdempotencyKey identifies one charge attempt: a retry against the same
// offer version reuses the key, a new attempt after a failed payment does not.
func IdempotencyKey(offer entities.SettlementOffer) string {
	return fmt.Sprintf("settlement:%s:v%d", offer.ID, offer.Version)
}

// MapProviderStatus translates a Mercado Pago payment status into a payment status.
func MapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusCompleted
	case "in_process", "pending", "authorized", "in_mediation":
		return entities.PaymentStatusProcessing
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
