package request

import (
	"strings"
	"time"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/domain/settlement"

	"github.com/shopspring/decimal"
)

// Money fields accept a JSON number or a decimal string ("2500.50").

type CreateOfferRequest struct {
	ClaimID                 string          `json:"claim_id" binding:"required"`
	Deductions              decimal.Decimal `json:"deductions"`
	ServiceFeePercentage    decimal.Decimal `json:"service_fee_percentage"`
	PaymentMethod           string          `json:"payment_method"`
	PaymentTimelineDays     int             `json:"payment_timeline_days"`
	OfferValidityPeriodDays int             `json:"offer_validity_period_days"`
	SpecialConditions       string          `json:"special_conditions"`
}

func (r CreateOfferRequest) ToInput(actor string) (string, settlement.CreateInput) {
	return strings.TrimSpace(r.ClaimID), settlement.CreateInput{
		Deductions:           r.Deductions,
		ServiceFeePercentage: r.ServiceFeePercentage,
		Terms: entities.OfferTerms{
			PaymentMethod:           entities.PaymentMethod(r.PaymentMethod),
			PaymentTimelineDays:     r.PaymentTimelineDays,
			OfferValidityPeriodDays: r.OfferValidityPeriodDays,
			SpecialConditions:       r.SpecialConditions,
		},
		CreatedBy: actor,
	}
}

type RecalculateRequest struct {
	AssessedAmount       decimal.Decimal `json:"assessed_amount"`
	Deductions           decimal.Decimal `json:"deductions"`
	ServiceFeePercentage decimal.Decimal `json:"service_fee_percentage"`
}

func (r RecalculateRequest) ToInput() settlement.AmountInput {
	return settlement.AmountInput{
		AssessedAmount:       r.AssessedAmount,
		Deductions:           r.Deductions,
		ServiceFeePercentage: r.ServiceFeePercentage,
	}
}

type TermsRequest struct {
	PaymentMethod           string `json:"payment_method"`
	PaymentTimelineDays     int    `json:"payment_timeline_days"`
	OfferValidityPeriodDays int    `json:"offer_validity_period_days"`
	SpecialConditions       string `json:"special_conditions"`
}

func (r TermsRequest) ToTerms() entities.OfferTerms {
	return entities.OfferTerms{
		PaymentMethod:           entities.PaymentMethod(r.PaymentMethod),
		PaymentTimelineDays:     r.PaymentTimelineDays,
		OfferValidityPeriodDays: r.OfferValidityPeriodDays,
		SpecialConditions:       r.SpecialConditions,
	}
}

type ApproveRequest struct {
	Notes string `json:"notes"`
}

// ReasonRequest is the body of reject and cancel.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

type PresentationRequest struct {
	ContactMethod     string                   `json:"contact_method"`
	Documents         entities.DocumentPackage `json:"documents"`
	CustomMessage     string                   `json:"custom_message"`
	SubjectLine       string                   `json:"subject_line"`
	ScheduledSendDate *time.Time               `json:"scheduled_send_date"`
}

func (r PresentationRequest) ToSetup() entities.PresentationSetup {
	return entities.PresentationSetup{
		ContactMethod:     entities.ContactMethod(r.ContactMethod),
		Documents:         r.Documents,
		CustomMessage:     r.CustomMessage,
		SubjectLine:       r.SubjectLine,
		ScheduledSendDate: r.ScheduledSendDate,
	}
}

type DeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" binding:"required"`
}

type ClientResponseRequest struct {
	ResponseType       string           `json:"response_type"`
	ResponseDate       *time.Time       `json:"response_date"`
	CounterOfferAmount *decimal.Decimal `json:"counter_offer_amount"`
	Comments           string           `json:"comments"`
}

func (r ClientResponseRequest) ToResponse(actor string) entities.ClientResponse {
	resp := entities.ClientResponse{
		ResponseType:       entities.ResponseType(strings.ToUpper(strings.TrimSpace(r.ResponseType))),
		CounterOfferAmount: r.CounterOfferAmount,
		Comments:           r.Comments,
		RecordedBy:         actor,
	}
	if r.ResponseDate != nil {
		resp.ResponseDate = r.ResponseDate.UTC()
	}
	return resp
}

type DocumentRequest struct {
	Document string `json:"document" binding:"required"`
}
