package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the final amount is paid out to the client.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodOther:
		return true
	}
	return false
}

// OfferTerms are the payout terms proposed to the client.
type OfferTerms struct {
	PaymentMethod           PaymentMethod `json:"payment_method"`
	PaymentTimelineDays     int           `json:"payment_timeline_days"`
	OfferValidityPeriodDays int           `json:"offer_validity_period_days"`
	SpecialConditions       string        `json:"special_conditions,omitempty"`
}

// OfferAmounts holds the three monetary inputs and the two values derived from them.
//
// ServiceFee and FinalAmount are only ever written by the settlement calculator.
type OfferAmounts struct {
	AssessedAmount       decimal.Decimal `json:"assessed_amount"`
	Deductions           decimal.Decimal `json:"deductions"`
	ServiceFeePercentage decimal.Decimal `json:"service_fee_percentage"`
	ServiceFee           decimal.Decimal `json:"service_fee"`
	FinalAmount          decimal.Decimal `json:"final_amount"`
}

// SettlementOffer is the offer made to a client to settle one approved claim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//   - GSI2 (claim_id-index): claim_id
//
// Optional sections follow the lifecycle: Presentation exists once the offer was
// presented, ClientResponse once the client replied, Payment once payment processing began.
type SettlementOffer struct {
	ID         string `json:"id"`
	ClaimID    string `json:"claim_id"`
	ClaimType  string `json:"claim_type,omitempty"`
	ClientName string `json:"client_name,omitempty"`

	Amounts OfferAmounts `json:"amounts"`
	Terms   OfferTerms   `json:"terms"`

	Status    OfferStatus `json:"status"`
	CreatedBy string      `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	ExpiresAt time.Time   `json:"expires_at"`

	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovalNotes string     `json:"approval_notes,omitempty"`

	RejectionReason    string `json:"rejection_reason,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	Documents      []string        `json:"documents,omitempty"`
	Presentation   *Presentation   `json:"presentation,omitempty"`
	ClientResponse *ClientResponse `json:"client_response,omitempty"`
	Payment        *PaymentRecord  `json:"payment,omitempty"`

	Version int64 `json:"version"`
}

// Clone returns a deep copy so transitions never alias the caller's snapshot.
func (o SettlementOffer) Clone() SettlementOffer {
	cp := o
	cp.SubmittedAt = cloneTime(o.SubmittedAt)
	cp.ApprovedAt = cloneTime(o.ApprovedAt)
	if o.Documents != nil {
		cp.Documents = append([]string(nil), o.Documents...)
	}
	if o.Presentation != nil {
		p := *o.Presentation
		p.ScheduledSendDate = cloneTime(o.Presentation.ScheduledSendDate)
		cp.Presentation = &p
	}
	if o.ClientResponse != nil {
		r := *o.ClientResponse
		if o.ClientResponse.CounterOfferAmount != nil {
			amt := *o.ClientResponse.CounterOfferAmount
			r.CounterOfferAmount = &amt
		}
		cp.ClientResponse = &r
	}
	if o.Payment != nil {
		pay := *o.Payment
		if o.Payment.ProviderPayloadRaw != nil {
			pay.ProviderPayloadRaw = append(json.RawMessage(nil), o.Payment.ProviderPayloadRaw...)
		}
		cp.Payment = &pay
	}
	return cp
}

// IsActive reports whether the offer still blocks a new offer on the same claim.
func (o SettlementOffer) IsActive() bool {
	return o.ID != "" && !o.Status.IsTerminal()
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
