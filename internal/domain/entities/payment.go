package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the outcome reported by the payment channel.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusProcessing:
		return "Processing"
	case PaymentStatusCompleted:
		return "Completed"
	case PaymentStatusFailed:
		return "Failed"
	}
	return string(s)
}

// PaymentDetails is what the payment channel supplies when a payout is made.
//
// Bank fields are required if and only if PaymentMethod is BANK_TRANSFER.
type PaymentDetails struct {
	PaymentMethod        PaymentMethod `json:"payment_method"`
	TransactionReference string        `json:"transaction_reference"`
	BankName             string        `json:"bank_name,omitempty"`
	AccountNumber        string        `json:"account_number,omitempty"`
	AccountName          string        `json:"account_name,omitempty"`
	PaymentStatus        PaymentStatus `json:"payment_status"`
	PaymentNotes         string        `json:"payment_notes,omitempty"`

	// ProviderPayloadRaw keeps the gateway response body for traceability.
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// PaymentRecord is the payment stored on an offer.
type PaymentRecord struct {
	PaymentDetails
	ProcessedBy   string    `json:"processed_by"`
	ProcessedAt   time.Time `json:"processed_at"`
	ReceiptNumber string    `json:"receipt_number"`
}
