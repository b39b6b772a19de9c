package entities

import "github.com/shopspring/decimal"

// ClaimStatus is the status of a claim as reported by the claims store.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusInReview ClaimStatus = "IN_REVIEW"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
	ClaimStatusSettled  ClaimStatus = "SETTLED"
)

// ClaimSnapshot is the read-only view of an external claim used to open an offer.
//
// The claims store owns the record; this service never writes it.
type ClaimSnapshot struct {
	ClaimID        string          `json:"claim_id"`
	AssessedAmount decimal.Decimal `json:"assessed_amount"`
	ClaimType      string          `json:"claim_type"`
	ClientName     string          `json:"client_name"`
	Status         ClaimStatus     `json:"status"`

	// HasActiveOffer is filled by the caller from the offer store.
	HasActiveOffer bool `json:"-"`
}
