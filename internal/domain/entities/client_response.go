package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResponseType is the client's answer to a presented offer.
type ResponseType string

const (
	ResponseAccepted     ResponseType = "ACCEPTED"
	ResponseRejected     ResponseType = "REJECTED"
	ResponseCounterOffer ResponseType = "COUNTER_OFFER"
)

func (t ResponseType) IsValid() bool {
	switch t {
	case ResponseAccepted, ResponseRejected, ResponseCounterOffer:
		return true
	}
	return false
}

// ClientResponse records how the client replied.
//
// CounterOfferAmount is set only for COUNTER_OFFER responses.
type ClientResponse struct {
	ResponseType       ResponseType     `json:"response_type"`
	ResponseDate       time.Time        `json:"response_date"`
	CounterOfferAmount *decimal.Decimal `json:"counter_offer_amount,omitempty"`
	Comments           string           `json:"comments,omitempty"`
	RecordedBy         string           `json:"recorded_by,omitempty"`
}
