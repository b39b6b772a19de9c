package response

import (
	"encoding/json"
	"testing"
	"time"

	"claims_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOffer(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	counter := decimal.RequireFromString("70000")
	o := entities.SettlementOffer{
		ID:      "OFF-1",
		ClaimID: "CLM-1",
		Status:  entities.OfferStatusPresented,
		Amounts: entities.OfferAmounts{
			AssessedAmount:       decimal.NewFromInt(100000),
			Deductions:           decimal.NewFromInt(10000),
			ServiceFeePercentage: decimal.RequireFromString("2.5"),
			ServiceFee:           decimal.NewFromInt(2500),
			FinalAmount:          decimal.NewFromInt(87500),
		},
		Terms:     entities.OfferTerms{PaymentMethod: entities.PaymentMethodCheque, PaymentTimelineDays: 30, OfferValidityPeriodDays: 14},
		CreatedAt: now,
		Presentation: &entities.Presentation{
			PresentationSetup: entities.PresentationSetup{ContactMethod: entities.ContactMethodSMS, SubjectLine: "Offer"},
			DeliveryStatus:    entities.DeliveryStatusSent,
		},
		ClientResponse: &entities.ClientResponse{ResponseType: entities.ResponseCounterOffer, CounterOfferAmount: &counter},
		Version:        3,
	}

	res := FromOffer(o)
	if res.ID != "OFF-1" || res.ClaimID != "CLM-1" || res.Version != 3 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "PRESENTED" || res.StatusLabel != o.Status.Label() || res.Terminal {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.Amounts.FinalAmount != "87500.00" || res.Amounts.ServiceFee != "2500.00" || res.Amounts.ServiceFeePercentage != "2.5" {
		t.Fatalf("unexpected amounts: %+v", res.Amounts)
	}
	if res.Presentation == nil || res.Presentation.DeliveryStatus != "SENT" || res.Presentation.DeliveryStatusText != "Sent" {
		t.Fatalf("unexpected presentation: %+v", res.Presentation)
	}
	if res.ClientResponse == nil || res.ClientResponse.CounterOfferAmount != "70000.00" {
		t.Fatalf("unexpected client response: %+v", res.ClientResponse)
	}
	if res.Payment != nil {
		t.Fatalf("expected no payment, got %+v", res.Payment)
	}
	if res.Documents == nil {
		t.Fatalf("documents must serialize as an empty list")
	}
}

func TestFromOffer_Payment(t *testing.T) {
	raw := json.RawMessage(`{"id":123,"status":"approved"}`)
	o := entities.SettlementOffer{
		ID:     "OFF-2",
		Status: entities.OfferStatusPaid,
		Payment: &entities.PaymentRecord{
			PaymentDetails: entities.PaymentDetails{
				PaymentMethod:        entities.PaymentMethodOther,
				TransactionReference: "123",
				PaymentStatus:        entities.PaymentStatusCompleted,
				ProviderPayloadRaw:   raw,
			},
			ReceiptNumber: "RCP-1",
		},
	}

	res := FromOffer(o)
	if res.Payment == nil {
		t.Fatalf("expected payment")
	}
	if res.Payment.PaymentStatus != "COMPLETED" || res.Payment.PaymentStatusLabel != "Completed" || res.Payment.ReceiptNumber != "RCP-1" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if res.Payment.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.Payment.MPPayload)
	}
	if !res.Terminal {
		t.Fatalf("PAID must be terminal")
	}
}

func TestFromStatusTable(t *testing.T) {
	table := entities.OfferStatuses()
	res := FromStatusTable(table)
	if len(res) != len(table) {
		t.Fatalf("expected %d statuses, got %d", len(table), len(res))
	}
	for i, s := range res {
		if s.Status != string(table[i].Status) || s.Label == "" || s.Next == nil {
			t.Fatalf("unexpected status entry: %+v", s)
		}
	}
}
