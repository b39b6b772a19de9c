package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var allOfferStatuses = []OfferStatus{
	OfferStatusDraft,
	OfferStatusSubmitted,
	OfferStatusApproved,
	OfferStatusRejected,
	OfferStatusPresented,
	OfferStatusAccepted,
	OfferStatusRejectedByClient,
	OfferStatusExpired,
	OfferStatusPaymentProcessing,
	OfferStatusPaid,
	OfferStatusCancelled,
}

func TestOfferStatusTable_IsExhaustive(t *testing.T) {
	if len(OfferStatuses()) != len(allOfferStatuses) {
		t.Fatalf("status table has %d entries, expected %d", len(OfferStatuses()), len(allOfferStatuses))
	}
	for _, s := range allOfferStatuses {
		info, ok := s.Info()
		if !ok {
			t.Fatalf("status %s missing from table", s)
		}
		if info.Label == "" || info.Variant == "" {
			t.Fatalf("status %s has empty label or variant: %+v", s, info)
		}
		for _, next := range info.Next {
			if !next.IsValid() {
				t.Fatalf("status %s points at unknown status %s", s, next)
			}
		}
		if info.Terminal && len(info.Next) > 0 {
			t.Fatalf("terminal status %s must not have successors", s)
		}
		if !info.Terminal && !s.CanTransitionTo(OfferStatusCancelled) {
			t.Fatalf("non-terminal status %s must be cancellable", s)
		}
	}
}

func TestOfferStatus_Helpers(t *testing.T) {
	if !OfferStatusPaid.IsTerminal() || OfferStatusPresented.IsTerminal() {
		t.Fatalf("unexpected terminal flags")
	}
	if !OfferStatusRejectedByClient.IsTerminal() {
		t.Fatalf("client rejection has no successor and must be terminal")
	}
	if !OfferStatusDraft.CanTransitionTo(OfferStatusSubmitted) || OfferStatusDraft.CanTransitionTo(OfferStatusApproved) {
		t.Fatalf("unexpected draft transitions")
	}
	if OfferStatus("BOGUS").IsValid() {
		t.Fatalf("unknown status must be invalid")
	}
	if OfferStatus("BOGUS").Label() != "BOGUS" || OfferStatus("BOGUS").Variant() != BadgeOutline {
		t.Fatalf("unknown status fallback mismatch")
	}
	if OfferStatusSubmitted.Label() != "Pending Approval" {
		t.Fatalf("unexpected label %q", OfferStatusSubmitted.Label())
	}
	if !OfferStatusApproved.IsExpirable() || OfferStatusAccepted.IsExpirable() {
		t.Fatalf("unexpected expirable flags")
	}
}

func TestOfferStatuses_ReturnsCopy(t *testing.T) {
	list := OfferStatuses()
	list[0].Next[0] = OfferStatusPaid
	if OfferStatuses()[0].Next[0] != OfferStatusSubmitted {
		t.Fatalf("status table must not be mutable through OfferStatuses")
	}
}

func TestSettlementOffer_Clone(t *testing.T) {
	now := time.Now().UTC()
	amt := decimal.NewFromInt(500)
	o := SettlementOffer{
		ID:          "OFF-1",
		Status:      OfferStatusPresented,
		SubmittedAt: &now,
		Documents:   []string{"report.pdf"},
		Presentation: &Presentation{
			PresentationSetup: PresentationSetup{ContactMethod: ContactMethodEmail, SubjectLine: "Offer", ScheduledSendDate: &now},
			DeliveryStatus:    DeliveryStatusPending,
		},
		ClientResponse: &ClientResponse{ResponseType: ResponseCounterOffer, CounterOfferAmount: &amt},
		Payment: &PaymentRecord{
			PaymentDetails: PaymentDetails{ProviderPayloadRaw: json.RawMessage(`{"id":"1"}`)},
			ReceiptNumber:  "RCP-1",
		},
	}

	cp := o.Clone()
	cp.Documents[0] = "other.pdf"
	cp.Presentation.DeliveryStatus = DeliveryStatusSent
	*cp.SubmittedAt = now.Add(time.Hour)
	*cp.ClientResponse.CounterOfferAmount = decimal.NewFromInt(1)
	cp.Payment.ReceiptNumber = "RCP-2"
	cp.Payment.ProviderPayloadRaw[7] = '9'

	if o.Documents[0] != "report.pdf" || o.Presentation.DeliveryStatus != DeliveryStatusPending {
		t.Fatalf("clone aliased slices or presentation")
	}
	if !o.SubmittedAt.Equal(now) || !o.ClientResponse.CounterOfferAmount.Equal(amt) || o.Payment.ReceiptNumber != "RCP-1" {
		t.Fatalf("clone aliased pointers")
	}
	if string(o.Payment.ProviderPayloadRaw) != `{"id":"1"}` {
		t.Fatalf("clone aliased provider payload: %s", o.Payment.ProviderPayloadRaw)
	}
}

func TestDeliveryStatus_CanMoveTo(t *testing.T) {
	cases := []struct {
		from, to DeliveryStatus
		ok       bool
	}{
		{DeliveryStatusPending, DeliveryStatusSent, true},
		{DeliveryStatusPending, DeliveryStatusDelivered, false},
		{DeliveryStatusSent, DeliveryStatusDelivered, true},
		{DeliveryStatusSent, DeliveryStatusFailed, true},
		{DeliveryStatusFailed, DeliveryStatusPending, true},
		{DeliveryStatusDelivered, DeliveryStatusFailed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanMoveTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}
