package settlement

import (
	"fmt"

	"claims_settlement/internal/domain/entities"
)

// statuses reached only after a presentation was set up
var presentedStatuses = []entities.OfferStatus{
	entities.OfferStatusPresented,
	entities.OfferStatusAccepted,
	entities.OfferStatusRejectedByClient,
	entities.OfferStatusPaymentProcessing,
	entities.OfferStatusPaid,
}

// statuses that can never carry a presentation, response or payment
var preApprovalStatuses = []entities.OfferStatus{
	entities.OfferStatusDraft,
	entities.OfferStatusSubmitted,
	entities.OfferStatusApproved,
	entities.OfferStatusRejected,
}

// CheckInvariants verifies that a stored snapshot is one the engine could have produced.
func CheckInvariants(o entities.SettlementOffer) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: offer %s: %s", ErrCorruptOffer, o.ID, fmt.Sprintf(format, args...))
	}

	if !o.Status.IsValid() {
		return fail("unknown status %q", o.Status)
	}
	derived := Recompute(o.Amounts)
	if !derived.ServiceFee.Equal(o.Amounts.ServiceFee) || !derived.FinalAmount.Equal(o.Amounts.FinalAmount) {
		return fail("derived amounts do not match inputs")
	}
	if o.Amounts.FinalAmount.IsNegative() {
		return fail("negative final amount")
	}

	is := func(set []entities.OfferStatus) bool {
		for _, s := range set {
			if s == o.Status {
				return true
			}
		}
		return false
	}

	if is(preApprovalStatuses) && (o.Presentation != nil || o.ClientResponse != nil || o.Payment != nil) {
		return fail("status %s cannot carry presentation, response or payment", o.Status)
	}
	if is(presentedStatuses) {
		if o.Presentation == nil {
			return fail("status %s requires a presentation", o.Status)
		}
		if o.ApprovedAt == nil {
			return fail("status %s requires approval time", o.Status)
		}
	}
	if o.Status == entities.OfferStatusApproved && o.ApprovedAt == nil {
		return fail("approved offer without approval time")
	}

	switch o.Status {
	case entities.OfferStatusAccepted, entities.OfferStatusPaymentProcessing, entities.OfferStatusPaid:
		if o.ClientResponse == nil || o.ClientResponse.ResponseType != entities.ResponseAccepted {
			return fail("status %s requires an accepted client response", o.Status)
		}
	case entities.OfferStatusRejectedByClient:
		if o.ClientResponse == nil || o.ClientResponse.ResponseType != entities.ResponseRejected {
			return fail("status %s requires a rejected client response", o.Status)
		}
	}

	if o.Payment != nil {
		switch o.Status {
		case entities.OfferStatusPaymentProcessing, entities.OfferStatusPaid, entities.OfferStatusCancelled:
		default:
			return fail("status %s cannot carry a payment", o.Status)
		}
	}
	if o.Status == entities.OfferStatusPaid && (o.Payment == nil || o.Payment.PaymentStatus != entities.PaymentStatusCompleted) {
		return fail("paid offer requires a completed payment")
	}
	return nil
}
