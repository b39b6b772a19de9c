package settlement

import (
	"time"

	"claims_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AmountInput holds the monetary inputs an offer is derived from.
type AmountInput struct {
	AssessedAmount       decimal.Decimal `json:"assessed_amount" validate:"dec_gte0"`
	Deductions           decimal.Decimal `json:"deductions" validate:"dec_gte0"`
	ServiceFeePercentage decimal.Decimal `json:"service_fee_percentage" validate:"dec_gte0"`
}

// Calculate derives the service fee and final amount.
//
//	serviceFee  = assessedAmount * serviceFeePercentage / 100
//	finalAmount = max(0, assessedAmount - deductions - serviceFee)
//
// No rounding is applied; deductions are not capped.
func Calculate(in AmountInput) entities.OfferAmounts {
	fee := in.AssessedAmount.Mul(in.ServiceFeePercentage).Shift(-2)
	final := in.AssessedAmount.Sub(in.Deductions).Sub(fee)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return entities.OfferAmounts{
		AssessedAmount:       in.AssessedAmount,
		Deductions:           in.Deductions,
		ServiceFeePercentage: in.ServiceFeePercentage,
		ServiceFee:           fee,
		FinalAmount:          final,
	}
}

// Recompute re-derives amounts from the inputs already stored on a.
func Recompute(a entities.OfferAmounts) entities.OfferAmounts {
	return Calculate(inputsOf(a))
}

func inputsOf(a entities.OfferAmounts) AmountInput {
	return AmountInput{
		AssessedAmount:       a.AssessedAmount,
		Deductions:           a.Deductions,
		ServiceFeePercentage: a.ServiceFeePercentage,
	}
}

// ExpiresAt is approvedAt (or createdAt before approval) plus the validity period.
func ExpiresAt(o entities.SettlementOffer) time.Time {
	base := o.CreatedAt
	if o.ApprovedAt != nil {
		base = *o.ApprovedAt
	}
	return base.AddDate(0, 0, o.Terms.OfferValidityPeriodDays)
}
