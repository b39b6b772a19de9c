package request

import "claims_settlement/internal/domain/entities"

// PaymentRequest records a payout made outside the gateway.
type PaymentRequest struct {
	PaymentMethod        string `json:"payment_method"`
	TransactionReference string `json:"transaction_reference"`
	BankName             string `json:"bank_name"`
	AccountNumber        string `json:"account_number"`
	AccountName          string `json:"account_name"`
	PaymentStatus        string `json:"payment_status"`
	PaymentNotes         string `json:"payment_notes"`
}

func (r PaymentRequest) ToDetails() entities.PaymentDetails {
	return entities.PaymentDetails{
		PaymentMethod:        entities.PaymentMethod(r.PaymentMethod),
		TransactionReference: r.TransactionReference,
		BankName:             r.BankName,
		AccountNumber:        r.AccountNumber,
		AccountName:          r.AccountName,
		PaymentStatus:        entities.PaymentStatus(r.PaymentStatus),
		PaymentNotes:         r.PaymentNotes,
	}
}

// GatewayPaymentRequest is the body of the gateway route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type GatewayPaymentRequest struct {
	MPPayload map[string]interface{} `json:"mp_payload"`
}
