package response

import (
	"encoding/json"
	"time"

	"claims_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AmountsResponse struct {
	AssessedAmount       string `json:"assessed_amount"`
	Deductions           string `json:"deductions"`
	ServiceFeePercentage string `json:"service_fee_percentage"`
	ServiceFee           string `json:"service_fee"`
	FinalAmount          string `json:"final_amount"`
}

type TermsResponse struct {
	PaymentMethod           string `json:"payment_method"`
	PaymentTimelineDays     int    `json:"payment_timeline_days"`
	OfferValidityPeriodDays int    `json:"offer_validity_period_days"`
	SpecialConditions       string `json:"special_conditions,omitempty"`
}

type PresentationResponse struct {
	ContactMethod      string                   `json:"contact_method"`
	Documents          entities.DocumentPackage `json:"documents"`
	CustomMessage      string                   `json:"custom_message,omitempty"`
	SubjectLine        string                   `json:"subject_line"`
	ScheduledSendDate  *time.Time               `json:"scheduled_send_date,omitempty"`
	DeliveryStatus     string                   `json:"delivery_status"`
	DeliveryStatusText string                   `json:"delivery_status_label"`
	PresentedBy        string                   `json:"presented_by"`
	PresentedAt        time.Time                `json:"presented_at"`
	DeliveryUpdatedAt  time.Time                `json:"delivery_updated_at"`
}

type ClientResponseResponse struct {
	ResponseType       string    `json:"response_type"`
	ResponseDate       time.Time `json:"response_date"`
	CounterOfferAmount string    `json:"counter_offer_amount,omitempty"`
	Comments           string    `json:"comments,omitempty"`
	RecordedBy         string    `json:"recorded_by,omitempty"`
}

type PaymentResponse struct {
	PaymentMethod        string    `json:"payment_method"`
	TransactionReference string    `json:"transaction_reference"`
	BankName             string    `json:"bank_name,omitempty"`
	AccountNumber        string    `json:"account_number,omitempty"`
	AccountName          string    `json:"account_name,omitempty"`
	PaymentStatus        string    `json:"payment_status"`
	PaymentStatusLabel   string    `json:"payment_status_label"`
	PaymentNotes         string    `json:"payment_notes,omitempty"`
	ProcessedBy          string    `json:"processed_by"`
	ProcessedAt          time.Time `json:"processed_at"`
	ReceiptNumber        string    `json:"receipt_number,omitempty"`

	MPPayload map[string]interface{} `json:"mp_payload,omitempty"`
}

// OfferResponse is the public view of a settlement offer. Money is rendered
// as fixed two-decimal strings.
type OfferResponse struct {
	ID          string `json:"id"`
	ClaimID     string `json:"claim_id"`
	ClaimType   string `json:"claim_type,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Variant     string `json:"status_variant"`
	Terminal    bool   `json:"terminal"`

	Amounts AmountsResponse `json:"amounts"`
	Terms   TermsResponse   `json:"terms"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`

	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	ApprovedBy         string     `json:"approved_by,omitempty"`
	ApprovalNotes      string     `json:"approval_notes,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	Documents      []string                `json:"documents"`
	Presentation   *PresentationResponse   `json:"presentation,omitempty"`
	ClientResponse *ClientResponseResponse `json:"client_response,omitempty"`
	Payment        *PaymentResponse        `json:"payment,omitempty"`

	Version int64 `json:"version"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FromOffer(o entities.SettlementOffer) OfferResponse {
	res := OfferResponse{
		ID:          o.ID,
		ClaimID:     o.ClaimID,
		ClaimType:   o.ClaimType,
		ClientName:  o.ClientName,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Variant:     string(o.Status.Variant()),
		Terminal:    o.Status.IsTerminal(),
		Amounts: AmountsResponse{
			AssessedAmount:       money(o.Amounts.AssessedAmount),
			Deductions:           money(o.Amounts.Deductions),
			ServiceFeePercentage: o.Amounts.ServiceFeePercentage.String(),
			ServiceFee:           money(o.Amounts.ServiceFee),
			FinalAmount:          money(o.Amounts.FinalAmount),
		},
		Terms: TermsResponse{
			PaymentMethod:           string(o.Terms.PaymentMethod),
			PaymentTimelineDays:     o.Terms.PaymentTimelineDays,
			OfferValidityPeriodDays: o.Terms.OfferValidityPeriodDays,
			SpecialConditions:       o.Terms.SpecialConditions,
		},
		CreatedBy:          o.CreatedBy,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		ExpiresAt:          o.ExpiresAt,
		SubmittedAt:        o.SubmittedAt,
		ApprovedAt:         o.ApprovedAt,
		ApprovedBy:         o.ApprovedBy,
		ApprovalNotes:      o.ApprovalNotes,
		RejectionReason:    o.RejectionReason,
		CancellationReason: o.CancellationReason,
		Documents:          append([]string{}, o.Documents...),
		Version:            o.Version,
	}

	if p := o.Presentation; p != nil {
		res.Presentation = &PresentationResponse{
			ContactMethod:      string(p.ContactMethod),
			Documents:          p.Documents,
			CustomMessage:      p.CustomMessage,
			SubjectLine:        p.SubjectLine,
			ScheduledSendDate:  p.ScheduledSendDate,
			DeliveryStatus:     string(p.DeliveryStatus),
			DeliveryStatusText: p.DeliveryStatus.Label(),
			PresentedBy:        p.PresentedBy,
			PresentedAt:        p.PresentedAt,
			DeliveryUpdatedAt:  p.DeliveryUpdatedAt,
		}
	}

	if r := o.ClientResponse; r != nil {
		cr := &ClientResponseResponse{
			ResponseType: string(r.ResponseType),
			ResponseDate: r.ResponseDate,
			Comments:     r.Comments,
			RecordedBy:   r.RecordedBy,
		}
		if r.CounterOfferAmount != nil {
			cr.CounterOfferAmount = money(*r.CounterOfferAmount)
		}
		res.ClientResponse = cr
	}

	if p := o.Payment; p != nil {
		pr := &PaymentResponse{
			PaymentMethod:        string(p.PaymentMethod),
			TransactionReference: p.TransactionReference,
			BankName:             p.BankName,
			AccountNumber:        p.AccountNumber,
			AccountName:          p.AccountName,
			PaymentStatus:        string(p.PaymentStatus),
			PaymentStatusLabel:   p.PaymentStatus.Label(),
			PaymentNotes:         p.PaymentNotes,
			ProcessedBy:          p.ProcessedBy,
			ProcessedAt:          p.ProcessedAt,
			ReceiptNumber:        p.ReceiptNumber,
		}
		if len(p.ProviderPayloadRaw) > 0 {
			var parsed map[string]interface{}
			if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
				pr.MPPayload = parsed
			}
		}
		res.Payment = pr
	}

	return res
}

func FromOffers(offers []entities.SettlementOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}

// ExpireDueResponse reports the offers closed by one expiry sweep.
type ExpireDueResponse struct {
	Expired int             `json:"expired"`
	Offers  []OfferResponse `json:"offers"`
}

type StatusResponse struct {
	Status   string   `json:"status"`
	Label    string   `json:"label"`
	Variant  string   `json:"variant"`
	Terminal bool     `json:"terminal"`
	Next     []string `json:"next"`
}

func FromStatusTable(table []entities.StatusInfo) []StatusResponse {
	out := make([]StatusResponse, 0, len(table))
	for _, info := range table {
		next := make([]string, 0, len(info.Next))
		for _, s := range info.Next {
			next = append(next, string(s))
		}
		out = append(out, StatusResponse{
			Status:   string(info.Status),
			Label:    info.Label,
			Variant:  string(info.Variant),
			Terminal: info.Terminal,
			Next:     next,
		})
	}
	return out
}
