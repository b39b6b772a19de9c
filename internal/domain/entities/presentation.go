package entities

import "time"

// ContactMethod is the channel used to deliver an offer to the client.
type ContactMethod string

const (
	ContactMethodEmail            ContactMethod = "EMAIL"
	ContactMethodSMS              ContactMethod = "SMS"
	ContactMethodPhoneCall        ContactMethod = "PHONE_CALL"
	ContactMethodPhysicalDelivery ContactMethod = "PHYSICAL_DELIVERY"
)

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodEmail, ContactMethodSMS, ContactMethodPhoneCall, ContactMethodPhysicalDelivery:
		return true
	}
	return false
}

// DeliveryStatus is reported back by the delivery channel.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusSent      DeliveryStatus = "SENT"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusSent, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	}
	return false
}

// CanMoveTo reports whether the delivery channel may report next after s.
// FAILED may go back to PENDING when delivery is retried.
func (s DeliveryStatus) CanMoveTo(next DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return next == DeliveryStatusSent || next == DeliveryStatusFailed
	case DeliveryStatusSent:
		return next == DeliveryStatusDelivered || next == DeliveryStatusFailed
	case DeliveryStatusFailed:
		return next == DeliveryStatusPending
	}
	return false
}

func (s DeliveryStatus) Label() string {
	switch s {
	case DeliveryStatusPending:
		return "Pending"
	case DeliveryStatusSent:
		return "Sent"
	case DeliveryStatusDelivered:
		return "Delivered"
	case DeliveryStatusFailed:
		return "Failed"
	}
	return string(s)
}

// DocumentPackage selects which documents travel with the offer.
type DocumentPackage struct {
	OfferLetter        bool `json:"offer_letter"`
	AssessmentReport   bool `json:"assessment_report"`
	TermsAndConditions bool `json:"terms_and_conditions"`
	PaymentSchedule    bool `json:"payment_schedule"`
}

// PresentationSetup is the input to present an approved offer.
type PresentationSetup struct {
	ContactMethod     ContactMethod   `json:"contact_method"`
	Documents         DocumentPackage `json:"documents"`
	CustomMessage     string          `json:"custom_message,omitempty"`
	SubjectLine       string          `json:"subject_line"`
	ScheduledSendDate *time.Time      `json:"scheduled_send_date,omitempty"`
}

// Presentation is the stored presentation record of an offer.
type Presentation struct {
	PresentationSetup
	DeliveryStatus    DeliveryStatus `json:"delivery_status"`
	PresentedBy       string         `json:"presented_by"`
	PresentedAt       time.Time      `json:"presented_at"`
	DeliveryUpdatedAt time.Time      `json:"delivery_updated_at"`
}
