package entities

// OfferStatus represents the lifecycle of a settlement offer.
//
//	DRAFT -> SUBMITTED -> APPROVED -> PRESENTED -> ACCEPTED -> PAYMENT_PROCESSING -> PAID
//	                  \-> REJECTED              \-> REJECTED_BY_CLIENT
//	                                  APPROVED/PRESENTED -> EXPIRED
//	any non-terminal -> CANCELLED
type OfferStatus string

const (
	OfferStatusDraft             OfferStatus = "DRAFT"
	OfferStatusSubmitted         OfferStatus = "SUBMITTED"
	OfferStatusApproved          OfferStatus = "APPROVED"
	OfferStatusRejected          OfferStatus = "REJECTED"
	OfferStatusPresented         OfferStatus = "PRESENTED"
	OfferStatusAccepted          OfferStatus = "ACCEPTED"
	OfferStatusRejectedByClient  OfferStatus = "REJECTED_BY_CLIENT"
	OfferStatusExpired           OfferStatus = "EXPIRED"
	OfferStatusPaymentProcessing OfferStatus = "PAYMENT_PROCESSING"
	OfferStatusPaid              OfferStatus = "PAID"
	OfferStatusCancelled         OfferStatus = "CANCELLED"
)

// BadgeVariant is the dashboard badge style used for a status.
type BadgeVariant string

const (
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeWarning     BadgeVariant = "warning"
	BadgeInfo        BadgeVariant = "info"
	BadgePrimary     BadgeVariant = "primary"
	BadgeSuccess     BadgeVariant = "success"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

// StatusInfo describes one OfferStatus: how it is shown and where it may go next.
type StatusInfo struct {
	Status   OfferStatus   `json:"status"`
	Label    string        `json:"label"`
	Variant  BadgeVariant  `json:"variant"`
	Terminal bool          `json:"terminal"`
	Next     []OfferStatus `json:"next"`
}

// offerStatusTable is the single source for labels, badges and the transition graph.
// Order is the lifecycle order used when listing statuses.
var offerStatusTable = []StatusInfo{
	{Status: OfferStatusDraft, Label: "Draft", Variant: BadgeSecondary,
		Next: []OfferStatus{OfferStatusSubmitted, OfferStatusCancelled}},
	{Status: OfferStatusSubmitted, Label: "Pending Approval", Variant: BadgeWarning,
		Next: []OfferStatus{OfferStatusApproved, OfferStatusRejected, OfferStatusCancelled}},
	{Status: OfferStatusApproved, Label: "Approved", Variant: BadgeInfo,
		Next: []OfferStatus{OfferStatusPresented, OfferStatusExpired, OfferStatusCancelled}},
	{Status: OfferStatusPresented, Label: "Presented to Client", Variant: BadgePrimary,
		Next: []OfferStatus{OfferStatusAccepted, OfferStatusRejectedByClient, OfferStatusExpired, OfferStatusCancelled}},
	{Status: OfferStatusAccepted, Label: "Accepted", Variant: BadgeSuccess,
		Next: []OfferStatus{OfferStatusPaymentProcessing, OfferStatusCancelled}},
	{Status: OfferStatusPaymentProcessing, Label: "Payment Processing", Variant: BadgeWarning,
		Next: []OfferStatus{OfferStatusPaid, OfferStatusCancelled}},
	{Status: OfferStatusPaid, Label: "Paid", Variant: BadgeSuccess, Terminal: true},
	{Status: OfferStatusRejected, Label: "Rejected", Variant: BadgeDestructive, Terminal: true},
	{Status: OfferStatusRejectedByClient, Label: "Rejected by Client", Variant: BadgeDestructive, Terminal: true},
	{Status: OfferStatusExpired, Label: "Expired", Variant: BadgeOutline, Terminal: true},
	{Status: OfferStatusCancelled, Label: "Cancelled", Variant: BadgeOutline, Terminal: true},
}

var offerStatusIndex = func() map[OfferStatus]StatusInfo {
	idx := make(map[OfferStatus]StatusInfo, len(offerStatusTable))
	for _, info := range offerStatusTable {
		idx[info.Status] = info
	}
	return idx
}()

// OfferStatuses returns every status with its display and transition data.
func OfferStatuses() []StatusInfo {
	out := make([]StatusInfo, len(offerStatusTable))
	for i, info := range offerStatusTable {
		info.Next = append([]OfferStatus(nil), info.Next...)
		out[i] = info
	}
	return out
}

func (s OfferStatus) Info() (StatusInfo, bool) {
	info, ok := offerStatusIndex[s]
	return info, ok
}

func (s OfferStatus) IsValid() bool {
	_, ok := offerStatusIndex[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s OfferStatus) IsTerminal() bool {
	return offerStatusIndex[s].Terminal
}

func (s OfferStatus) Label() string {
	if info, ok := offerStatusIndex[s]; ok {
		return info.Label
	}
	return string(s)
}

func (s OfferStatus) Variant() BadgeVariant {
	if info, ok := offerStatusIndex[s]; ok {
		return info.Variant
	}
	return BadgeOutline
}

// CanTransitionTo reports whether next is a direct successor of s in the lifecycle graph.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	for _, n := range offerStatusIndex[s].Next {
		if n == next {
			return true
		}
	}
	return false
}

// IsExpirable reports whether offers in this status are subject to expiresAt.
func (s OfferStatus) IsExpirable() bool {
	return s == OfferStatusApproved || s == OfferStatusPresented
}
