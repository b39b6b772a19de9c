// Package settlement holds the settlement offer rules: amount derivation,
// the lifecycle state machine and the validation gating each transition.
//
// Every operation takes the current offer snapshot and returns the next one.
// The input is never modified; on error the input is returned as-is together
// with one of ErrValidation, ErrInvalidState, ErrInvalidClaim or ErrOfferExpired.
package settlement

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"claims_settlement/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	offerIDPrefix   = "OFF"
	receiptIDPrefix = "RCP"
)

// CreateInput carries the creator's choices for a new offer.
type CreateInput struct {
	Deductions           decimal.Decimal
	ServiceFeePercentage decimal.Decimal
	Terms                entities.OfferTerms
	CreatedBy            string
}

// ApproveInput is the approver's decision data.
type ApproveInput struct {
	ApprovedBy string
	Notes      string
}

// Engine applies lifecycle transitions. It holds no offer state.
type Engine struct {
	now   func() time.Time
	newID func(prefix string, at time.Time) string
}

type Option func(*Engine)

// WithClock overrides the time source used for timestamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides offer id and receipt number generation.
func WithIDGenerator(fn func(prefix string, at time.Time) string) Option {
	return func(e *Engine) { e.newID = fn }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   func() time.Time { return time.Now().UTC() },
		newID: DisplayID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DisplayID builds identifiers like OFF-20261019-9F86D081.
func DisplayID(prefix string, at time.Time) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), strings.ToUpper(raw[:8]))
}

// Now exposes the engine clock so callers can evaluate expiry consistently.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Create opens a DRAFT offer for an approved claim that has no active offer.
func (e *Engine) Create(claim entities.ClaimSnapshot, in CreateInput) (entities.SettlementOffer, error) {
	if claim.Status != entities.ClaimStatusApproved {
		return entities.SettlementOffer{}, fmt.Errorf("%w: claim %s is %s, not APPROVED", ErrInvalidClaim, claim.ClaimID, claim.Status)
	}
	if claim.HasActiveOffer {
		return entities.SettlementOffer{}, fmt.Errorf("%w: claim %s already has an active offer", ErrInvalidClaim, claim.ClaimID)
	}

	in.CreatedBy = strings.TrimSpace(in.CreatedBy)
	in.Terms.SpecialConditions = strings.TrimSpace(in.Terms.SpecialConditions)
	if errs := validateStruct(createRules{
		ClaimID:                 strings.TrimSpace(claim.ClaimID),
		CreatedBy:               in.CreatedBy,
		AssessedAmount:          claim.AssessedAmount,
		Deductions:              in.Deductions,
		ServiceFeePercentage:    in.ServiceFeePercentage,
		PaymentMethod:           string(in.Terms.PaymentMethod),
		PaymentTimelineDays:     in.Terms.PaymentTimelineDays,
		OfferValidityPeriodDays: in.Terms.OfferValidityPeriodDays,
		SpecialConditions:       in.Terms.SpecialConditions,
	}); len(errs) > 0 {
		return entities.SettlementOffer{}, newValidationError(errs...)
	}

	now := e.now()
	o := entities.SettlementOffer{
		ID:         e.newID(offerIDPrefix, now),
		ClaimID:    strings.TrimSpace(claim.ClaimID),
		ClaimType:  claim.ClaimType,
		ClientName: claim.ClientName,
		Amounts: Calculate(AmountInput{
			AssessedAmount:       claim.AssessedAmount,
			Deductions:           in.Deductions,
			ServiceFeePercentage: in.ServiceFeePercentage,
		}),
		Terms:     in.Terms,
		Status:    entities.OfferStatusDraft,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.ExpiresAt = ExpiresAt(o)
	return o, nil
}

// Recalculate replaces the amount inputs of a DRAFT offer and re-derives its totals.
func (e *Engine) Recalculate(o entities.SettlementOffer, in AmountInput) (entities.SettlementOffer, error) {
	if err := e.guard(o, "recalculate", entities.OfferStatusDraft); err != nil {
		return o, err
	}
	if errs := validateStruct(in); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	next := o.Clone()
	next.Amounts = Calculate(in)
	next.UpdatedAt = e.now()
	return next, nil
}

// ReviseTerms replaces the payout terms of a DRAFT offer.
func (e *Engine) ReviseTerms(o entities.SettlementOffer, terms entities.OfferTerms) (entities.SettlementOffer, error) {
	if err := e.guard(o, "revise terms of", entities.OfferStatusDraft); err != nil {
		return o, err
	}
	terms.SpecialConditions = strings.TrimSpace(terms.SpecialConditions)
	if errs := validateStruct(termsRules{
		PaymentMethod:           string(terms.PaymentMethod),
		PaymentTimelineDays:     terms.PaymentTimelineDays,
		OfferValidityPeriodDays: terms.OfferValidityPeriodDays,
		SpecialConditions:       terms.SpecialConditions,
	}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	next := o.Clone()
	next.Terms = terms
	next.Amounts = Recompute(next.Amounts)
	next.ExpiresAt = ExpiresAt(next)
	next.UpdatedAt = e.now()
	return next, nil
}

// Submit sends a complete DRAFT offer for approval.
func (e *Engine) Submit(o entities.SettlementOffer) (entities.SettlementOffer, error) {
	if err := e.guard(o, "submit", entities.OfferStatusDraft); err != nil {
		return o, err
	}
	amounts := Recompute(o.Amounts)
	if errs := validateStruct(submitRules{
		ClaimID:                 o.ClaimID,
		AssessedAmount:          amounts.AssessedAmount,
		FinalAmount:             amounts.FinalAmount,
		PaymentMethod:           string(o.Terms.PaymentMethod),
		PaymentTimelineDays:     o.Terms.PaymentTimelineDays,
		OfferValidityPeriodDays: o.Terms.OfferValidityPeriodDays,
	}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	now := e.now()
	next := o.Clone()
	next.Amounts = amounts
	next.Status = entities.OfferStatusSubmitted
	next.SubmittedAt = &now
	next.UpdatedAt = now
	return next, nil
}

// Approve accepts a SUBMITTED offer internally and starts its validity period.
func (e *Engine) Approve(o entities.SettlementOffer, in ApproveInput) (entities.SettlementOffer, error) {
	if err := e.guard(o, "approve", entities.OfferStatusSubmitted); err != nil {
		return o, err
	}
	now := e.now()
	next := o.Clone()
	next.Status = entities.OfferStatusApproved
	next.ApprovedAt = &now
	next.ApprovedBy = strings.TrimSpace(in.ApprovedBy)
	next.ApprovalNotes = strings.TrimSpace(in.Notes)
	next.ExpiresAt = ExpiresAt(next)
	next.UpdatedAt = now
	return next, nil
}

// Reject declines a SUBMITTED offer internally. The offer is closed.
func (e *Engine) Reject(o entities.SettlementOffer, reason string) (entities.SettlementOffer, error) {
	if err := e.guard(o, "reject", entities.OfferStatusSubmitted); err != nil {
		return o, err
	}
	reason = strings.TrimSpace(reason)
	if errs := validateStruct(reasonRules{Reason: reason}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	next := o.Clone()
	next.Status = entities.OfferStatusRejected
	next.RejectionReason = reason
	next.UpdatedAt = e.now()
	return next, nil
}

// SetupPresentation records how an APPROVED offer is delivered and marks it PRESENTED.
func (e *Engine) SetupPresentation(o entities.SettlementOffer, setup entities.PresentationSetup, presentedBy string) (entities.SettlementOffer, error) {
	if err := e.guard(o, "present", entities.OfferStatusApproved); err != nil {
		return o, err
	}
	setup.SubjectLine = strings.TrimSpace(setup.SubjectLine)
	setup.CustomMessage = strings.TrimSpace(setup.CustomMessage)
	if errs := validateStruct(presentationRules{
		ContactMethod: string(setup.ContactMethod),
		SubjectLine:   setup.SubjectLine,
		CustomMessage: setup.CustomMessage,
	}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	now := e.now()
	next := o.Clone()
	next.Status = entities.OfferStatusPresented
	next.Presentation = &entities.Presentation{
		PresentationSetup: setup,
		DeliveryStatus:    entities.DeliveryStatusPending,
		PresentedBy:       strings.TrimSpace(presentedBy),
		PresentedAt:       now,
		DeliveryUpdatedAt: now,
	}
	next.UpdatedAt = now
	return next.Clone(), nil
}

// UpdateDeliveryStatus applies a status reported by the delivery channel.
func (e *Engine) UpdateDeliveryStatus(o entities.SettlementOffer, status entities.DeliveryStatus) (entities.SettlementOffer, error) {
	if err := e.guard(o, "update delivery of", entities.OfferStatusPresented); err != nil {
		return o, err
	}
	if o.Presentation == nil {
		return o, fmt.Errorf("%w: offer %s has no presentation", ErrInvalidState, o.ID)
	}
	if errs := validateStruct(deliveryRules{DeliveryStatus: string(status)}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	if !o.Presentation.DeliveryStatus.CanMoveTo(status) {
		return o, fmt.Errorf("%w: delivery cannot move from %s to %s", ErrInvalidState, o.Presentation.DeliveryStatus, status)
	}
	now := e.now()
	next := o.Clone()
	next.Presentation.DeliveryStatus = status
	next.Presentation.DeliveryUpdatedAt = now
	next.UpdatedAt = now
	return next, nil
}

// RecordClientResponse stores the client's reply to a PRESENTED offer.
//
// ACCEPTED moves the offer to ACCEPTED, REJECTED to REJECTED_BY_CLIENT. A counter
// offer is stored but leaves the offer PRESENTED until it is resolved manually;
// a later ACCEPTED or REJECTED response replaces it.
func (e *Engine) RecordClientResponse(o entities.SettlementOffer, resp entities.ClientResponse) (entities.SettlementOffer, error) {
	if err := e.guard(o, "record a client response for", entities.OfferStatusPresented); err != nil {
		return o, err
	}
	resp.Comments = strings.TrimSpace(resp.Comments)
	errs := validateStruct(responseRules{ResponseType: string(resp.ResponseType), Comments: resp.Comments})
	if resp.ResponseType == entities.ResponseCounterOffer {
		switch {
		case resp.CounterOfferAmount == nil:
			errs = append(errs, FieldError{Field: "counter_offer_amount", Rule: "required_if", Message: "is required"})
		case !resp.CounterOfferAmount.IsPositive():
			errs = append(errs, FieldError{Field: "counter_offer_amount", Rule: "gt", Message: "must be greater than 0"})
		}
	}
	if len(errs) > 0 {
		return o, newValidationError(errs...)
	}

	now := e.now()
	if resp.ResponseDate.IsZero() {
		resp.ResponseDate = now
	}
	if resp.ResponseType != entities.ResponseCounterOffer {
		resp.CounterOfferAmount = nil
	}

	next := o.Clone()
	next.ClientResponse = &resp
	switch resp.ResponseType {
	case entities.ResponseAccepted:
		next.Status = entities.OfferStatusAccepted
	case entities.ResponseRejected:
		next.Status = entities.OfferStatusRejectedByClient
	}
	next.UpdatedAt = now
	return next.Clone(), nil
}

// Expire closes an APPROVED or PRESENTED offer whose validity period has passed.
func (e *Engine) Expire(o entities.SettlementOffer) (entities.SettlementOffer, error) {
	if !o.Status.IsExpirable() {
		return o, invalidState("expire", o.Status)
	}
	now := e.now()
	if !now.After(o.ExpiresAt) {
		return o, fmt.Errorf("%w: offer %s does not expire until %s", ErrInvalidState, o.ID, o.ExpiresAt.Format(time.RFC3339))
	}
	next := o.Clone()
	next.Status = entities.OfferStatusExpired
	next.UpdatedAt = now
	return next, nil
}

// IsExpired reports whether o is past its validity period and still expirable.
func (e *Engine) IsExpired(o entities.SettlementOffer) bool {
	return o.Status.IsExpirable() && e.now().After(o.ExpiresAt)
}

// BeginPaymentProcessing starts payout of an ACCEPTED offer.
func (e *Engine) BeginPaymentProcessing(o entities.SettlementOffer) (entities.SettlementOffer, error) {
	if err := e.guard(o, "begin payment processing of", entities.OfferStatusAccepted); err != nil {
		return o, err
	}
	next := o.Clone()
	next.Status = entities.OfferStatusPaymentProcessing
	next.UpdatedAt = e.now()
	return next, nil
}

// RecordPayment stores a payment on an offer in PAYMENT_PROCESSING.
//
// A COMPLETED payment closes the offer as PAID; any other payment status is stored
// and leaves the offer in PAYMENT_PROCESSING so a later payment can replace it.
// An empty payment status defaults to PENDING. Bank fields are kept only for bank transfers.
func (e *Engine) RecordPayment(o entities.SettlementOffer, details entities.PaymentDetails, processedBy string) (entities.SettlementOffer, error) {
	if err := e.guard(o, "record payment for", entities.OfferStatusPaymentProcessing); err != nil {
		return o, err
	}
	details.TransactionReference = strings.TrimSpace(details.TransactionReference)
	details.BankName = strings.TrimSpace(details.BankName)
	details.AccountNumber = strings.TrimSpace(details.AccountNumber)
	details.AccountName = strings.TrimSpace(details.AccountName)
	details.PaymentNotes = strings.TrimSpace(details.PaymentNotes)
	if details.PaymentStatus == "" {
		details.PaymentStatus = entities.PaymentStatusPending
	}
	if errs := validateStruct(paymentRules{
		PaymentMethod:        string(details.PaymentMethod),
		TransactionReference: details.TransactionReference,
		BankName:             details.BankName,
		AccountNumber:        details.AccountNumber,
		AccountName:          details.AccountName,
		PaymentStatus:        string(details.PaymentStatus),
		PaymentNotes:         details.PaymentNotes,
	}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	if details.PaymentMethod != entities.PaymentMethodBankTransfer {
		details.BankName, details.AccountNumber, details.AccountName = "", "", ""
	}

	now := e.now()
	next := o.Clone()
	next.Payment = &entities.PaymentRecord{
		PaymentDetails: details,
		ProcessedBy:    strings.TrimSpace(processedBy),
		ProcessedAt:    now,
		ReceiptNumber:  e.newID(receiptIDPrefix, now),
	}
	if details.ProviderPayloadRaw != nil {
		next.Payment.ProviderPayloadRaw = append([]byte(nil), details.ProviderPayloadRaw...)
	}
	if details.PaymentStatus == entities.PaymentStatusCompleted {
		next.Status = entities.OfferStatusPaid
	}
	next.UpdatedAt = now
	return next, nil
}

// Cancel closes any non-terminal offer.
func (e *Engine) Cancel(o entities.SettlementOffer, reason string) (entities.SettlementOffer, error) {
	if err := e.guardNonTerminal(o, "cancel"); err != nil {
		return o, err
	}
	reason = strings.TrimSpace(reason)
	if errs := validateStruct(reasonRules{Reason: reason}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	next := o.Clone()
	next.Status = entities.OfferStatusCancelled
	next.CancellationReason = reason
	next.UpdatedAt = e.now()
	return next, nil
}

// AttachDocument appends a supporting document name to a non-terminal offer.
func (e *Engine) AttachDocument(o entities.SettlementOffer, name string) (entities.SettlementOffer, error) {
	if err := e.guardNonTerminal(o, "attach a document to"); err != nil {
		return o, err
	}
	name = strings.TrimSpace(name)
	if errs := validateStruct(documentRules{Name: name}); len(errs) > 0 {
		return o, newValidationError(errs...)
	}
	if slices.Contains(o.Documents, name) {
		return o, newValidationError(FieldError{Field: "document", Rule: "unique", Message: "is already attached"})
	}
	next := o.Clone()
	next.Documents = append(next.Documents, name)
	next.UpdatedAt = e.now()
	return next, nil
}

// RemoveDocument removes a supporting document name from a non-terminal offer.
func (e *Engine) RemoveDocument(o entities.SettlementOffer, name string) (entities.SettlementOffer, error) {
	if err := e.guardNonTerminal(o, "remove a document from"); err != nil {
		return o, err
	}
	name = strings.TrimSpace(name)
	idx := slices.Index(o.Documents, name)
	if idx < 0 {
		return o, newValidationError(FieldError{Field: "document", Rule: "exists", Message: "is not attached"})
	}
	next := o.Clone()
	next.Documents = slices.Delete(next.Documents, idx, idx+1)
	next.UpdatedAt = e.now()
	return next, nil
}

func (e *Engine) guard(o entities.SettlementOffer, op string, allowed ...entities.OfferStatus) error {
	if !slices.Contains(allowed, o.Status) {
		return invalidState(op, o.Status)
	}
	return e.checkExpiry(o)
}

func (e *Engine) guardNonTerminal(o entities.SettlementOffer, op string) error {
	if !o.Status.IsValid() || o.Status.IsTerminal() {
		return invalidState(op, o.Status)
	}
	return e.checkExpiry(o)
}

func (e *Engine) checkExpiry(o entities.SettlementOffer) error {
	if e.IsExpired(o) {
		return fmt.Errorf("%w: offer %s expired at %s", ErrOfferExpired, o.ID, o.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
