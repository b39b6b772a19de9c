package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/domain/settlement"
	"claims_settlement/internal/usecase/interfaces"
)

var (
	ErrOfferNotFound    = errors.New("offer not found")
	ErrClaimNotFound    = errors.New("claim not found")
	ErrInvalidOfferID   = errors.New("invalid offer id")
	ErrInvalidClaimID   = errors.New("invalid claim id")
	ErrInvalidStatus    = errors.New("invalid offer status")
	ErrConcurrentUpdate = errors.New("offer was modified concurrently")
	ErrOfferLocked      = errors.New("offer is being modified")
)

// createAttempts bounds how many fresh offer ids Create tries.
const createAttempts = 2

// IOfferUseCase exposes the settlement offer lifecycle.
//
// Every mutating call loads the latest snapshot under a per-offer lock, applies
// one engine transition and saves it conditioned on the version it read.
type IOfferUseCase interface {
	Create(ctx context.Context, claimID string, in settlement.CreateInput) (entities.SettlementOffer, error)
	GetByID(ctx context.Context, id string) (entities.SettlementOffer, error)
	ListByStatus(ctx context.Context, status entities.OfferStatus) ([]entities.SettlementOffer, error)

	Recalculate(ctx context.Context, id string, in settlement.AmountInput) (entities.SettlementOffer, error)
	ReviseTerms(ctx context.Context, id string, terms entities.OfferTerms) (entities.SettlementOffer, error)
	Submit(ctx context.Context, id string) (entities.SettlementOffer, error)
	Approve(ctx context.Context, id string, in settlement.ApproveInput) (entities.SettlementOffer, error)
	Reject(ctx context.Context, id string, reason string) (entities.SettlementOffer, error)
	SetupPresentation(ctx context.Context, id string, setup entities.PresentationSetup, presentedBy string) (entities.SettlementOffer, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status entities.DeliveryStatus) (entities.SettlementOffer, error)
	RecordClientResponse(ctx context.Context, id string, resp entities.ClientResponse) (entities.SettlementOffer, error)
	Expire(ctx context.Context, id string) (entities.SettlementOffer, error)
	ExpireDue(ctx context.Context) ([]entities.SettlementOffer, error)
	BeginPaymentProcessing(ctx context.Context, id string) (entities.SettlementOffer, error)
	RecordPayment(ctx context.Context, id string, details entities.PaymentDetails, processedBy string) (entities.SettlementOffer, error)
	RecordChargedPayment(ctx context.Context, id string, charge PaymentCharge, processedBy string) (entities.SettlementOffer, error)
	Cancel(ctx context.Context, id string, reason string) (entities.SettlementOffer, error)
	AttachDocument(ctx context.Context, id string, name string) (entities.SettlementOffer, error)
	RemoveDocument(ctx context.Context, id string, name string) (entities.SettlementOffer, error)
}

// PaymentCharge collects a payment for the loaded offer and returns what to record.
type PaymentCharge func(offer entities.SettlementOffer) (entities.PaymentDetails, error)

type OfferUseCase struct {
	repo       interfaces.IOfferRepository
	claims     interfaces.IClaimStore
	locker     interfaces.ILocker
	dispatcher interfaces.IPresentationDispatcher
	engine     *settlement.Engine
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

// NewOfferUseCase wires the offer lifecycle. locker and dispatcher are optional;
// without a locker writers are still protected by the version check on save.
func NewOfferUseCase(repo interfaces.IOfferRepository, claims interfaces.IClaimStore, locker interfaces.ILocker, dispatcher interfaces.IPresentationDispatcher, engine *settlement.Engine) *OfferUseCase {
	if engine == nil {
		engine = settlement.NewEngine()
	}
	return &OfferUseCase{repo: repo, claims: claims, locker: locker, dispatcher: dispatcher, engine: engine}
}

func (u *OfferUseCase) Create(ctx context.Context, claimID string, in settlement.CreateInput) (entities.SettlementOffer, error) {
	claimID = strings.TrimSpace(claimID)
	log.Printf("[offer][usecase] create start claim_id=%q created_by=%q", claimID, in.CreatedBy)
	if claimID == "" {
		return entities.SettlementOffer{}, ErrInvalidClaimID
	}

	unlock, err := u.lock(ctx, "claim:"+claimID)
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	defer unlock()

	claim, err := u.claims.GetClaim(ctx, claimID)
	if err != nil {
		log.Printf("[offer][usecase] failed loading claim claim_id=%s err=%v", claimID, err)
		return entities.SettlementOffer{}, err
	}
	if claim.ClaimID == "" {
		log.Printf("[offer][usecase] claim not found claim_id=%s", claimID)
		return entities.SettlementOffer{}, ErrClaimNotFound
	}

	active, err := u.repo.FindActiveByClaimID(ctx, claimID)
	if err != nil {
		log.Printf("[offer][usecase] failed loading active offer claim_id=%s err=%v", claimID, err)
		return entities.SettlementOffer{}, err
	}
	claim.HasActiveOffer = active.ID != ""

	var created entities.SettlementOffer
	for attempt := 1; ; attempt++ {
		o, err := u.engine.Create(claim, in)
		if err != nil {
			log.Printf("[offer][usecase] create rejected claim_id=%s err=%v", claimID, err)
			return entities.SettlementOffer{}, err
		}
		o.Version = 1

		created, err = u.repo.Create(ctx, o)
		if err == nil {
			break
		}
		if errors.Is(err, interfaces.ErrDuplicateOfferID) {
			if attempt < createAttempts {
				log.Printf("[offer][usecase] offer id taken; retrying claim_id=%s offer_id=%s", claimID, o.ID)
				continue
			}
			log.Printf("[offer][usecase] offer id still taken claim_id=%s offer_id=%s", claimID, o.ID)
			return entities.SettlementOffer{}, fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
		}
		log.Printf("[offer][usecase] offer repository create failed claim_id=%s offer_id=%s err=%v", claimID, o.ID, err)
		return entities.SettlementOffer{}, err
	}
	log.Printf("[offer][usecase] create success claim_id=%s offer_id=%s final_amount=%s", claimID, created.ID, created.Amounts.FinalAmount)
	return created, nil
}

func (u *OfferUseCase) GetByID(ctx context.Context, id string) (entities.SettlementOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SettlementOffer{}, ErrInvalidOfferID
	}
	return u.load(ctx, id)
}

func (u *OfferUseCase) ListByStatus(ctx context.Context, status entities.OfferStatus) ([]entities.SettlementOffer, error) {
	status = entities.OfferStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *OfferUseCase) Recalculate(ctx context.Context, id string, in settlement.AmountInput) (entities.SettlementOffer, error) {
	return u.transition(ctx, "recalculate", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.Recalculate(o, in)
	})
}

func (u *OfferUseCase) ReviseTerms(ctx context.Context, id string, terms entities.OfferTerms) (entities.SettlementOffer, error) {
	return u.transition(ctx, "revise-terms", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.ReviseTerms(o, terms)
	})
}

func (u *OfferUseCase) Submit(ctx context.Context, id string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "submit", id, u.engine.Submit)
}

func (u *OfferUseCase) Approve(ctx context.Context, id string, in settlement.ApproveInput) (entities.SettlementOffer, error) {
	return u.transition(ctx, "approve", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.Approve(o, in)
	})
}

func (u *OfferUseCase) Reject(ctx context.Context, id string, reason string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "reject", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.Reject(o, reason)
	})
}

// SetupPresentation presents the offer and queues it for delivery. A failed
// enqueue is logged; the offer stays PRESENTED with delivery PENDING.
func (u *OfferUseCase) SetupPresentation(ctx context.Context, id string, setup entities.PresentationSetup, presentedBy string) (entities.SettlementOffer, error) {
	presented, err := u.transition(ctx, "present", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.SetupPresentation(o, setup, presentedBy)
	})
	if err != nil {
		return entities.SettlementOffer{}, err
	}
	if u.dispatcher != nil {
		if err := u.dispatcher.Dispatch(ctx, presented); err != nil {
			log.Printf("[offer][usecase] presentation dispatch failed offer_id=%s err=%v", presented.ID, err)
		} else {
			log.Printf("[offer][usecase] presentation dispatched offer_id=%s contact_method=%s", presented.ID, presented.Presentation.ContactMethod)
		}
	}
	return presented, nil
}

func (u *OfferUseCase) UpdateDeliveryStatus(ctx context.Context, id string, status entities.DeliveryStatus) (entities.SettlementOffer, error) {
	return u.transition(ctx, "delivery-status", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.UpdateDeliveryStatus(o, status)
	})
}

func (u *OfferUseCase) RecordClientResponse(ctx context.Context, id string, resp entities.ClientResponse) (entities.SettlementOffer, error) {
	return u.transition(ctx, "client-response", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.RecordClientResponse(o, resp)
	})
}

func (u *OfferUseCase) Expire(ctx context.Context, id string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "expire", id, u.engine.Expire)
}

// ExpireDue expires every APPROVED or PRESENTED offer past its validity period.
// Offers that fail to expire (for example a concurrent update) are logged and skipped.
func (u *OfferUseCase) ExpireDue(ctx context.Context) ([]entities.SettlementOffer, error) {
	log.Printf("[offer][usecase] expire-due start")
	var expired []entities.SettlementOffer
	for _, status := range []entities.OfferStatus{entities.OfferStatusApproved, entities.OfferStatusPresented} {
		offers, err := u.repo.ListByStatus(ctx, status)
		if err != nil {
			log.Printf("[offer][usecase] expire-due list failed status=%s err=%v", status, err)
			return expired, err
		}
		for _, o := range offers {
			if err := ctx.Err(); err != nil {
				log.Printf("[offer][usecase] expire-due interrupted expired=%d err=%v", len(expired), err)
				return expired, err
			}
			if !u.engine.IsExpired(o) {
				continue
			}
			res, err := u.Expire(ctx, o.ID)
			if err != nil {
				log.Printf("[offer][usecase] expire-due skip offer_id=%s err=%v", o.ID, err)
				continue
			}
			expired = append(expired, res)
		}
	}
	log.Printf("[offer][usecase] expire-due success expired=%d", len(expired))
	return expired, nil
}

func (u *OfferUseCase) BeginPaymentProcessing(ctx context.Context, id string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "payment-processing", id, u.engine.BeginPaymentProcessing)
}

func (u *OfferUseCase) RecordPayment(ctx context.Context, id string, details entities.PaymentDetails, processedBy string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "record-payment", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.RecordPayment(o, details, processedBy)
	})
}

// RecordChargedPayment calls charge and records its outcome while holding the
// offer lock, so two callers never charge the same snapshot.
func (u *OfferUseCase) RecordChargedPayment(ctx context.Context, id string, charge PaymentCharge, processedBy string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "gateway-payment", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		details, err := charge(o)
		if err != nil {
			return entities.SettlementOffer{}, err
		}
		return u.engine.RecordPayment(o, details, processedBy)
	})
}

func (u *OfferUseCase) Cancel(ctx context.Context, id string, reason string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "cancel", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.Cancel(o, reason)
	})
}

func (u *OfferUseCase) AttachDocument(ctx context.Context, id string, name string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "attach-document", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.AttachDocument(o, name)
	})
}

func (u *OfferUseCase) RemoveDocument(ctx context.Context, id string, name string) (entities.SettlementOffer, error) {
	return u.transition(ctx, "remove-document", id, func(o entities.SettlementOffer) (entities.SettlementOffer, error) {
		return u.engine.RemoveDocument(o, name)
	})
}

func (u *OfferUseCase) transition(ctx context.Context, op string, id string, apply func(entities.SettlementOffer) (entities.SettlementOffer, error)) (entities.SettlementOffer, error) {
	id = strings.TrimSpace(id)
	log.Printf("[offer][usecase] %s start offer_id=%q", op, id)
	if id == "" {
		return entities.SettlementOffer{}, ErrInvalidOfferID
	}

	unlock, err := u.lock(ctx, "offer:"+id)
	if err != nil {
		log.Printf("[offer][usecase] %s lock failed offer_id=%s err=%v", op, id, err)
		return entities.SettlementOffer{}, err
	}
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.SettlementOffer{}, err
	}

	next, err := apply(current)
	if err != nil {
		log.Printf("[offer][usecase] %s rejected offer_id=%s status=%s err=%v", op, id, current.Status, err)
		return entities.SettlementOffer{}, err
	}
	next.Version = current.Version + 1

	saved, err := u.repo.Save(ctx, next, current.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[offer][usecase] %s lost update offer_id=%s version=%d", op, id, current.Version)
			return entities.SettlementOffer{}, fmt.Errorf("%w: offer %s", ErrConcurrentUpdate, id)
		}
		log.Printf("[offer][usecase] %s save failed offer_id=%s err=%v", op, id, err)
		return entities.SettlementOffer{}, err
	}
	log.Printf("[offer][usecase] %s success offer_id=%s status=%s->%s version=%d", op, id, current.Status, saved.Status, saved.Version)
	return saved, nil
}

func (u *OfferUseCase) load(ctx context.Context, id string) (entities.SettlementOffer, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[offer][usecase] failed loading offer offer_id=%s err=%v", id, err)
		return entities.SettlementOffer{}, err
	}
	if o.ID == "" {
		return entities.SettlementOffer{}, ErrOfferNotFound
	}
	if err := settlement.CheckInvariants(o); err != nil {
		log.Printf("[offer][usecase] stored offer rejected offer_id=%s err=%v", id, err)
		return entities.SettlementOffer{}, err
	}
	return o, nil
}

func (u *OfferUseCase) lock(ctx context.Context, key string) (func(), error) {
	if u.locker == nil {
		return func() {}, nil
	}
	unlock, err := u.locker.Lock(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockHeld) {
			return nil, fmt.Errorf("%w: %s", ErrOfferLocked, key)
		}
		return nil, err
	}
	return unlock, nil
}
