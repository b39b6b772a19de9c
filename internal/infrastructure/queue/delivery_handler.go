package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase"

	"github.com/hibiken/asynq"
)

// OfferDeliveryUpdater is the slice of the offer use case the worker drives.
type OfferDeliveryUpdater interface {
	GetByID(ctx context.Context, id string) (entities.SettlementOffer, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status entities.DeliveryStatus) (entities.SettlementOffer, error)
}

// DeliveryHandler processes TaskTypePresentOffer tasks.
type DeliveryHandler struct {
	offers OfferDeliveryUpdater
	sender Sender
}

func NewDeliveryHandler(offers OfferDeliveryUpdater, sender Sender) *DeliveryHandler {
	if sender == nil {
		sender = LogSender{}
	}
	return &DeliveryHandler{offers: offers, sender: sender}
}

func (h *DeliveryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload PresentOfferPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil || payload.OfferID == "" {
		log.Printf("[offer][worker] invalid payload err=%v", err)
		return fmt.Errorf("invalid %s payload: %w", TaskTypePresentOffer, asynq.SkipRetry)
	}

	o, err := h.offers.GetByID(ctx, payload.OfferID)
	if err != nil {
		log.Printf("[offer][worker] load failed offer_id=%s err=%v", payload.OfferID, err)
		if errors.Is(err, usecase.ErrOfferNotFound) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}
	if o.Status != entities.OfferStatusPresented || o.Presentation == nil || o.Presentation.DeliveryStatus != entities.DeliveryStatusPending {
		log.Printf("[offer][worker] nothing to deliver offer_id=%s status=%s", o.ID, o.Status)
		return nil
	}

	if err := h.sender.Send(ctx, o); err != nil {
		if !finalAttempt(ctx) {
			log.Printf("[offer][worker] send failed, will retry offer_id=%s err=%v", o.ID, err)
			return err
		}
		log.Printf("[offer][worker] send failed offer_id=%s err=%v", o.ID, err)
		if _, uerr := h.offers.UpdateDeliveryStatus(ctx, o.ID, entities.DeliveryStatusFailed); uerr != nil {
			log.Printf("[offer][worker] mark failed error offer_id=%s err=%v", o.ID, uerr)
		}
		return fmt.Errorf("deliver offer %s: %v: %w", o.ID, err, asynq.SkipRetry)
	}

	if _, err := h.offers.UpdateDeliveryStatus(ctx, o.ID, entities.DeliveryStatusSent); err != nil {
		log.Printf("[offer][worker] mark sent failed offer_id=%s err=%v", o.ID, err)
		return err
	}
	log.Printf("[offer][worker] delivered offer_id=%s contact_method=%s", o.ID, o.Presentation.ContactMethod)
	return nil
}

// finalAttempt is true outside an asynq worker too, so direct calls report FAILED.
func finalAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
