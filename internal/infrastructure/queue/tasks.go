package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue presentation deliveries are enqueued on.
	QueueDefault = "settlement"
	// TaskTypePresentOffer delivers a presented offer to the client.
	TaskTypePresentOffer = "offer:present"
)

// PresentOfferPayload identifies the offer to deliver. The handler reloads the
// offer so a stale payload never overrides what was stored.
type PresentOfferPayload struct {
	OfferID       string `json:"offer_id"`
	ContactMethod string `json:"contact_method"`
	SubjectLine   string `json:"subject_line"`
}

func NewPresentOfferTask(payload PresentOfferPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePresentOffer, data), nil
}
