package queue

import (
	"context"
	"log"

	"claims_settlement/internal/domain/entities"
)

// Sender pushes a presented offer through its contact channel.
type Sender interface {
	Send(ctx context.Context, o entities.SettlementOffer) error
}

// LogSender only logs the delivery. It stands in until a real email/SMS
// channel is connected.
type LogSender struct{}

func (LogSender) Send(_ context.Context, o entities.SettlementOffer) error {
	p := o.Presentation
	log.Printf("[offer][sender] deliver offer_id=%s client=%q contact_method=%s subject=%q final_amount=%s documents=%+v",
		o.ID, o.ClientName, p.ContactMethod, p.SubjectLine, o.Amounts.FinalAmount.StringFixed(2), p.Documents)
	return nil
}
