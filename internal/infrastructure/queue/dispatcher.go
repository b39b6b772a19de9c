package queue

import (
	"context"
	"errors"
	"log"
	"time"

	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
)

var ErrNoPresentation = errors.New("offer has no presentation to deliver")

// Enqueuer is the part of *asynq.Client the dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqDispatcher hands presented offers to the delivery worker.
type AsynqDispatcher struct {
	client   Enqueuer
	maxRetry int
	now      func() time.Time
}

var _ interfaces.IPresentationDispatcher = (*AsynqDispatcher)(nil)

func NewAsynqDispatcher(client Enqueuer) *AsynqDispatcher {
	return &AsynqDispatcher{client: client, maxRetry: 5, now: time.Now}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, o entities.SettlementOffer) error {
	if o.Presentation == nil {
		return ErrNoPresentation
	}
	task, err := NewPresentOfferTask(PresentOfferPayload{
		OfferID:       o.ID,
		ContactMethod: string(o.Presentation.ContactMethod),
		SubjectLine:   o.Presentation.SubjectLine,
	})
	if err != nil {
		return err
	}

	opts := []asynq.Option{
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(d.maxRetry),
		// one delivery per presentation
		asynq.TaskID(TaskTypePresentOffer + ":" + o.ID + ":" + o.Presentation.PresentedAt.UTC().Format(time.RFC3339Nano)),
	}
	if at := o.Presentation.ScheduledSendDate; at != nil && at.After(d.now()) {
		opts = append(opts, asynq.ProcessAt(*at))
	}

	info, err := d.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Printf("[offer][queue] presentation already enqueued offer_id=%s", o.ID)
			return nil
		}
		return err
	}
	log.Printf("[offer][queue] presentation enqueued offer_id=%s task_id=%s queue=%s", o.ID, info.ID, info.Queue)
	return nil
}
