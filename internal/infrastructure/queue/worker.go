package queue

import (
	"context"
	"errors"
	"log"

	"github.com/hibiken/asynq"
)

// Worker wraps the asynq server that delivers presentations.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisOpts asynq.RedisClientOpt, concurrency int, delivery *DeliveryHandler) *Worker {
	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueDefault: 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, t *asynq.Task, err error) {
			log.Printf("[offer][worker] task failed type=%s err=%v", t.Type(), err)
		}),
	})
	mux := asynq.NewServeMux()
	mux.Handle(TaskTypePresentOffer, delivery)
	return &Worker{server: srv, mux: mux}
}

// Run processes tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("worker: not configured")
	}
	if err := w.server.Start(w.mux); err != nil {
		return err
	}
	log.Printf("[offer][worker] started queue=%s", QueueDefault)
	<-ctx.Done()
	w.server.Shutdown()
	log.Printf("[offer][worker] stopped")
	return nil
}
