package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"claims_settlement/internal/app"
	"claims_settlement/internal/config"
	"claims_settlement/internal/infrastructure/queue"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	expireDue := flag.Bool("expire-due", false, "expire every approved or presented offer past its validity and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to wire dependencies: %v", err)
	}
	defer container.Close()

	if *expireDue {
		expired, err := container.Offers.ExpireDue(ctx)
		if err != nil {
			log.Fatalf("[offer][worker] expire-due failed err=%v", err)
		}
		log.Printf("[offer][worker] expire-due done expired=%d", len(expired))
		return
	}

	if !cfg.UsesRedis() {
		log.Fatalf("REDIS_ADDR is required to run the delivery worker")
	}

	delivery := queue.NewDeliveryHandler(container.Offers, queue.LogSender{})
	worker := queue.NewWorker(app.RedisOpts(cfg), cfg.WorkerConcurrency, delivery)
	if err := worker.Run(ctx); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
