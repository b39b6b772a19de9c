package app

import (
	"context"
	"fmt"
	"log"

	"claims_settlement/internal/adapter/persistence/repository"
	"claims_settlement/internal/config"
	"claims_settlement/internal/domain/settlement"
	"claims_settlement/internal/infrastructure/database"
	"claims_settlement/internal/infrastructure/lock"
	"claims_settlement/internal/infrastructure/payments"
	"claims_settlement/internal/infrastructure/queue"
	"claims_settlement/internal/usecase"
	"claims_settlement/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Container holds the wired use cases shared by the api and the worker.
type Container struct {
	Config   *config.Config
	Offers   *usecase.OfferUseCase
	Payments *usecase.PaymentUseCase

	closers []func()
}

// Build connects storage, the lock backend, the delivery queue and the payment
// gateway selected by cfg.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	offers, claims, err := c.storage(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	var (
		locker     interfaces.ILocker
		dispatcher interfaces.IPresentationDispatcher
	)
	if cfg.UsesRedis() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[app][redis] ping failed addr=%s err=%v", cfg.RedisAddr, err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		locker = lock.NewRedisLocker(rdb, cfg.LockTTL, cfg.LockWait)

		client := asynq.NewClient(RedisOpts(cfg))
		c.closers = append(c.closers, func() { _ = client.Close() })
		dispatcher = queue.NewAsynqDispatcher(client)
		log.Printf("[app][redis] distributed lock and delivery queue enabled addr=%s", cfg.RedisAddr)
	} else {
		locker = lock.NewKeyedMutex(cfg.LockWait)
		log.Printf("[app] REDIS_ADDR not set; using in-process lock and no delivery queue")
	}

	c.Offers = usecase.NewOfferUseCase(offers, claims, locker, dispatcher, settlement.NewEngine())

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[app] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}
	c.Payments = usecase.NewPaymentUseCase(c.Offers, gateway, usecase.PaymentOptions{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	return c, nil
}

func (c *Container) storage(ctx context.Context) (interfaces.IOfferRepository, interfaces.IClaimStore, error) {
	cfg := c.Config
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		c.closers = append(c.closers, pool.Close)
		repo := repository.NewOfferPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		return repo, repository.NewClaimPostgresStore(pool), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewOfferDynamoRepository(ddb, cfg.OffersTable), repository.NewClaimDynamoStore(ddb, cfg.ClaimsTable), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.StorageDriver)
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// RedisOpts is the asynq connection for the configured Redis.
func RedisOpts(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.RedisAddr}
}
