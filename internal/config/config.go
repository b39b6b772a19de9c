package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// Config holds runtime configuration for the api and the worker.
type Config struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"dynamodb"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	OffersTable        string `envconfig:"OFFERS_TABLE" default:"settlement_offers"`
	ClaimsTable        string `envconfig:"CLAIMS_TABLE" default:"claims"`

	PGDSN string `envconfig:"PG_DSN"`

	RedisAddr string        `envconfig:"REDIS_ADDR"`
	LockTTL   time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	LockWait  time.Duration `envconfig:"LOCK_WAIT" default:"2s"`

	MercadoPagoAccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`

	WorkerConcurrency int `envconfig:"WORKER_CONCURRENCY" default:"5"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	// envconfig keeps a set-but-empty variable, so "STORAGE_DRIVER=" skips the tag default.
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageDynamoDB
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if cfg.PGDSN == "" {
			return nil, errors.New("PG_DSN must be provided for the postgres storage driver")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.StorageDriver)
	}
	if cfg.WorkerConcurrency < 1 {
		cfg.WorkerConcurrency = 1
	}
	return &cfg, nil
}

// UsesRedis reports whether a Redis address was configured for locks and the queue.
func (c *Config) UsesRedis() bool {
	return c != nil && strings.TrimSpace(c.RedisAddr) != ""
}
