package app

import (
	"context"
	"testing"

	"claims_settlement/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("dynamodb with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.Config{
			StorageDriver:      config.StorageDynamoDB,
			AWSRegion:          "us-east-1",
			AWSAccessKeyID:     "local",
			AWSSecretAccessKey: "local",
			DynamoDBEndpoint:   "http://localhost:8000",
			RedisAddr:          mr.Addr(),
			PaymentGatewayMock: true,
		}

		c, err := Build(context.Background(), cfg)
		require.NoError(t, err)
		defer c.Close()
		assert.NotNil(t, c.Offers)
		assert.NotNil(t, c.Payments)
		assert.Len(t, c.closers, 2)
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		_, err := Build(context.Background(), &config.Config{StorageDriver: "mongo"})
		assert.ErrorIs(t, err, config.ErrUnknownStorageDriver)
	})
}
