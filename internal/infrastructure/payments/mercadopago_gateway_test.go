package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("  ", false)
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		require.NoError(t, err)
		assert.True(t, g.mockMode)
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), "settlement:OFF-1:v5", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("mock echoes the request as approved", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		require.NoError(t, err)

		id, status, raw, err := g.CreatePayment(context.Background(), "settlement:OFF-1:v5", json.RawMessage(`{"external_reference":"OFF-1","transaction_amount":80000}`))
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, "approved", status)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "OFF-1", body["external_reference"])
		assert.Equal(t, id, body["id"])
		assert.Equal(t, "accredited", body["status_detail"])
	})

	t.Run("mock replays a repeated idempotency key", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true)
		require.NoError(t, err)
		payload := json.RawMessage(`{"external_reference":"OFF-1"}`)

		firstID, _, firstRaw, err := g.CreatePayment(context.Background(), "settlement:OFF-1:v5", payload)
		require.NoError(t, err)
		againID, _, againRaw, err := g.CreatePayment(context.Background(), "settlement:OFF-1:v5", payload)
		require.NoError(t, err)
		assert.Equal(t, firstID, againID)
		assert.JSONEq(t, string(firstRaw), string(againRaw))

		otherID, _, _, err := g.CreatePayment(context.Background(), "settlement:OFF-1:v6", payload)
		require.NoError(t, err)
		assert.NotEqual(t, firstID, otherID)
	})
}

func TestIdempotentRequester(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(idempotencyHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	requester := idempotentRequester{client: srv.Client()}

	send := func(ctx context.Context) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL, nil)
		require.NoError(t, err)
		req.Header.Set(idempotencyHeader, "sdk-random")
		resp, err := requester.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	send(context.WithValue(context.Background(), idempotencyKeyCtx{}, "settlement:OFF-1:v5"))
	send(context.Background())

	assert.Equal(t, []string{"settlement:OFF-1:v5", "sdk-random"}, got)
}
