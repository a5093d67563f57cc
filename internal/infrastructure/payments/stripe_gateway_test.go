package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap/zaptest"
)

const testWebhookSecret = "whsec_test_secret"

func newTestStripeGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	g, err := NewStripeGateway(config.StripeConfig{SecretKey: "sk_test_123", WebhookSecret: testWebhookSecret},
		&stripe.Backends{API: backend, Connect: backend, Uploads: backend}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	_, err := NewStripeGateway(config.StripeConfig{}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingStripeSecretKey)
}

func TestStripeGateway_CreateProduct(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/products", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Festival Tee", r.PostForm.Get("name"))
		assert.Equal(t, "2500", r.PostForm.Get("default_price_data[unit_amount]"))
		assert.Equal(t, "eur", r.PostForm.Get("default_price_data[currency]"))
		assert.Equal(t, "https://cms.example/v1/media/file/tee.jpg", r.PostForm.Get("images[0]"))
		writeJSON(w, map[string]any{"id": "prod_1", "object": "product", "default_price": "price_1"})
	})

	ref, err := g.CreateProduct(context.Background(), interfaces.CatalogProductInput{
		Name: "Festival Tee", UnitAmount: 2500, Currency: entities.CurrencyEUR,
		ImageURL: "https://cms.example/v1/media/file/tee.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.CatalogProductRef{ProductID: "prod_1", DefaultPriceID: "price_1"}, ref)
}

func TestStripeGateway_FirstActivePrice(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/prices", r.URL.Path)
		assert.Equal(t, "prod_1", r.URL.Query().Get("product"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		writeJSON(w, map[string]any{
			"object": "list", "url": "/v1/prices", "has_more": false,
			"data": []map[string]any{{"id": "price_9", "object": "price"}},
		})
	})

	id, err := g.FirstActivePrice(context.Background(), "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "price_9", id)
}

func TestStripeGateway_PriceRotationCalls(t *testing.T) {
	var paths []string
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/v1/prices":
			assert.Equal(t, "1500", r.PostForm.Get("unit_amount"))
			assert.Equal(t, "prod_1", r.PostForm.Get("product"))
			writeJSON(w, map[string]any{"id": "price_new", "object": "price"})
		case "/v1/products/prod_1":
			assert.Equal(t, "price_new", r.PostForm.Get("default_price"))
			writeJSON(w, map[string]any{"id": "prod_1", "object": "product"})
		case "/v1/prices/price_old":
			assert.Equal(t, "false", r.PostForm.Get("active"))
			writeJSON(w, map[string]any{"id": "price_old", "object": "price", "active": false})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	priceID, err := g.CreatePrice(ctx, "prod_1", 1500, entities.CurrencyUSD)
	require.NoError(t, err)
	require.NoError(t, g.SetDefaultPrice(ctx, "prod_1", priceID))
	require.NoError(t, g.DeactivatePrice(ctx, "price_old"))
	assert.Equal(t, []string{"/v1/prices", "/v1/products/prod_1", "/v1/prices/price_old"}, paths)
}

func TestStripeGateway_SetProductImagesClears(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		vals, ok := r.PostForm["images"]
		require.True(t, ok, "images must be sent to clear the list")
		assert.Equal(t, []string{""}, vals)
		assert.Equal(t, "Tee", r.PostForm.Get("name"))
		writeJSON(w, map[string]any{"id": "prod_1", "object": "product"})
	})

	require.NoError(t, g.SetProductImages(context.Background(), "prod_1", nil, "Tee", "cotton"))
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))
		assert.Equal(t, "required", r.PostForm.Get("billing_address_collection"))
		assert.Equal(t, "price_1", r.PostForm.Get("line_items[0][price]"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "o-1", r.PostForm.Get("client_reference_id"))
		assert.Equal(t, "o-1", r.PostForm.Get("metadata[orderId]"))
		assert.Equal(t, "fan@example.com", r.PostForm.Get("customer_email"))
		writeJSON(w, map[string]any{"id": "cs_1", "object": "checkout.session", "url": "https://checkout.stripe.com/cs_1"})
	})

	s, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutSessionInput{
		OrderID:       "o-1",
		Lines:         []entities.CheckoutLine{{StripePriceID: "price_1", Quantity: 2}},
		SuccessURL:    "https://shop.example/ok",
		CancelURL:     "https://shop.example/cancel",
		CustomerEmail: "fan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1", Provider: ProviderStripe}, s)
}

func TestStripeGateway_CheckoutErrorIsReturned(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price: 'price_x'"}}`))
	})

	_, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutSessionInput{Lines: []entities.CheckoutLine{{StripePriceID: "price_x", Quantity: 1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")
}

func signedEvent(t *testing.T, event map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: testWebhookSecret})
	return signed.Payload, signed.Header
}

func TestStripeGateway_ParseEvent(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("webhook parsing must not call the API")
	})

	t.Run("checkout completed", func(t *testing.T) {
		payload, header := signedEvent(t, map[string]any{
			"id": "evt_1", "object": "event", "type": "checkout.session.completed", "api_version": "2020-08-27",
			"data": map[string]any{"object": map[string]any{
				"id": "cs_1", "object": "checkout.session", "client_reference_id": "o-1",
				"payment_intent": "pi_1", "payment_status": "paid",
			}},
		})

		ev, err := g.ParseEvent(payload, header)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentEvent{
			ID: "evt_1", Provider: ProviderStripe, Type: entities.PaymentEventCheckoutCompleted,
			OrderID: "o-1", PaymentReference: "pi_1", Status: "paid",
		}, ev)
	})

	t.Run("session id used when no payment intent", func(t *testing.T) {
		payload, header := signedEvent(t, map[string]any{
			"id": "evt_2", "object": "event", "type": "checkout.session.completed",
			"data": map[string]any{"object": map[string]any{"id": "cs_2", "object": "checkout.session"}},
		})

		ev, err := g.ParseEvent(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "cs_2", ev.PaymentReference)
		assert.Empty(t, ev.OrderID)
	})

	t.Run("bad signature", func(t *testing.T) {
		payload, _ := signedEvent(t, map[string]any{"id": "evt_3", "object": "event", "type": "payment_intent.succeeded"})
		_, err := g.ParseEvent(payload, "t=1,v1=deadbeef")
		assert.Error(t, err)
	})

	t.Run("secret not configured", func(t *testing.T) {
		g2 := &StripeGateway{}
		_, err := g2.ParseEvent([]byte("{}"), "")
		assert.ErrorIs(t, err, ErrMissingStripeWebhookSecret)
	})
}
