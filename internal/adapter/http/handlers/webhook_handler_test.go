package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"festival_backend/internal/adapter/http/handlers/mocks"
	"festival_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(uc usecase.IOrderFulfillmentUseCase) *gin.Engine {
	h := NewWebhookHandler(uc)
	r := gin.New()
	r.POST("/v1/webhooks/stripe", h.HandleStripe)
	r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPago)
	return r
}

func TestWebhookHandler_HandleStripe(t *testing.T) {
	payload := `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("raw body and signature are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
		uc.EXPECT().HandleStripeEvent(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		newWebhookRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["received"] != true {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad signature", fmt.Errorf("%w: no signatures found", usecase.ErrInvalidWebhookSignature), http.StatusBadRequest},
		{"not configured", usecase.ErrWebhookUnavailable, http.StatusServiceUnavailable},
		{"database failure", errors.New("ddb down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
			uc.EXPECT().HandleStripeEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.err)

			w := doJSON(newWebhookRouter(uc), http.MethodPost, "/v1/webhooks/stripe", payload)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWebhookHandler_HandleMercadoPago(t *testing.T) {
	t.Run("ipn query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoNotification(gomock.Any(), "payment", "123").Return(nil)

		w := doJSON(newWebhookRouter(uc), http.MethodPost, "/v1/webhooks/mercadopago?topic=payment&id=123", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("webhook body with numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoNotification(gomock.Any(), "payment", "1319988455").Return(nil)

		w := doJSON(newWebhookRouter(uc), http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment","action":"payment.updated","data":{"id":1319988455}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("webhook query style", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoNotification(gomock.Any(), "payment", "77").Return(nil)

		w := doJSON(newWebhookRouter(uc), http.MethodPost, "/v1/webhooks/mercadopago?type=payment&data.id=77", `{"data":{"id":"77"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := doJSON(newWebhookRouter(mocks.NewMockIOrderFulfillmentUseCase(ctrl)), http.MethodPost, "/v1/webhooks/mercadopago", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderFulfillmentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoNotification(gomock.Any(), "payment", "").Return(usecase.ErrMissingPaymentID)

		w := doJSON(newWebhookRouter(uc), http.MethodPost, "/v1/webhooks/mercadopago?topic=payment", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
